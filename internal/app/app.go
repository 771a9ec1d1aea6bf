package app

import (
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	DeployCounter  *usecase.DeployCounter
	DeployTimelock *usecase.DeployTimelock
	VerifyContract *usecase.VerifyContract
	ListNetworks   *usecase.ListNetworks
	ShowConfig     *usecase.ShowConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	deployCounter *usecase.DeployCounter,
	deployTimelock *usecase.DeployTimelock,
	verifyContract *usecase.VerifyContract,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
) (*App, error) {
	return &App{
		Config:         cfg,
		DeployCounter:  deployCounter,
		DeployTimelock: deployTimelock,
		VerifyContract: verifyContract,
		ListNetworks:   listNetworks,
		ShowConfig:     showConfig,
	}, nil
}
