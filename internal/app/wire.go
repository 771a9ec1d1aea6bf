//go:build wireinject
// +build wireinject

package app

import (
	"github.com/SyedAsadKazmi/dummy-hh3/internal/adapters"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/logging"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployCounter,
		usecase.NewDeployTimelock,
		usecase.NewVerifyContract,
		usecase.NewListNetworks,
		usecase.NewShowConfig,

		// App
		NewApp,
	)
	return nil, nil
}
