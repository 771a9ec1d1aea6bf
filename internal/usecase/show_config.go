package usecase

import (
	"context"
	"strings"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/samber/lo"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	ProjectRoot  string
	ConfigPath   string
	Exists       bool
	NetworkName  string
	BuildProfile string
	Project      *config.ProjectConfig
}

// ShowConfig is a use case for showing the resolved configuration
type ShowConfig struct {
	cfg *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		cfg: cfg,
	}
}

// Run executes the show config use case. Account keys and the explorer API
// key are redacted.
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	project := redactProject(uc.cfg.Project)

	return &ShowConfigResult{
		ProjectRoot:  uc.cfg.ProjectRoot,
		ConfigPath:   uc.cfg.ConfigPath,
		Exists:       uc.cfg.ConfigPath != "",
		NetworkName:  uc.cfg.NetworkName,
		BuildProfile: uc.cfg.BuildProfile,
		Project:      project,
	}, nil
}

func redactProject(in *config.ProjectConfig) *config.ProjectConfig {
	if in == nil {
		return nil
	}
	out := *in
	out.Networks = lo.MapValues(in.Networks, func(n config.NetworkConfig, _ string) config.NetworkConfig {
		n.Accounts = lo.Map(n.Accounts, func(key string, _ int) string {
			return RedactSecret(key)
		})
		return n
	})
	out.Verify.Etherscan.APIKey = RedactSecret(in.Verify.Etherscan.APIKey)
	return &out
}

// RedactSecret hides all but the last four characters of a secret. Env
// references like ${ACCOUNT_PRIVATE_KEY} are shown as written.
func RedactSecret(secret string) string {
	if secret == "" || strings.HasPrefix(secret, "${") {
		return secret
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", 8) + secret[len(secret)-4:]
}
