package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	// Get project root from viper
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		projectRoot, err = FindProjectRoot(wd)
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	LoadEnvFiles(projectRoot)

	project, configPath, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}

	artifactsDir := project.Paths.Artifacts
	if !filepath.IsAbs(artifactsDir) {
		artifactsDir = filepath.Join(projectRoot, artifactsDir)
	}

	networkName := v.GetString("network")
	if networkName == "" {
		networkName = DefaultNetwork
	}

	buildProfile := v.GetString("build_profile")
	if buildProfile == "" {
		buildProfile = "default"
	}

	return &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		ArtifactsDir:   artifactsDir,
		ConfigPath:     configPath,
		NetworkName:    networkName,
		BuildProfile:   buildProfile,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		AssumeYes:      v.GetBool("yes"),
		Timeout:        v.GetDuration("timeout"),
		Project:        project,
	}, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("HH3")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("network", DefaultNetwork)
	v.SetDefault("build_profile", "default")
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("yes", false)
	v.SetDefault("project_root", projectRoot)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}
