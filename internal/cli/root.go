package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/adapters/progress"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/app"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/cli/render"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/config"
	domainconfig "github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hh3",
		Short: "Deploy and verify the Counter and TimelockController contracts",
		Long: `hh3 deploys the Counter and TimelockController contracts to a configured
network and optionally verifies them on Etherscan.

Networks, compiler profiles and verification settings are read from hh3.toml
in the project root. Without one, built-in defaults are used: a simulated
"default" network plus sepolia and avalancheFuji configured from
SEPOLIA_RPC_URL, AVALANCHE_FUJI_RPC_URL and ACCOUNT_PRIVATE_KEY.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if skipsApp(cmd.Name()) {
				return nil
			}

			projectRoot, err := resolveProjectRoot(cmd)
			if err != nil {
				return err
			}

			// Set up viper
			v := config.SetupViper(projectRoot, cmd)

			var sink usecase.ProgressSink = progress.NewSpinnerProgressReporter()
			if v.GetBool("non_interactive") {
				sink = progress.NewPlainProgressReporter(cmd.ErrOrStderr())
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			if shouldWarnMissingProjectFile(cmd.Name(), appInstance.Config) {
				fmt.Fprintln(cmd.ErrOrStderr(), render.FormatWarning(
					fmt.Sprintf("No %s found, using built-in defaults", config.ProjectFileName)))
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., default, sepolia, avalancheFuji)")
	rootCmd.PersistentFlags().String("build-profile", "", "Compiler profile used for verification (default, production)")
	rootCmd.PersistentFlags().String("project-root", "", "Project root (defaults to the nearest directory with hh3.toml)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort the task after this long (default 5m)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Skip the confirmation before deploying to a live network")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "tasks",
		Title: "Tasks",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCounterCmd := NewDeployCounterCmd()
	deployCounterCmd.GroupID = "tasks"
	rootCmd.AddCommand(deployCounterCmd)

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "tasks"
	rootCmd.AddCommand(deployCmd)

	verifyCmd := NewVerifyCmd()
	verifyCmd.GroupID = "tasks"
	rootCmd.AddCommand(verifyCmd)

	// Management commands
	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// skipsApp reports whether a command runs without project configuration
func skipsApp(cmdName string) bool {
	return cmdName == "version" || cmdName == "help" || cmdName == "completion"
}

// shouldWarnMissingProjectFile reports whether to tell the user that no
// hh3.toml was found. Only tasks that touch a network warn.
func shouldWarnMissingProjectFile(cmdName string, cfg *domainconfig.RuntimeConfig) bool {
	if cfg == nil || cfg.ConfigPath != "" {
		return false
	}
	if skipsApp(cmdName) || cmdName == "config" || cmdName == "networks" {
		return false
	}
	return cfg.NetworkName != config.DefaultNetwork
}

// resolveProjectRoot prefers --project-root over walking up from the cwd
func resolveProjectRoot(cmd *cobra.Command) (string, error) {
	if f := cmd.Flag("project-root"); f != nil && f.Value.String() != "" {
		return f.Value.String(), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return config.FindProjectRoot(wd)
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
