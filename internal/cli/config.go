package cli

import (
	"fmt"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved project configuration",
		Long: `Show the project configuration after hh3.toml has been merged over the
built-in defaults. Private keys and the Etherscan API key are redacted.

Examples:
  hh3 config
  hh3 config --format yaml`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout())
			switch format {
			case "text":
				return renderer.Render(result)
			case "yaml":
				return renderer.RenderYAML(result)
			default:
				return fmt.Errorf("unknown format %q, expected text or yaml", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, yaml)")

	return cmd
}
