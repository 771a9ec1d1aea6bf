package cli

import (
	"github.com/SyedAsadKazmi/dummy-hh3/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Long: `List the networks configured in hh3.toml, or the built-in defaults when no
hh3.toml exists. Nothing is dialed; networks whose RPC URL or accounts come
from unset environment variables are flagged.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
