package cli

import (
	"github.com/SyedAsadKazmi/dummy-hh3/internal/cli/render"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command for the TimelockController
func NewDeployCmd() *cobra.Command {
	var input domain.TimelockInput

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a TimelockController",
		Long: `Deploy an OpenZeppelin TimelockController.

Proposers and executors are JSON arrays of addresses. The admin defaults to
the zero address, which leaves the timelock self-administered.

Examples:
  hh3 deploy
  hh3 deploy --minDelay 86400 --proposers '["0x70997970C51812dc3A010C7d01b50e0d17dc79C8"]'
  hh3 deploy --executors '["0x0000000000000000000000000000000000000000"]' --network sepolia`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployTimelock.Run(cmd.Context(), input)
			if err != nil {
				return err
			}

			renderer := render.NewDeploymentRenderer(cmd.OutOrStdout())
			return renderer.RenderTimelock(result)
		},
	}

	cmd.Flags().StringVar(&input.MinDelay, "minDelay", domain.DefaultMinDelay, "Minimum delay in seconds")
	cmd.Flags().StringVar(&input.Proposers, "proposers", domain.DefaultRoleList, "JSON array of proposer addresses")
	cmd.Flags().StringVar(&input.Executors, "executors", domain.DefaultRoleList, "JSON array of executor addresses")
	cmd.Flags().StringVar(&input.Admin, "admin", domain.ZeroAddress, "Admin address (zero address for none)")

	return cmd
}
