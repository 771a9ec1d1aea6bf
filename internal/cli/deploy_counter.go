package cli

import (
	"github.com/SyedAsadKazmi/dummy-hh3/internal/cli/render"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/spf13/cobra"
)

// NewDeployCounterCmd creates the deployCounter command
func NewDeployCounterCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:     "deployCounter [initialValue]",
		Aliases: []string{"deploy-counter"},
		Short:   "Deploy the Counter contract",
		Long: `Deploy the Counter contract with the given initial value and wait for
3 confirmations. With --verifycontract the deployed contract is verified on
Etherscan afterwards; a failed verification does not fail the task.

Examples:
  hh3 deployCounter
  hh3 deployCounter 42 --network sepolia
  hh3 deployCounter 42 --network sepolia --verifycontract`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			input := domain.CounterInput{Verify: verify}
			if len(args) > 0 {
				input.InitialValue = args[0]
			}

			result, err := app.DeployCounter.Run(cmd.Context(), input)
			if err != nil {
				return err
			}

			renderer := render.NewDeploymentRenderer(cmd.OutOrStdout())
			return renderer.RenderCounter(result)
		},
	}

	cmd.Flags().BoolVar(&verify, "verifycontract", false, "Verify the contract on Etherscan after deployment")

	return cmd
}
