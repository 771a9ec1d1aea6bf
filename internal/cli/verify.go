package cli

import (
	"github.com/SyedAsadKazmi/dummy-hh3/internal/cli/render"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/spf13/cobra"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var contractName string

	cmd := &cobra.Command{
		Use:   "verify <address> [constructorArgs...]",
		Short: "Verify a deployed contract on Etherscan",
		Long: `Verify an already deployed contract on Etherscan. Constructor arguments
are given in declaration order and encoded with the contract's ABI.

Examples:
  hh3 verify 0x5FbDB2315678afecb367f032d93F642f64180aa3 42 --network sepolia
  hh3 verify 0x5FbDB2315678afecb367f032d93F642f64180aa3 3600 '[]' '[]' 0x0000000000000000000000000000000000000000 --contract TimelockController --network sepolia`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.VerifyContract.Run(cmd.Context(), usecase.VerifyContractParams{
				Address:         args[0],
				ContractName:    contractName,
				ConstructorArgs: args[1:],
			})
			if err != nil {
				return err
			}

			renderer := render.NewVerifyRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&contractName, "contract", "Counter", "Contract name or source:name of the deployed contract")

	return cmd
}
