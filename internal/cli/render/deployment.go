package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/fatih/color"
	"github.com/samber/lo"
)

// DeploymentRenderer renders the summary printed after a deployment task
type DeploymentRenderer struct {
	out io.Writer
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer) *DeploymentRenderer {
	return &DeploymentRenderer{
		out: out,
	}
}

// RenderCounter renders the deployCounter result
func (r *DeploymentRenderer) RenderCounter(result *usecase.DeployCounterResult) error {
	if err := r.renderSummary(result.Deployment); err != nil {
		return err
	}
	if result.Verification != nil {
		fmt.Fprintf(r.out, "  %-13s %s\n", "Verification:", verificationLabel(result.Verification))
	}
	return nil
}

// RenderTimelock renders the deploy result
func (r *DeploymentRenderer) RenderTimelock(result *usecase.DeployTimelockResult) error {
	return r.renderSummary(result.Deployment)
}

func (r *DeploymentRenderer) renderSummary(d *models.DeploymentResult) error {
	if d == nil {
		return nil
	}

	bold := color.New(color.Bold)
	fmt.Fprintln(r.out)
	bold.Fprintf(r.out, "%s deployment summary\n", d.ContractName)

	rows := [][2]string{
		{"Address:", color.New(color.FgGreen).Sprint(d.ContractAddress.Hex())},
		{"Network:", fmt.Sprintf("%s (chain %d)", d.Network, d.ChainID)},
		{"Deployer:", d.Deployer.Hex()},
		{"Transaction:", d.TransactionHash.Hex()},
		{"Block:", fmt.Sprintf("%d (%d %s)", d.BlockNumber, d.Confirmations, plural(d.Confirmations, "confirmation"))},
		{"Gas used:", fmt.Sprintf("%d", d.GasUsed)},
	}
	if len(d.ConstructorArgs) > 0 {
		args := lo.Map(d.ConstructorArgs, func(arg any, _ int) string {
			return models.FormatArg(arg)
		})
		rows = append(rows, [2]string{"Arguments:", strings.Join(args, ", ")})
	}

	for _, row := range rows {
		fmt.Fprintf(r.out, "  %-13s %s\n", row[0], row[1])
	}
	return nil
}

func plural(n uint64, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
