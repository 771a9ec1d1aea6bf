package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
)

// Confirmer asks for a yes/no answer before broadcasting to a live network
type Confirmer struct {
	prompt func(label string) error
}

// NewConfirmer creates a new terminal confirmer
func NewConfirmer() *Confirmer {
	return &Confirmer{prompt: runConfirmPrompt}
}

// ConfirmDeployment asks whether contractName should be deployed to network
func (c *Confirmer) ConfirmDeployment(ctx context.Context, network *config.Network, contractName string) (bool, error) {
	label := fmt.Sprintf("Deploy %s to %s",
		color.New(color.Bold).Sprint(contractName),
		color.New(color.FgYellow, color.Bold).Sprint(network.Name),
	)

	err := c.prompt(label)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
}

// runConfirmPrompt asks the user a yes/no question
func runConfirmPrompt(label string) error {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	return err
}

// Ensure the adapter implements the interface
var _ usecase.DeploymentConfirmer = (*Confirmer)(nil)
