package usecase

import (
	"context"
	"fmt"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// VerifyContractParams contains parameters for the verify task
type VerifyContractParams struct {
	Address         string
	ContractName    string
	ConstructorArgs []string
}

// VerifyContractResult contains the result of the verify task
type VerifyContractResult struct {
	Address      common.Address
	ContractName string
	Network      string
	Outcome      *models.VerificationOutcome
}

// VerifyContract registers an already deployed contract with the block
// explorer. This is the task deployCounter hands off to.
type VerifyContract struct {
	cfg      *config.RuntimeConfig
	networks NetworkResolver
	verifier ContractVerifier
	progress ProgressSink
}

// NewVerifyContract creates a new VerifyContract use case
func NewVerifyContract(
	cfg *config.RuntimeConfig,
	networks NetworkResolver,
	verifier ContractVerifier,
	progress ProgressSink,
) *VerifyContract {
	return &VerifyContract{
		cfg:      cfg,
		networks: networks,
		verifier: verifier,
		progress: progress,
	}
}

// Run executes the verify task. Unlike the deployCounter hand-off, errors
// other than "already verified" are returned.
func (uc *VerifyContract) Run(ctx context.Context, params VerifyContractParams) (*VerifyContractResult, error) {
	if !domain.IsValidAddress(params.Address) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, params.Address)
	}
	if params.ContractName == "" {
		return nil, fmt.Errorf("%w: contract name is required", domain.ErrInvalidParameter)
	}

	network, err := uc.networks.ResolveNetwork(ctx, uc.cfg.NetworkName)
	if err != nil {
		return nil, err
	}

	result := &VerifyContractResult{
		Address:      common.HexToAddress(params.Address),
		ContractName: params.ContractName,
		Network:      network.Name,
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageVerifying,
		Message: fmt.Sprintf("Verifying %s at %s", params.ContractName, result.Address.Hex()),
		Spinner: true,
	})
	defer uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	err = uc.verifier.Verify(ctx, models.VerificationRequest{
		Network:         network,
		ContractName:    params.ContractName,
		Address:         result.Address,
		ConstructorArgs: params.ConstructorArgs,
		BuildProfile:    uc.cfg.BuildProfile,
	})
	switch {
	case err == nil:
		result.Outcome = &models.VerificationOutcome{Status: models.VerificationStatusVerified}
	case domain.IsAlreadyVerified(err):
		result.Outcome = &models.VerificationOutcome{
			Status:  models.VerificationStatusAlreadyVerified,
			Message: err.Error(),
		}
	default:
		return nil, err
	}

	if network.ExplorerURL != "" {
		result.Outcome.URL = fmt.Sprintf("%s/address/%s#code", network.ExplorerURL, result.Address.Hex())
	}

	return result, nil
}
