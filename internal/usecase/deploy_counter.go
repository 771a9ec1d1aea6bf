package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
)

// CounterConfirmations is the confirmation depth the Counter task waits for
const CounterConfirmations = 3

// DeployCounterResult contains the result of the deployCounter task
type DeployCounterResult struct {
	Deployment   *models.DeploymentResult
	StartBlock   uint64
	InitialValue string
	// Verification is nil when verification was not requested
	Verification *models.VerificationOutcome
}

// DeployCounter deploys a Counter contract and optionally verifies it
type DeployCounter struct {
	deployer *contractDeployer
	verifier ContractVerifier
}

// NewDeployCounter creates a new DeployCounter use case
func NewDeployCounter(
	cfg *config.RuntimeConfig,
	networks NetworkResolver,
	connector NetworkConnector,
	artifacts ArtifactRepository,
	verifier ContractVerifier,
	confirmer DeploymentConfirmer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployCounter {
	return &DeployCounter{
		deployer: &contractDeployer{
			cfg:       cfg,
			networks:  networks,
			connector: connector,
			artifacts: artifacts,
			confirmer: confirmer,
			progress:  progress,
			log:       log,
		},
		verifier: verifier,
	}
}

// Run executes the deployCounter task
func (uc *DeployCounter) Run(ctx context.Context, input domain.CounterInput) (*DeployCounterResult, error) {
	params, err := domain.ParseCounterParams(input)
	if err != nil {
		return nil, err
	}

	network, artifact, err := uc.deployer.prepare(ctx, domain.CounterContract)
	if err != nil {
		return nil, err
	}

	progress := uc.deployer.progress
	progress.Info("🚀 Deploying Counter...")

	result := &DeployCounterResult{InitialValue: params.InitialValueRaw}

	deployment, err := uc.deployer.deploy(ctx, network, artifact, deployRequest{
		ContractName:    domain.CounterContract,
		ConstructorArgs: params.ConstructorArgs(),
		Confirmations:   CounterConfirmations,
		OnConnected: func(ctx context.Context, session NetworkSession) error {
			head, err := session.BlockNumber(ctx)
			if err != nil {
				return fmt.Errorf("failed to read block number: %w", err)
			}
			result.StartBlock = head
			progress.Info(fmt.Sprintf("%d", head))
			progress.Info(fmt.Sprintf("🧾 Deploying Counter with initial value %s...", params.InitialValueRaw))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	result.Deployment = deployment

	progress.Info(fmt.Sprintf("✅ Counter deployed at: %s", deployment.ContractAddress.Hex()))

	if params.Verify {
		result.Verification = uc.verify(ctx, network, deployment, params)
	}

	progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	return result, nil
}

// verify requests explorer verification. Failures never fail the task.
func (uc *DeployCounter) verify(ctx context.Context, network *config.Network, deployment *models.DeploymentResult, params *domain.CounterParams) *models.VerificationOutcome {
	progress := uc.deployer.progress
	progress.Info("Verifying contract on Etherscan...")
	progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageVerifying,
		Message: "Verifying contract on Etherscan",
		Spinner: true,
	})

	err := uc.verifier.Verify(ctx, models.VerificationRequest{
		Network:         network,
		ChainID:         deployment.ChainID,
		ContractName:    domain.CounterContract,
		Address:         deployment.ContractAddress,
		ConstructorArgs: []string{params.InitialValueRaw},
		BuildProfile:    uc.deployer.cfg.BuildProfile,
	})

	switch {
	case err == nil:
		progress.Info("✅ Counter contract verified successfully")
		return &models.VerificationOutcome{Status: models.VerificationStatusVerified}
	case domain.IsAlreadyVerified(err):
		progress.Warn("Counter contract already verified")
		return &models.VerificationOutcome{
			Status:  models.VerificationStatusAlreadyVerified,
			Message: err.Error(),
		}
	default:
		progress.Error(fmt.Sprintf("Verification failed: %v", err))
		uc.deployer.log.Debug("verification failed",
			slog.String("address", deployment.ContractAddress.Hex()),
			slog.String("error", err.Error()),
		)
		return &models.VerificationOutcome{
			Status:  models.VerificationStatusFailed,
			Message: err.Error(),
		}
	}
}
