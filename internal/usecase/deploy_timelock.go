package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

// DeployTimelockResult contains the result of the deploy task
type DeployTimelockResult struct {
	Deployment *models.DeploymentResult
	Params     *domain.TimelockParams
}

// DeployTimelock deploys a TimelockController. Bare inclusion is enough,
// no confirmation depth and no verification step.
type DeployTimelock struct {
	deployer *contractDeployer
}

// NewDeployTimelock creates a new DeployTimelock use case
func NewDeployTimelock(
	cfg *config.RuntimeConfig,
	networks NetworkResolver,
	connector NetworkConnector,
	artifacts ArtifactRepository,
	confirmer DeploymentConfirmer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployTimelock {
	return &DeployTimelock{
		deployer: &contractDeployer{
			cfg:       cfg,
			networks:  networks,
			connector: connector,
			artifacts: artifacts,
			confirmer: confirmer,
			progress:  progress,
			log:       log,
		},
	}
}

// Run executes the deploy task
func (uc *DeployTimelock) Run(ctx context.Context, input domain.TimelockInput) (*DeployTimelockResult, error) {
	params, err := domain.ParseTimelockParams(input)
	if err != nil {
		return nil, err
	}

	network, artifact, err := uc.deployer.prepare(ctx, domain.TimelockContract)
	if err != nil {
		return nil, err
	}

	progress := uc.deployer.progress
	progress.Info("🚀 Deploying TimelockController...")

	deployment, err := uc.deployer.deploy(ctx, network, artifact, deployRequest{
		ContractName:    domain.TimelockContract,
		ConstructorArgs: params.ConstructorArgs(),
		OnConnected: func(ctx context.Context, session NetworkSession) error {
			progress.Info("Parameters:")
			progress.Info(fmt.Sprintf("Min Delay: %s seconds", params.MinDelay.String()))
			progress.Info(fmt.Sprintf("Proposers: %s", FormatRoleList(params.Proposers)))
			progress.Info(fmt.Sprintf("Executors: %s", FormatRoleList(params.Executors)))
			progress.Info(fmt.Sprintf("Admin: %s", params.Admin.Hex()))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	progress.Info(fmt.Sprintf("✅ TimelockController deployed at: %s", deployment.ContractAddress.Hex()))
	progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	return &DeployTimelockResult{
		Deployment: deployment,
		Params:     params,
	}, nil
}

// FormatRoleList joins role holders for display, "None" when empty
func FormatRoleList(addresses []common.Address) string {
	if len(addresses) == 0 {
		return "None"
	}
	return strings.Join(lo.Map(addresses, func(addr common.Address, _ int) string {
		return addr.Hex()
	}), ", ")
}
