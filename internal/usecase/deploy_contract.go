package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
)

// contractDeployer runs the part of a deployment task that comes after
// parameter validation: connect, submit, wait. It is shared by the
// deployment use cases.
type contractDeployer struct {
	cfg       *config.RuntimeConfig
	networks  NetworkResolver
	connector NetworkConnector
	artifacts ArtifactRepository
	confirmer DeploymentConfirmer
	progress  ProgressSink
	log       *slog.Logger
}

// deployRequest describes one contract creation
type deployRequest struct {
	ContractName    string
	ConstructorArgs []any
	Confirmations   uint64
	// OnConnected runs right after the session is opened, before submission
	OnConnected func(ctx context.Context, session NetworkSession) error
}

// prepare resolves the target network and artifact and asks for
// confirmation. Nothing here touches the chain.
func (d *contractDeployer) prepare(ctx context.Context, contractName string) (*config.Network, *models.Artifact, error) {
	network, err := d.networks.ResolveNetwork(ctx, d.cfg.NetworkName)
	if err != nil {
		return nil, nil, err
	}

	artifact, err := d.artifacts.GetArtifact(ctx, contractName)
	if err != nil {
		return nil, nil, err
	}

	if network.IsLive() && !d.cfg.NonInteractive && !d.cfg.AssumeYes && d.confirmer != nil {
		ok, err := d.confirmer.ConfirmDeployment(ctx, network, contractName)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, domain.ErrDeploymentCancelled
		}
	}

	return network, artifact, nil
}

// deploy opens a fresh session and runs submission and confirmation.
// Errors are returned as-is; a broadcast transaction stays in flight.
func (d *contractDeployer) deploy(ctx context.Context, network *config.Network, artifact *models.Artifact, req deployRequest) (*models.DeploymentResult, error) {
	d.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageConnecting,
		Message: fmt.Sprintf("Connecting to %s", network.Name),
		Spinner: true,
	})

	session, err := d.connector.Connect(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to network %s: %w", network.Name, err)
	}
	defer session.Close()

	d.log.Debug("session opened",
		slog.String("network", network.Name),
		slog.Uint64("chain_id", session.ChainID()),
		slog.String("deployer", session.Deployer().Hex()),
	)

	if req.OnConnected != nil {
		if err := req.OnConnected(ctx, session); err != nil {
			return nil, err
		}
	}

	d.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageSubmitting,
		Message: fmt.Sprintf("Submitting %s deployment", req.ContractName),
		Spinner: true,
	})

	pending, err := session.SendDeployment(ctx, artifact, req.ConstructorArgs)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", req.ContractName, err)
	}

	d.progress.Info(fmt.Sprintf("📝 Deployment tx hash: %s", pending.TransactionHash.Hex()))

	waitMsg := "Waiting for transaction to be included"
	if req.Confirmations > 1 {
		waitMsg = fmt.Sprintf("Waiting for %d confirmations", req.Confirmations)
	}
	d.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageConfirming,
		Message: waitMsg,
		Spinner: true,
	})

	receipt, err := session.WaitForReceipt(ctx, pending.TransactionHash, req.Confirmations)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s deployment %s: %w", req.ContractName, pending.TransactionHash.Hex(), err)
	}

	d.log.Debug("deployment confirmed",
		slog.String("contract", req.ContractName),
		slog.String("address", pending.ContractAddress.Hex()),
		slog.Uint64("block", receipt.BlockNumber),
		slog.Uint64("gas_used", receipt.GasUsed),
	)

	return &models.DeploymentResult{
		ContractName:    req.ContractName,
		ContractAddress: pending.ContractAddress,
		TransactionHash: pending.TransactionHash,
		Network:         network.Name,
		ChainID:         session.ChainID(),
		BlockNumber:     receipt.BlockNumber,
		GasUsed:         receipt.GasUsed,
		Confirmations:   receipt.Confirmations,
		Deployer:        pending.From,
		ConstructorArgs: req.ConstructorArgs,
	}, nil
}
