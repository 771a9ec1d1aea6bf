package usecase

import (
	"context"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
}

// NetworkConnector opens a session against a network. Each task invocation
// opens its own session.
type NetworkConnector interface {
	Connect(ctx context.Context, network *config.Network) (NetworkSession, error)
}

// NetworkSession is a connection to a node plus the account that signs
// deployment transactions
type NetworkSession interface {
	ChainID() uint64
	Deployer() common.Address
	// BlockNumber reads the current chain head
	BlockNumber(ctx context.Context) (uint64, error)
	// SendDeployment encodes constructor args against the artifact ABI and
	// broadcasts a contract creation transaction
	SendDeployment(ctx context.Context, artifact *models.Artifact, args []any) (*models.PendingDeployment, error)
	// WaitForReceipt blocks until the transaction is included and, when
	// confirmations > 1, until that many blocks have been built on it
	WaitForReceipt(ctx context.Context, txHash common.Hash, confirmations uint64) (*models.Receipt, error)
	Close()
}

// ArtifactRepository provides access to compiled contracts
type ArtifactRepository interface {
	GetArtifact(ctx context.Context, contractName string) (*models.Artifact, error)
}

// ContractVerifier handles contract verification
type ContractVerifier interface {
	Verify(ctx context.Context, request models.VerificationRequest) error
}

// DeploymentConfirmer asks the user before broadcasting to a live network
type DeploymentConfirmer interface {
	ConfirmDeployment(ctx context.Context, network *config.Network, contractName string) (bool, error)
}

// Progress tracking interfaces

// ExecutionStage represents a stage in a task invocation
type ExecutionStage string

const (
	StageConnecting ExecutionStage = "connecting"
	StageSubmitting ExecutionStage = "submitting"
	StageConfirming ExecutionStage = "confirming"
	StageVerifying  ExecutionStage = "verifying"
	StageCompleted  ExecutionStage = "completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    ExecutionStage
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Warn(message string)
	Error(message string)
}
