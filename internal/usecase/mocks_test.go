package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) GetNetworks(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockNetworkResolver) ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error) {
	args := m.Called(ctx, networkName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Network), args.Error(1)
}

// MockConnector is a mock implementation of NetworkConnector
type MockConnector struct {
	mock.Mock
}

func (m *MockConnector) Connect(ctx context.Context, network *config.Network) (usecase.NetworkSession, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.NetworkSession), args.Error(1)
}

// MockSession is a mock implementation of NetworkSession
type MockSession struct {
	mock.Mock
}

func (m *MockSession) ChainID() uint64 {
	return m.Called().Get(0).(uint64)
}

func (m *MockSession) Deployer() common.Address {
	return m.Called().Get(0).(common.Address)
}

func (m *MockSession) BlockNumber(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockSession) SendDeployment(ctx context.Context, artifact *models.Artifact, constructorArgs []any) (*models.PendingDeployment, error) {
	args := m.Called(ctx, artifact, constructorArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PendingDeployment), args.Error(1)
}

func (m *MockSession) WaitForReceipt(ctx context.Context, txHash common.Hash, confirmations uint64) (*models.Receipt, error) {
	args := m.Called(ctx, txHash, confirmations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

func (m *MockSession) Close() {
	m.Called()
}

// MockArtifactRepository is a mock implementation of ArtifactRepository
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) GetArtifact(ctx context.Context, contractName string) (*models.Artifact, error) {
	args := m.Called(ctx, contractName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artifact), args.Error(1)
}

// MockVerifier is a mock implementation of ContractVerifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, request models.VerificationRequest) error {
	return m.Called(ctx, request).Error(0)
}

// MockConfirmer is a mock implementation of DeploymentConfirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) ConfirmDeployment(ctx context.Context, network *config.Network, contractName string) (bool, error) {
	args := m.Called(ctx, network, contractName)
	return args.Bool(0), args.Error(1)
}

// MockProgressSink records everything reported to it
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	warns  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string)  { m.infos = append(m.infos, message) }
func (m *MockProgressSink) Warn(message string)  { m.warns = append(m.warns, message) }
func (m *MockProgressSink) Error(message string) { m.errors = append(m.errors, message) }

func (m *MockProgressSink) stages() []usecase.ExecutionStage {
	stages := make([]usecase.ExecutionStage, 0, len(m.events))
	for _, e := range m.events {
		stages = append(stages, e.Stage)
	}
	return stages
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
