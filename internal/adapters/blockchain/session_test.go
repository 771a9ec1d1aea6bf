package blockchain

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initcode returns a single STOP byte as runtime code and ignores any
// appended constructor arguments
const testInitcode = "0x6001600c60003960016000f300"

func testArtifact() *models.Artifact {
	return &models.Artifact{
		ContractName: "Counter",
		SourceName:   "contracts/Counter.sol",
		ABI:          []byte(`[{"type":"constructor","inputs":[{"name":"initialValue","type":"uint256"}],"stateMutability":"nonpayable"}]`),
		Bytecode:     models.Bytecode(testInitcode),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func connectSimulated(t *testing.T) *Session {
	t.Helper()
	connector := NewConnector(testLogger())
	session, err := connector.Connect(context.Background(), &config.Network{
		Name:         "default",
		Type:         config.NetworkTypeSimulated,
		ChainType:    config.ChainTypeL1,
		PollInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(session.Close)
	return session.(*Session)
}

func TestSimulatedSessionDeploy(t *testing.T) {
	ctx := context.Background()
	session := connectSimulated(t)

	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), session.Deployer())
	assert.NotZero(t, session.ChainID())

	start, err := session.BlockNumber(ctx)
	require.NoError(t, err)

	pending, err := session.SendDeployment(ctx, testArtifact(), []any{big.NewInt(42)})
	require.NoError(t, err)
	assert.Equal(t, session.Deployer(), pending.From)
	assert.NotEqual(t, common.Address{}, pending.ContractAddress)

	receipt, err := session.WaitForReceipt(ctx, pending.TransactionHash, 3)
	require.NoError(t, err)
	assert.Equal(t, pending.TransactionHash, receipt.TransactionHash)
	assert.Greater(t, receipt.BlockNumber, start)
	assert.GreaterOrEqual(t, receipt.Confirmations, uint64(3))
	assert.NotZero(t, receipt.GasUsed)

	head, err := session.BlockNumber(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, head, receipt.BlockNumber+2)

	reader, ok := session.client.(interface {
		CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	})
	require.True(t, ok)
	code, err := reader.CodeAt(ctx, pending.ContractAddress, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, code)
}

// Addresses derive from sender and nonce, so they are distinct per chain.
// Every Connect on a simulated network starts a fresh chain at nonce 0.
func TestSimulatedSessionDistinctAddresses(t *testing.T) {
	ctx := context.Background()
	session := connectSimulated(t)

	first, err := session.SendDeployment(ctx, testArtifact(), []any{big.NewInt(1)})
	require.NoError(t, err)
	_, err = session.WaitForReceipt(ctx, first.TransactionHash, 0)
	require.NoError(t, err)

	second, err := session.SendDeployment(ctx, testArtifact(), []any{big.NewInt(1)})
	require.NoError(t, err)
	_, err = session.WaitForReceipt(ctx, second.TransactionHash, 0)
	require.NoError(t, err)

	assert.NotEqual(t, first.ContractAddress, second.ContractAddress)
	assert.Equal(t, first.Nonce+1, second.Nonce)
}

func TestSimulatedSessionRejectsNegativeValue(t *testing.T) {
	session := connectSimulated(t)

	_, err := session.SendDeployment(context.Background(), testArtifact(), []any{big.NewInt(-1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntegerOutOfRange)
}

func TestSimulatedSessionChainIDMismatch(t *testing.T) {
	connector := NewConnector(testLogger())
	_, err := connector.Connect(context.Background(), &config.Network{
		Name:    "default",
		Type:    config.NetworkTypeSimulated,
		ChainID: 999_999,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain ID mismatch")
}

func TestHTTPConnectRequiresConfiguration(t *testing.T) {
	connector := NewConnector(testLogger())

	t.Run("missing url", func(t *testing.T) {
		_, err := connector.Connect(context.Background(), &config.Network{
			Name:     "sepolia",
			Type:     config.NetworkTypeHTTP,
			UnsetEnv: []string{"SEPOLIA_RPC_URL"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "set SEPOLIA_RPC_URL")
	})

	t.Run("missing account", func(t *testing.T) {
		_, err := connector.Connect(context.Background(), &config.Network{
			Name:   "sepolia",
			Type:   config.NetworkTypeHTTP,
			RPCURL: "http://127.0.0.1:1",
		})
		assert.ErrorIs(t, err, domain.ErrNoAccounts)
	})

	t.Run("bad key", func(t *testing.T) {
		_, err := connector.Connect(context.Background(), &config.Network{
			Name:     "sepolia",
			Type:     config.NetworkTypeHTTP,
			RPCURL:   "http://127.0.0.1:1",
			Accounts: []string{"0xnothex"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid private key")
	})
}

func TestConfirmationsAt(t *testing.T) {
	tests := []struct {
		name     string
		head     uint64
		included uint64
		want     uint64
	}{
		{"same block", 10, 10, 1},
		{"two blocks on top", 12, 10, 3},
		{"lagging node", 9, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, confirmationsAt(tt.head, tt.included))
		})
	}
}
