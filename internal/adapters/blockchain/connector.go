package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
)

// DevAccountKey is the first well-known development account. Simulated
// networks fund it and use it when no account is configured.
const DevAccountKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// devAccountBalance is the genesis balance of the simulated deployer
var devAccountBalance = new(big.Int).Mul(big.NewInt(10_000), big.NewInt(params.Ether))

// Connector opens sessions against http JSON-RPC endpoints or in-process
// simulated chains
type Connector struct {
	log *slog.Logger
}

// NewConnector creates a new network connector
func NewConnector(log *slog.Logger) *Connector {
	return &Connector{log: log}
}

// Connect opens a session for the network
func (c *Connector) Connect(ctx context.Context, network *config.Network) (usecase.NetworkSession, error) {
	switch network.Type {
	case config.NetworkTypeSimulated:
		return c.connectSimulated(ctx, network)
	case config.NetworkTypeHTTP, "":
		return c.connectHTTP(ctx, network)
	default:
		return nil, fmt.Errorf("unsupported network type %q", network.Type)
	}
}

func (c *Connector) connectHTTP(ctx context.Context, network *config.Network) (usecase.NetworkSession, error) {
	if network.RPCURL == "" {
		if len(network.UnsetEnv) > 0 {
			return nil, fmt.Errorf("network %s has no RPC URL, set %s", network.Name, strings.Join(network.UnsetEnv, ", "))
		}
		return nil, fmt.Errorf("network %s has no RPC URL", network.Name)
	}

	key, err := firstAccount(network)
	if err != nil {
		return nil, err
	}

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := verifyChainID(ctx, client, network.ChainID)
	if err != nil {
		client.Close()
		return nil, err
	}

	c.log.Debug("connected to rpc", slog.String("network", network.Name), slog.Uint64("chain_id", chainID.Uint64()))

	return newSession(client, client.Close, nil, key, chainID, network.PollInterval, c.log), nil
}

func (c *Connector) connectSimulated(ctx context.Context, network *config.Network) (usecase.NetworkSession, error) {
	keyHex := DevAccountKey
	if len(network.Accounts) > 0 {
		keyHex = network.Accounts[0]
	}
	key, err := parsePrivateKey(keyHex)
	if err != nil {
		return nil, err
	}

	backend := simulated.NewBackend(types.GenesisAlloc{
		crypto.PubkeyToAddress(key.PublicKey): {Balance: devAccountBalance},
	})
	client := backend.Client()

	chainID, err := verifyChainID(ctx, client, network.ChainID)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	c.log.Debug("started simulated chain",
		slog.String("network", network.Name),
		slog.String("chain_type", string(network.ChainType)),
		slog.Uint64("chain_id", chainID.Uint64()),
	)

	closer := func() { _ = backend.Close() }
	return newSession(client, closer, backend, key, chainID, network.PollInterval, c.log), nil
}

type chainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// verifyChainID reads the node chain ID and checks it against the expected
// one. An expected value of 0 accepts whatever the node reports.
func verifyChainID(ctx context.Context, client chainIDReader, expected uint64) (*big.Int, error) {
	networkChainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if expected != 0 && networkChainID.Uint64() != expected {
		return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", expected, networkChainID.Uint64())
	}
	return networkChainID, nil
}

func firstAccount(network *config.Network) (*ecdsa.PrivateKey, error) {
	if len(network.Accounts) == 0 {
		if len(network.UnsetEnv) > 0 {
			return nil, fmt.Errorf("%w for network %s, set %s", domain.ErrNoAccounts, network.Name, strings.Join(network.UnsetEnv, ", "))
		}
		return nil, fmt.Errorf("%w for network %s", domain.ErrNoAccounts, network.Name)
	}
	return parsePrivateKey(network.Accounts[0])
}

func parsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// Ensure the adapter implements the interface
var _ usecase.NetworkConnector = (*Connector)(nil)
