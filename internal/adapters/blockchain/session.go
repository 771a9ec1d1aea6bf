package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	abiencoder "github.com/SyedAsadKazmi/dummy-hh3/internal/adapters/abi"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// ethClient is the part of the node API a session needs. Both
// *ethclient.Client and the simulated backend client satisfy it.
type ethClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// miner builds blocks on demand. Only simulated chains have one.
type miner interface {
	Commit() common.Hash
}

// Session is a connection to one network with a signing account
type Session struct {
	client       ethClient
	closer       func()
	miner        miner
	key          *ecdsa.PrivateKey
	from         common.Address
	chainID      *big.Int
	pollInterval time.Duration
	log          *slog.Logger
}

func newSession(client ethClient, closer func(), m miner, key *ecdsa.PrivateKey, chainID *big.Int, pollInterval time.Duration, log *slog.Logger) *Session {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &Session{
		client:       client,
		closer:       closer,
		miner:        m,
		key:          key,
		from:         crypto.PubkeyToAddress(key.PublicKey),
		chainID:      chainID,
		pollInterval: pollInterval,
		log:          log,
	}
}

// ChainID returns the chain ID reported by the node
func (s *Session) ChainID() uint64 {
	return s.chainID.Uint64()
}

// Deployer returns the signing account
func (s *Session) Deployer() common.Address {
	return s.from
}

// BlockNumber reads the current chain head
func (s *Session) BlockNumber(ctx context.Context) (uint64, error) {
	return s.client.BlockNumber(ctx)
}

// SendDeployment encodes the constructor call, signs a contract creation
// transaction and broadcasts it
func (s *Session) SendDeployment(ctx context.Context, artifact *models.Artifact, args []any) (*models.PendingDeployment, error) {
	parsed, err := artifact.ParsedABI()
	if err != nil {
		return nil, err
	}

	encoded, err := abiencoder.EncodeConstructorArgs(parsed, args)
	if err != nil {
		return nil, err
	}

	bytecode := artifact.Bytecode.Bytes()
	data := make([]byte, 0, len(bytecode)+len(encoded))
	data = append(data, bytecode...)
	data = append(data, encoded...)

	nonce, err := s.client.PendingNonceAt(ctx, s.from)
	if err != nil {
		return nil, fmt.Errorf("get nonce: %w", err)
	}

	gasLimit, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  s.from,
		Value: big.NewInt(0),
		Data:  data,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}
	// Add 20% buffer
	gasLimit = gasLimit * 120 / 100

	tx, err := s.buildTransaction(ctx, nonce, gasLimit, data)
	if err != nil {
		return nil, err
	}

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	s.log.Debug("deployment submitted",
		slog.String("contract", artifact.ContractName),
		slog.String("tx_hash", signedTx.Hash().Hex()),
		slog.Uint64("nonce", nonce),
		slog.Uint64("gas_limit", gasLimit),
	)

	if s.miner != nil {
		s.miner.Commit()
	}

	return &models.PendingDeployment{
		ContractName:    artifact.ContractName,
		ContractAddress: crypto.CreateAddress(s.from, nonce),
		TransactionHash: signedTx.Hash(),
		Nonce:           nonce,
		From:            s.from,
	}, nil
}

// buildTransaction prices the transaction as EIP-1559 when the chain has a
// base fee and as legacy otherwise
func (s *Session) buildTransaction(ctx context.Context, nonce, gasLimit uint64, data []byte) (*types.Transaction, error) {
	head, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("get head: %w", err)
	}

	if head.BaseFee == nil {
		gasPrice, err := s.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("get gas price: %w", err)
		}
		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gasLimit,
			Value:    big.NewInt(0),
			Data:     data,
		}), nil
	}

	tip, err := s.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("get gas tip: %w", err)
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   s.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		Value:     big.NewInt(0),
		Data:      data,
	}), nil
}

// WaitForReceipt polls for the receipt and then for the chain head until
// the transaction has the requested number of confirmations. Inclusion
// counts as one confirmation.
func (s *Session) WaitForReceipt(ctx context.Context, txHash common.Hash, confirmations uint64) (*models.Receipt, error) {
	if confirmations == 0 {
		confirmations = 1
	}

	var receipt *types.Receipt
	for {
		if receipt == nil {
			r, err := s.client.TransactionReceipt(ctx, txHash)
			switch {
			case err == nil:
				if r.Status != types.ReceiptStatusSuccessful {
					return nil, fmt.Errorf("%w: %s in block %d", domain.ErrTransactionReverted, txHash.Hex(), r.BlockNumber.Uint64())
				}
				receipt = r
			case errors.Is(err, ethereum.NotFound):
				s.log.Debug("transaction not yet mined", slog.String("tx_hash", txHash.Hex()))
			default:
				return nil, fmt.Errorf("get receipt: %w", err)
			}
		}

		if receipt != nil {
			head, err := s.client.BlockNumber(ctx)
			if err != nil {
				return nil, fmt.Errorf("get block number: %w", err)
			}
			got := confirmationsAt(head, receipt.BlockNumber.Uint64())
			if got >= confirmations {
				return &models.Receipt{
					TransactionHash: txHash,
					BlockNumber:     receipt.BlockNumber.Uint64(),
					GasUsed:         receipt.GasUsed,
					Confirmations:   got,
				}, nil
			}
		}

		if s.miner != nil {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			s.miner.Commit()
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}
}

// confirmationsAt counts the block holding the transaction as the first
// confirmation
func confirmationsAt(head, included uint64) uint64 {
	if head < included {
		return 0
	}
	return head - included + 1
}

// Close releases the connection
func (s *Session) Close() {
	if s.closer != nil {
		s.closer()
	}
}

// Ensure the adapter implements the interface
var _ usecase.NetworkSession = (*Session)(nil)
