package models

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

// PendingDeployment is a broadcast deployment transaction awaiting inclusion
type PendingDeployment struct {
	ContractName    string
	ContractAddress common.Address
	TransactionHash common.Hash
	Nonce           uint64
	From            common.Address
}

// Receipt is the part of a transaction receipt the tasks report
type Receipt struct {
	TransactionHash common.Hash
	BlockNumber     uint64
	GasUsed         uint64
	Confirmations   uint64
}

// DeploymentResult is the ephemeral outcome of a deployment task. It is
// rendered, never stored.
type DeploymentResult struct {
	ContractName    string
	ContractAddress common.Address
	TransactionHash common.Hash
	Network         string
	ChainID         uint64
	BlockNumber     uint64
	GasUsed         uint64
	Confirmations   uint64
	Deployer        common.Address
	ConstructorArgs []any
}

// FormatArg renders a constructor argument for display
func FormatArg(arg any) string {
	switch v := arg.(type) {
	case *big.Int:
		return v.String()
	case common.Address:
		return v.Hex()
	case []common.Address:
		return "[" + strings.Join(lo.Map(v, func(addr common.Address, _ int) string {
			return addr.Hex()
		}), ", ") + "]"
	case string:
		return v
	default:
		return "?"
	}
}
