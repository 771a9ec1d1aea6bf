package models

import (
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/ethereum/go-ethereum/common"
)

// VerificationStatus represents the verification status
type VerificationStatus string

const (
	VerificationStatusSkipped         VerificationStatus = "SKIPPED"
	VerificationStatusVerified        VerificationStatus = "VERIFIED"
	VerificationStatusAlreadyVerified VerificationStatus = "ALREADY_VERIFIED"
	VerificationStatusFailed          VerificationStatus = "FAILED"
)

// VerificationRequest is what a verifier needs to register a contract's
// source with a block explorer. Constructor arguments are passed as strings
// and coerced against the contract ABI by the verifier.
type VerificationRequest struct {
	Network         *config.Network
	ChainID         uint64 // overrides Network.ChainID when set
	ContractName    string
	Address         common.Address
	ConstructorArgs []string
	BuildProfile    string
}

// VerificationOutcome records how a best-effort verification ended
type VerificationOutcome struct {
	Status  VerificationStatus
	Message string
	URL     string
}
