package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrInvalidParameter is returned when a task parameter cannot be parsed
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNetworkNotFound is returned when a network name is not configured
	ErrNetworkNotFound = errors.New("network not found")

	// ErrNoAccounts is returned when a live network has no usable account
	ErrNoAccounts = errors.New("no accounts configured")

	// ErrArtifactNotFound is returned when a compiled artifact can't be found
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrIntegerOutOfRange is returned when a value doesn't fit its ABI type
	ErrIntegerOutOfRange = errors.New("integer out of range")

	// ErrTransactionReverted is returned when a mined transaction failed
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrAlreadyVerified is returned by verifiers when the explorer already
	// has the contract source
	ErrAlreadyVerified = errors.New("Already Verified")

	// ErrVerificationDisabled is returned when explorer verification is off
	ErrVerificationDisabled = errors.New("verification disabled")

	// ErrDeploymentCancelled is returned when the user declines to broadcast
	ErrDeploymentCancelled = errors.New("deployment cancelled")
)

// IsAlreadyVerified reports whether a verification failure only means the
// explorer already knows the contract
func IsAlreadyVerified(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrAlreadyVerified) || strings.Contains(err.Error(), "Already Verified")
}
