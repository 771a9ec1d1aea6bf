package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Default task parameter values
const (
	DefaultInitialValue = "0"
	DefaultMinDelay     = "3600"
	DefaultRoleList     = "[]"

	// ZeroAddress is accepted as admin without address validation
	ZeroAddress = "0x0000000000000000000000000000000000000000"
)

// Contract names deployed by the tasks
const (
	CounterContract  = "Counter"
	TimelockContract = "TimelockController"
)

// CounterInput holds the raw deployCounter invocation parameters
type CounterInput struct {
	InitialValue string
	Verify       bool
}

// CounterParams holds validated deployCounter parameters
type CounterParams struct {
	InitialValue *big.Int
	// InitialValueRaw is forwarded to the verifier as-is
	InitialValueRaw string
	Verify          bool
}

// ConstructorArgs returns the Counter constructor arguments
func (p *CounterParams) ConstructorArgs() []any {
	return []any{p.InitialValue}
}

// TimelockInput holds the raw deploy invocation parameters
type TimelockInput struct {
	MinDelay  string
	Proposers string
	Executors string
	Admin     string
}

// TimelockParams holds validated TimelockController constructor parameters
type TimelockParams struct {
	MinDelay  *big.Int
	Proposers []common.Address
	Executors []common.Address
	Admin     common.Address
}

// ConstructorArgs returns the TimelockController constructor arguments in
// declaration order: minDelay, proposers, executors, admin
func (p *TimelockParams) ConstructorArgs() []any {
	return []any{p.MinDelay, p.Proposers, p.Executors, p.Admin}
}

// WithDefaults returns a copy of the input with defaults applied to empty fields
func (in CounterInput) WithDefaults() CounterInput {
	if strings.TrimSpace(in.InitialValue) == "" {
		in.InitialValue = DefaultInitialValue
	}
	return in
}

// WithDefaults returns a copy of the input with defaults applied to empty fields
func (in TimelockInput) WithDefaults() TimelockInput {
	if in.MinDelay == "" {
		in.MinDelay = DefaultMinDelay
	}
	if in.Proposers == "" {
		in.Proposers = DefaultRoleList
	}
	if in.Executors == "" {
		in.Executors = DefaultRoleList
	}
	if in.Admin == "" {
		in.Admin = ZeroAddress
	}
	return in
}

// ParseCounterParams applies defaults and validates deployCounter parameters.
// Negative values are accepted; range checks happen when arguments are encoded.
func ParseCounterParams(in CounterInput) (*CounterParams, error) {
	in = in.WithDefaults()

	value, err := ParseInteger("initialValue", in.InitialValue)
	if err != nil {
		return nil, err
	}

	return &CounterParams{
		InitialValue:    value,
		InitialValueRaw: in.InitialValue,
		Verify:          in.Verify,
	}, nil
}

// ParseTimelockParams applies defaults and validates deploy parameters
func ParseTimelockParams(in TimelockInput) (*TimelockParams, error) {
	in = in.WithDefaults()

	minDelay, err := ParseInteger("minDelay", in.MinDelay)
	if err != nil {
		return nil, err
	}

	proposers, err := ParseAddressList("proposers", in.Proposers)
	if err != nil {
		return nil, err
	}

	executors, err := ParseAddressList("executors", in.Executors)
	if err != nil {
		return nil, err
	}

	admin, err := ParseAdmin(in.Admin)
	if err != nil {
		return nil, err
	}

	return &TimelockParams{
		MinDelay:  minDelay,
		Proposers: proposers,
		Executors: executors,
		Admin:     admin,
	}, nil
}

// integerPattern accepts a signed decimal (leading zeros stay decimal) or an
// unsigned 0x/0o/0b literal. Underscores are never allowed.
var integerPattern = regexp.MustCompile(`^(?:[+-]?[0-9]+|0[xX][0-9a-fA-F]+|0[oO][0-7]+|0[bB][01]+)$`)

// ParseInteger parses an integer string. Surrounding whitespace is ignored
// and a blank value is zero.
func ParseInteger(name, raw string) (*big.Int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return new(big.Int), nil
	}
	if !integerPattern.MatchString(trimmed) {
		return nil, fmt.Errorf("%w: cannot convert %s=%q to an integer", ErrInvalidParameter, name, raw)
	}

	base := 10
	if len(trimmed) > 1 && trimmed[0] == '0' {
		switch trimmed[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
	}
	digits := trimmed
	if base != 10 {
		digits = trimmed[2:]
	}

	value, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%w: cannot convert %s=%q to an integer", ErrInvalidParameter, name, raw)
	}
	return value, nil
}

// ParseAddressList decodes a JSON array of addresses. The literal "[]" maps
// to an empty list without going through the JSON decoder.
func ParseAddressList(name, raw string) ([]common.Address, error) {
	if raw == DefaultRoleList {
		return []common.Address{}, nil
	}

	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: %s must be a JSON array of addresses: %v", ErrInvalidParameter, name, err)
	}
	// null decodes without error into a nil slice
	if entries == nil {
		return nil, fmt.Errorf("%w: %s must be a JSON array of addresses, got %s", ErrInvalidParameter, name, strings.TrimSpace(raw))
	}

	addresses := make([]common.Address, 0, len(entries))
	for i, entry := range entries {
		if !IsValidAddress(entry) {
			return nil, fmt.Errorf("%w: %s[%d]: %s", ErrInvalidAddress, name, i, entry)
		}
		addresses = append(addresses, common.HexToAddress(entry))
	}

	return addresses, nil
}

// ParseAdmin validates the timelock admin. The zero address sentinel
// bypasses format validation.
func ParseAdmin(raw string) (common.Address, error) {
	if IsZeroAddressSentinel(raw) {
		return common.Address{}, nil
	}
	if !IsValidAddress(raw) {
		return common.Address{}, fmt.Errorf("Invalid admin address: %s: %w", raw, ErrInvalidAddress)
	}
	return common.HexToAddress(raw), nil
}

// IsZeroAddressSentinel reports whether raw is exactly the zero address sentinel
func IsZeroAddressSentinel(raw string) bool {
	return raw == ZeroAddress
}

// IsValidAddress reports whether raw is a 0x-prefixed 20 byte hex address.
// Mixed-case input must carry a valid EIP-55 checksum.
func IsValidAddress(raw string) bool {
	if !strings.HasPrefix(raw, "0x") || !common.IsHexAddress(raw) {
		return false
	}
	body := raw[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return common.HexToAddress(raw).Hex() == raw
}
