package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Artifact represents a compiled contract as produced by the external
// toolchain. Both the hardhat (flat bytecode string) and the foundry
// (bytecode object) layouts decode into it.
type Artifact struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     Bytecode        `json:"bytecode"`
	Path         string          `json:"-"` // file the artifact was read from

	parsed *abi.ABI
}

// Bytecode accepts either "0x..." or {"object": "0x..."}
type Bytecode string

// UnmarshalJSON implements json.Unmarshaler
func (b *Bytecode) UnmarshalJSON(data []byte) error {
	var flat string
	if err := json.Unmarshal(data, &flat); err == nil {
		*b = Bytecode(flat)
		return nil
	}

	var object struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(data, &object); err != nil {
		return fmt.Errorf("unsupported bytecode format: %w", err)
	}
	*b = Bytecode(object.Object)
	return nil
}

// Bytes decodes the bytecode hex
func (b Bytecode) Bytes() []byte {
	return common.FromHex(string(b))
}

// IsEmpty reports whether there is no deployable bytecode
func (b Bytecode) IsEmpty() bool {
	s := strings.TrimPrefix(string(b), "0x")
	return s == ""
}

// IsLinked reports whether all library placeholders are resolved
func (b Bytecode) IsLinked() bool {
	return !strings.Contains(string(b), "__")
}

// ParsedABI returns the decoded ABI, parsing it on first use
func (a *Artifact) ParsedABI() (*abi.ABI, error) {
	if a.parsed != nil {
		return a.parsed, nil
	}
	parsed, err := abi.JSON(strings.NewReader(string(a.ABI)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", a.ContractName, err)
	}
	a.parsed = &parsed
	return a.parsed, nil
}

// FullyQualifiedName returns "<source>:<contract>"
func (a *Artifact) FullyQualifiedName() string {
	return fmt.Sprintf("%s:%s", a.SourceName, a.ContractName)
}
