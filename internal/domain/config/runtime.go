package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	ArtifactsDir string
	ConfigPath   string // empty when built-in defaults are used

	// Context settings
	NetworkName  string // resolved lazily through the network resolver
	BuildProfile string

	// Execution settings
	Debug          bool
	NonInteractive bool
	AssumeYes      bool
	Timeout        time.Duration

	// Resolved configurations
	Project *ProjectConfig
}

// Network represents a resolved network with env references expanded
type Network struct {
	Name         string
	Type         NetworkType
	ChainType    ChainType
	ChainID      uint64 // 0 means read from the node
	RPCURL       string
	Accounts     []string
	ExplorerURL  string
	PollInterval time.Duration
	UnsetEnv     []string // ${VAR} references that were not set
}

// IsLive reports whether broadcasting on this network has real side effects
func (n *Network) IsLive() bool {
	return n.Type != NetworkTypeSimulated
}
