package config

// ProjectConfig represents the hh3.toml project configuration
type ProjectConfig struct {
	Paths    PathsConfig              `toml:"paths" yaml:"paths"`
	Solidity SolidityConfig           `toml:"solidity" yaml:"solidity"`
	Networks map[string]NetworkConfig `toml:"networks" yaml:"networks"`
	Verify   VerifyConfig             `toml:"verify" yaml:"verify"`
}

// PathsConfig locates build outputs relative to the project root
type PathsConfig struct {
	Artifacts string `toml:"artifacts,omitempty" yaml:"artifacts,omitempty"`
	Sources   string `toml:"sources,omitempty" yaml:"sources,omitempty"`
}

// SolidityConfig holds compiler settings consumed by the external toolchain
type SolidityConfig struct {
	Version         string                     `toml:"version,omitempty" yaml:"version,omitempty"`
	NpmFilesToBuild []string                   `toml:"npm_files_to_build,omitempty" yaml:"npmFilesToBuild,omitempty"`
	Profiles        map[string]CompilerProfile `toml:"profiles,omitempty" yaml:"profiles,omitempty"`
}

// CompilerProfile is a named compiler settings set (default, production, ...)
type CompilerProfile struct {
	Version   string          `toml:"version,omitempty" yaml:"version,omitempty"`
	Optimizer OptimizerConfig `toml:"optimizer,omitempty" yaml:"optimizer,omitempty"`
}

// OptimizerConfig mirrors solc optimizer settings
type OptimizerConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
	Runs    int  `toml:"runs,omitempty" yaml:"runs,omitempty"`
}

// NetworkType selects how a session is opened
type NetworkType string

const (
	NetworkTypeHTTP      NetworkType = "http"
	NetworkTypeSimulated NetworkType = "simulated"
)

// ChainType labels the chain flavour of a network
type ChainType string

const (
	ChainTypeL1 ChainType = "l1"
	ChainTypeOP ChainType = "op"
)

// NetworkConfig is a named network entry in hh3.toml
type NetworkConfig struct {
	Type         NetworkType `toml:"type" yaml:"type"`
	ChainType    ChainType   `toml:"chain_type,omitempty" yaml:"chainType,omitempty"`
	ChainID      uint64      `toml:"chain_id,omitempty" yaml:"chainId,omitempty"`
	URL          string      `toml:"url,omitempty" yaml:"url,omitempty"`
	Accounts     []string    `toml:"accounts,omitempty" yaml:"accounts,omitempty"` //nolint:gosec // holds env var references
	ExplorerURL  string      `toml:"explorer_url,omitempty" yaml:"explorerUrl,omitempty"`
	PollInterval string      `toml:"poll_interval,omitempty" yaml:"pollInterval,omitempty"`
}

// VerifyConfig holds block explorer verification settings
type VerifyConfig struct {
	Etherscan EtherscanConfig `toml:"etherscan" yaml:"etherscan"`
}

// EtherscanConfig represents Etherscan verification settings
type EtherscanConfig struct {
	APIKey  string `toml:"api_key,omitempty" yaml:"apiKey,omitempty"`
	Enabled bool   `toml:"enabled" yaml:"enabled"`
}

// Profile returns the named compiler profile, falling back to the top level
// solidity version when the profile is missing or has no version
func (s SolidityConfig) Profile(name string) CompilerProfile {
	profile, ok := s.Profiles[name]
	if !ok {
		profile = s.Profiles["default"]
	}
	if profile.Version == "" {
		profile.Version = s.Version
	}
	return profile
}
