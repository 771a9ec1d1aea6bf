package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/joho/godotenv"
)

// ProjectFileName is the project configuration file looked up from the
// working directory upwards
const ProjectFileName = "hh3.toml"

// DefaultNetwork is used when no --network is given
const DefaultNetwork = "default"

// DefaultProjectConfig returns the configuration used when no hh3.toml exists
func DefaultProjectConfig() *config.ProjectConfig {
	return &config.ProjectConfig{
		Paths: config.PathsConfig{
			Artifacts: "artifacts",
			Sources:   "contracts",
		},
		Solidity: config.SolidityConfig{
			Version: "0.8.28",
			NpmFilesToBuild: []string{
				"@openzeppelin/contracts/governance/TimelockController.sol",
			},
			Profiles: map[string]config.CompilerProfile{
				"default": {
					Version: "0.8.28",
				},
				"production": {
					Version: "0.8.28",
					Optimizer: config.OptimizerConfig{
						Enabled: true,
						Runs:    200,
					},
				},
			},
		},
		Networks: map[string]config.NetworkConfig{
			DefaultNetwork: {
				Type:      config.NetworkTypeSimulated,
				ChainType: config.ChainTypeL1,
			},
			"hardhatMainnet": {
				Type:      config.NetworkTypeSimulated,
				ChainType: config.ChainTypeL1,
			},
			"hardhatOp": {
				Type:      config.NetworkTypeSimulated,
				ChainType: config.ChainTypeOP,
			},
			"sepolia": {
				Type:        config.NetworkTypeHTTP,
				ChainType:   config.ChainTypeL1,
				URL:         "${SEPOLIA_RPC_URL}",
				Accounts:    []string{"${ACCOUNT_PRIVATE_KEY}"},
				ExplorerURL: "https://sepolia.etherscan.io",
			},
			"avalancheFuji": {
				Type:        config.NetworkTypeHTTP,
				ChainType:   config.ChainTypeL1,
				URL:         "${AVALANCHE_FUJI_RPC_URL}",
				Accounts:    []string{"${ACCOUNT_PRIVATE_KEY}"},
				ExplorerURL: "https://testnet.snowtrace.io",
			},
		},
		Verify: config.VerifyConfig{
			Etherscan: config.EtherscanConfig{
				APIKey:  "${ETHERSCAN_API_KEY}",
				Enabled: true,
			},
		},
	}
}

// LoadEnvFiles loads .env and .env.local from the project root. Variables
// already present in the environment win.
func LoadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// LoadProjectConfig reads hh3.toml from the project root. A missing file
// yields the defaults and an empty path. Values present in the file replace
// the defaults section by section; networks are merged by name.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, string, error) {
	cfg := DefaultProjectConfig()

	path := filepath.Join(projectRoot, ProjectFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, "", nil
	}

	var file config.ProjectConfig
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	if meta.IsDefined("paths", "artifacts") {
		cfg.Paths.Artifacts = file.Paths.Artifacts
	}
	if meta.IsDefined("paths", "sources") {
		cfg.Paths.Sources = file.Paths.Sources
	}
	if meta.IsDefined("solidity") {
		cfg.Solidity = file.Solidity
	}
	if meta.IsDefined("verify", "etherscan") {
		cfg.Verify = file.Verify
	}
	for name, network := range file.Networks {
		if network.Type == "" {
			network.Type = config.NetworkTypeHTTP
		}
		if network.ChainType == "" {
			network.ChainType = config.ChainTypeL1
		}
		cfg.Networks[name] = network
	}

	return cfg, path, nil
}

// FindProjectRoot walks up from dir to find hh3.toml. When none exists the
// starting directory is the project root.
func FindProjectRoot(dir string) (string, error) {
	start, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	dir = start
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding hh3.toml
			return start, nil
		}
		dir = parent
	}
}
