package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInitCode = "0x6001600c60003960016000f300"

func TestShouldWarnMissingProjectFile(t *testing.T) {
	tests := []struct {
		name     string
		cmdName  string
		cfg      *config.RuntimeConfig
		expected bool
	}{
		{
			name:     "warns for live network without hh3.toml",
			cmdName:  "deployCounter",
			cfg:      &config.RuntimeConfig{NetworkName: "sepolia"},
			expected: true,
		},
		{
			name:     "suppressed when hh3.toml exists",
			cmdName:  "deployCounter",
			cfg:      &config.RuntimeConfig{NetworkName: "sepolia", ConfigPath: "/p/hh3.toml"},
			expected: false,
		},
		{
			name:     "suppressed on default network",
			cmdName:  "deploy",
			cfg:      &config.RuntimeConfig{NetworkName: "default"},
			expected: false,
		},
		{
			name:     "suppressed for networks command",
			cmdName:  "networks",
			cfg:      &config.RuntimeConfig{NetworkName: "sepolia"},
			expected: false,
		},
		{
			name:     "suppressed for config command",
			cmdName:  "config",
			cfg:      &config.RuntimeConfig{NetworkName: "sepolia"},
			expected: false,
		},
		{
			name:     "suppressed for version command",
			cmdName:  "version",
			cfg:      &config.RuntimeConfig{NetworkName: "sepolia"},
			expected: false,
		},
		{
			name:     "nil config",
			cmdName:  "deploy",
			cfg:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shouldWarnMissingProjectFile(tt.cmdName, tt.cfg))
		})
	}
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"deployCounter"},
		{"deploy-counter"},
		{"deploy"},
		{"verify"},
		{"networks"},
		{"config"},
		{"version"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.NotNil(t, cmd)
	}

	deploy, _, err := root.Find([]string{"deploy"})
	require.NoError(t, err)
	assert.Equal(t, "3600", deploy.Flag("minDelay").DefValue)
	assert.Equal(t, "[]", deploy.Flag("proposers").DefValue)
	assert.Equal(t, "[]", deploy.Flag("executors").DefValue)
	assert.Equal(t, "0x0000000000000000000000000000000000000000", deploy.Flag("admin").DefValue)

	counter, _, err := root.Find([]string{"deployCounter"})
	require.NoError(t, err)
	assert.Equal(t, "false", counter.Flag("verifycontract").DefValue)
}

func TestVersionCommandSkipsApp(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "hh3 version")
}

// setupProject writes Counter and TimelockController artifacts whose
// initcode ignores the appended constructor arguments
func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	artifacts := map[string]string{
		"contracts/Counter.sol/Counter.json": `{
			"contractName": "Counter",
			"sourceName": "contracts/Counter.sol",
			"abi": [{"type":"constructor","inputs":[{"name":"initialValue","type":"uint256"}],"stateMutability":"nonpayable"}],
			"bytecode": "` + testInitCode + `"
		}`,
		"@openzeppelin/contracts/governance/TimelockController.sol/TimelockController.json": `{
			"contractName": "TimelockController",
			"sourceName": "@openzeppelin/contracts/governance/TimelockController.sol",
			"abi": [{"type":"constructor","inputs":[
				{"name":"minDelay","type":"uint256"},
				{"name":"proposers","type":"address[]"},
				{"name":"executors","type":"address[]"},
				{"name":"admin","type":"address"}
			],"stateMutability":"nonpayable"}],
			"bytecode": "` + testInitCode + `"
		}`,
	}
	for rel, content := range artifacts {
		path := filepath.Join(dir, "artifacts", filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDeployCounterOnSimulatedNetwork(t *testing.T) {
	dir := setupProject(t)

	out, err := runCLI(t, "deployCounter", "42", "--project-root", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Counter deployment summary")
	// first contract created by the dev account
	assert.Contains(t, out, "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	assert.Contains(t, out, "3 confirmations")
	assert.Contains(t, out, "42")
}

func TestDeployTimelockOnSimulatedNetwork(t *testing.T) {
	dir := setupProject(t)

	out, err := runCLI(t, "deploy",
		"--project-root", dir,
		"--minDelay", "60",
		"--proposers", `["0x70997970C51812dc3A010C7d01b50e0d17dc79C8"]`,
	)
	require.NoError(t, err)

	assert.Contains(t, out, "TimelockController deployment summary")
	assert.Contains(t, out, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
}

func TestDeployRejectsInvalidParametersBeforeConnecting(t *testing.T) {
	dir := setupProject(t)

	_, err := runCLI(t, "deploy", "--project-root", dir, "--proposers", "not-json")
	require.Error(t, err)

	_, err = runCLI(t, "deploy", "--project-root", dir, "--network", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestConfigCommandRejectsUnknownFormat(t *testing.T) {
	dir := setupProject(t)

	_, err := runCLI(t, "config", "--project-root", dir, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
