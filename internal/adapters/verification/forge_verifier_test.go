package verification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticArtifacts map[string]*models.Artifact

func (s staticArtifacts) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	if a, ok := s[name]; ok {
		return a, nil
	}
	return nil, domain.ErrArtifactNotFound
}

type recordedCall struct {
	dir  string
	name string
	args []string
}

func fakeRunner(output string, err error, calls *[]recordedCall) CommandRunner {
	return func(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
		*calls = append(*calls, recordedCall{dir: dir, name: name, args: args})
		return []byte(output), err
	}
}

var counterAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

func newTestVerifier(t *testing.T, project *config.ProjectConfig, run CommandRunner) *ForgeVerifier {
	t.Helper()
	artifacts := staticArtifacts{
		"Counter": {
			ContractName: "Counter",
			SourceName:   "contracts/Counter.sol",
			ABI:          []byte(`[{"type":"constructor","inputs":[{"name":"initialValue","type":"uint256"}],"stateMutability":"nonpayable"}]`),
			Bytecode:     "0x00",
		},
	}
	cfg := &config.RuntimeConfig{ProjectRoot: "/project", Project: project}
	return NewForgeVerifier(cfg, artifacts, run, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testProject() *config.ProjectConfig {
	return &config.ProjectConfig{
		Solidity: config.SolidityConfig{
			Version: "0.8.28",
			Profiles: map[string]config.CompilerProfile{
				"production": {Optimizer: config.OptimizerConfig{Enabled: true, Runs: 200}},
			},
		},
		Verify: config.VerifyConfig{
			Etherscan: config.EtherscanConfig{APIKey: "${HH3_TEST_ETHERSCAN_KEY}", Enabled: true},
		},
	}
}

func sepolia() *config.Network {
	return &config.Network{
		Name:   "sepolia",
		Type:   config.NetworkTypeHTTP,
		RPCURL: "https://rpc.sepolia.example",
	}
}

func TestForgeVerifierArgs(t *testing.T) {
	t.Setenv("HH3_TEST_ETHERSCAN_KEY", "ABC123")

	var calls []recordedCall
	v := newTestVerifier(t, testProject(), fakeRunner("Submitted contract for verification\nContract successfully verified", nil, &calls))

	err := v.Verify(context.Background(), models.VerificationRequest{
		Network:         sepolia(),
		ChainID:         11155111,
		ContractName:    "Counter",
		Address:         counterAddress,
		ConstructorArgs: []string{"42"},
		BuildProfile:    "production",
	})
	require.NoError(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, "/project", calls[0].dir)
	assert.Equal(t, "forge", calls[0].name)
	assert.Equal(t, []string{
		"verify-contract",
		counterAddress.Hex(),
		"contracts/Counter.sol:Counter",
		"--watch",
		"--etherscan-api-key", "ABC123",
		"--chain-id", "11155111",
		"--compiler-version", "0.8.28",
		"--num-of-optimizations", "200",
		"--constructor-args", "000000000000000000000000000000000000000000000000000000000000002a",
	}, calls[0].args)
}

func TestForgeVerifierRPCFallback(t *testing.T) {
	t.Setenv("HH3_TEST_ETHERSCAN_KEY", "ABC123")

	var calls []recordedCall
	v := newTestVerifier(t, testProject(), fakeRunner("Contract successfully verified", nil, &calls))

	err := v.Verify(context.Background(), models.VerificationRequest{
		Network:         sepolia(),
		ContractName:    "Counter",
		Address:         counterAddress,
		ConstructorArgs: []string{"0"},
	})
	require.NoError(t, err)
	assert.Contains(t, calls[0].args, "--rpc-url")
	assert.NotContains(t, calls[0].args, "--num-of-optimizations")
}

func TestForgeVerifierOutcomes(t *testing.T) {
	t.Setenv("HH3_TEST_ETHERSCAN_KEY", "ABC123")

	tests := []struct {
		name        string
		output      string
		runErr      error
		wantErr     bool
		wantAlready bool
	}{
		{
			name:   "verified",
			output: "Contract successfully verified",
		},
		{
			name:        "already verified with exit error",
			output:      "Error: Contract source code Already Verified",
			runErr:      errors.New("exit status 1"),
			wantErr:     true,
			wantAlready: true,
		},
		{
			name:        "already verified without exit error",
			output:      "Contract [contracts/Counter.sol:Counter] is already verified. Skipping verification.",
			wantErr:     true,
			wantAlready: true,
		},
		{
			name:    "failure",
			output:  "Error: Invalid API Key",
			runErr:  errors.New("exit status 1"),
			wantErr: true,
		},
		{
			name:    "unclear",
			output:  "something else",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedCall
			v := newTestVerifier(t, testProject(), fakeRunner(tt.output, tt.runErr, &calls))

			err := v.Verify(context.Background(), models.VerificationRequest{
				Network:         sepolia(),
				ChainID:         11155111,
				ContractName:    "Counter",
				Address:         counterAddress,
				ConstructorArgs: []string{"1"},
			})
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantAlready, domain.IsAlreadyVerified(err))
		})
	}
}

func TestForgeVerifierPreconditions(t *testing.T) {
	request := models.VerificationRequest{
		Network:         sepolia(),
		ChainID:         11155111,
		ContractName:    "Counter",
		Address:         counterAddress,
		ConstructorArgs: []string{"1"},
	}

	t.Run("disabled", func(t *testing.T) {
		project := testProject()
		project.Verify.Etherscan.Enabled = false
		var calls []recordedCall
		v := newTestVerifier(t, project, fakeRunner("", nil, &calls))

		err := v.Verify(context.Background(), request)
		assert.ErrorIs(t, err, domain.ErrVerificationDisabled)
		assert.Empty(t, calls)
	})

	t.Run("simulated network", func(t *testing.T) {
		var calls []recordedCall
		v := newTestVerifier(t, testProject(), fakeRunner("", nil, &calls))

		req := request
		req.Network = &config.Network{Name: "default", Type: config.NetworkTypeSimulated}
		err := v.Verify(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrVerificationDisabled)
		assert.Empty(t, calls)
	})

	t.Run("missing api key", func(t *testing.T) {
		var calls []recordedCall
		v := newTestVerifier(t, testProject(), fakeRunner("", nil, &calls))

		err := v.Verify(context.Background(), request)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "set HH3_TEST_ETHERSCAN_KEY")
		assert.Empty(t, calls)
	})

	t.Run("bad constructor argument", func(t *testing.T) {
		t.Setenv("HH3_TEST_ETHERSCAN_KEY", "ABC123")
		var calls []recordedCall
		v := newTestVerifier(t, testProject(), fakeRunner("", nil, &calls))

		req := request
		req.ConstructorArgs = []string{"-1"}
		err := v.Verify(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrIntegerOutOfRange)
		assert.Empty(t, calls)
	})
}
