package verification

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	abiencoder "github.com/SyedAsadKazmi/dummy-hh3/internal/adapters/abi"
	cfgpkg "github.com/SyedAsadKazmi/dummy-hh3/internal/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
)

// CommandRunner runs an external command and returns its combined output
type CommandRunner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// ForgeVerifier submits sources to Etherscan compatible explorers through
// forge verify-contract
type ForgeVerifier struct {
	projectRoot string
	project     *config.ProjectConfig
	artifacts   usecase.ArtifactRepository
	run         CommandRunner
	log         *slog.Logger
}

// NewForgeVerifier creates a new forge backed verifier
func NewForgeVerifier(cfg *config.RuntimeConfig, artifacts usecase.ArtifactRepository, run CommandRunner, log *slog.Logger) *ForgeVerifier {
	project := cfg.Project
	if project == nil {
		project = cfgpkg.DefaultProjectConfig()
	}
	return &ForgeVerifier{
		projectRoot: cfg.ProjectRoot,
		project:     project,
		artifacts:   artifacts,
		run:         run,
		log:         log,
	}
}

// Verify performs contract verification. A contract the explorer already
// knows yields an error wrapping domain.ErrAlreadyVerified.
func (v *ForgeVerifier) Verify(ctx context.Context, request models.VerificationRequest) error {
	etherscan := v.project.Verify.Etherscan
	if !etherscan.Enabled {
		return fmt.Errorf("%w: verify.etherscan.enabled is false", domain.ErrVerificationDisabled)
	}
	if request.Network == nil {
		return fmt.Errorf("no network given for verification")
	}
	if !request.Network.IsLive() {
		return fmt.Errorf("%w: %s is a simulated network", domain.ErrVerificationDisabled, request.Network.Name)
	}

	apiKey := strings.TrimSpace(os.ExpandEnv(etherscan.APIKey))
	if apiKey == "" {
		if name, ok := cfgpkg.DetectEnvVar(etherscan.APIKey); ok {
			return fmt.Errorf("etherscan API key is not set, set %s", name)
		}
		return fmt.Errorf("etherscan API key is not set")
	}

	args, err := v.buildVerifyArgs(ctx, request, apiKey)
	if err != nil {
		return err
	}

	v.log.Debug("running forge verify-contract",
		slog.String("address", request.Address.Hex()),
		slog.String("contract", request.ContractName),
		slog.String("network", request.Network.Name),
	)

	output, err := v.run(ctx, v.projectRoot, "forge", args...)
	return interpretOutput(string(output), err)
}

// buildVerifyArgs builds the forge verify-contract args for Etherscan
func (v *ForgeVerifier) buildVerifyArgs(ctx context.Context, request models.VerificationRequest, apiKey string) ([]string, error) {
	artifact, err := v.artifacts.GetArtifact(ctx, request.ContractName)
	if err != nil {
		return nil, err
	}

	args := []string{
		"verify-contract",
		request.Address.Hex(),
		artifact.FullyQualifiedName(),
		"--watch",
		"--etherscan-api-key", apiKey,
	}

	chainID := request.ChainID
	if chainID == 0 {
		chainID = request.Network.ChainID
	}
	if chainID != 0 {
		args = append(args, "--chain-id", strconv.FormatUint(chainID, 10))
	} else {
		args = append(args, "--rpc-url", request.Network.RPCURL)
	}

	profile := v.project.Solidity.Profile(request.BuildProfile)
	if profile.Version != "" {
		args = append(args, "--compiler-version", profile.Version)
	}
	if profile.Optimizer.Enabled {
		args = append(args, "--num-of-optimizations", strconv.Itoa(profile.Optimizer.Runs))
	}

	parsed, err := artifact.ParsedABI()
	if err != nil {
		return nil, err
	}
	if len(parsed.Constructor.Inputs) > 0 {
		values, err := abiencoder.CoerceArgs(parsed, request.ConstructorArgs)
		if err != nil {
			return nil, fmt.Errorf("constructor arguments: %w", err)
		}
		encoded, err := abiencoder.EncodeConstructorArgs(parsed, values)
		if err != nil {
			return nil, err
		}
		args = append(args, "--constructor-args", common.Bytes2Hex(encoded))
	}

	return args, nil
}

// interpretOutput maps forge output to a verification result
func interpretOutput(output string, runErr error) error {
	output = strings.TrimSpace(output)
	lower := strings.ToLower(output)

	if strings.Contains(lower, "already verified") {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyVerified, lastLine(output))
	}

	if runErr != nil {
		if output == "" {
			return fmt.Errorf("verification failed: %w", runErr)
		}
		return fmt.Errorf("verification failed: %s", output)
	}

	if strings.Contains(lower, "successfully verified") || strings.Contains(lower, "pass - verified") {
		return nil
	}

	return fmt.Errorf("verification status unclear: %s", output)
}

func lastLine(output string) string {
	lines := strings.Split(output, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

// Ensure it implements the interface
var _ usecase.ContractVerifier = (*ForgeVerifier)(nil)
