package adapters

import (
	"github.com/SyedAsadKazmi/dummy-hh3/internal/adapters/blockchain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/adapters/interactive"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/adapters/repository/contracts"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/adapters/verification"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/google/wire"
)

// ProvideCommandRunner provides the os/exec backed runner for external tools
func ProvideCommandRunner() verification.CommandRunner {
	return verification.ExecRunner
}

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.NewNetworkResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*config.NetworkResolver)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewConnector,
	wire.Bind(new(usecase.NetworkConnector), new(*blockchain.Connector)),
)

// RepositorySet provides artifact storage
var RepositorySet = wire.NewSet(
	contracts.NewRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*contracts.Repository)),
)

// VerificationSet provides explorer verification
var VerificationSet = wire.NewSet(
	ProvideCommandRunner,
	verification.NewForgeVerifier,
	wire.Bind(new(usecase.ContractVerifier), new(*verification.ForgeVerifier)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmer,
	wire.Bind(new(usecase.DeploymentConfirmer), new(*interactive.Confirmer)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ConfigSet,
	BlockchainSet,
	RepositorySet,
	VerificationSet,
	InteractiveSet,
)
