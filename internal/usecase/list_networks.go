package usecase

import (
	"context"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name        string
	Type        config.NetworkType
	ChainType   config.ChainType
	ChainID     uint64
	HasURL      bool
	HasAccounts bool
	MissingEnv  []string
	Error       error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	cfg      *config.RuntimeConfig
	resolver NetworkResolver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver) *ListNetworks {
	return &ListNetworks{
		cfg:      cfg,
		resolver: resolver,
	}
}

// Run executes the use case. Nothing is dialed; chain IDs are only shown
// when configured.
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name: name,
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
		} else {
			status.Type = info.Type
			status.ChainType = info.ChainType
			status.ChainID = info.ChainID
			status.HasURL = info.RPCURL != ""
			status.HasAccounts = len(info.Accounts) > 0 && info.Accounts[0] != ""
			status.MissingEnv = info.UnsetEnv
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Current:  uc.cfg.NetworkName,
	}, nil
}
