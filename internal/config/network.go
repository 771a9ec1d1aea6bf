package config

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// DefaultPollInterval is used when a network does not set poll_interval
const DefaultPollInterval = time.Second

// NetworkResolver resolves network names from the project config
type NetworkResolver struct {
	project *config.ProjectConfig
	cache   map[string]*config.Network
	mu      sync.RWMutex
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	project := cfg.Project
	if project == nil {
		project = DefaultProjectConfig()
	}
	return &NetworkResolver{
		project: project,
		cache:   make(map[string]*config.Network),
	}
}

// GetNetworks returns the configured network names, sorted
func (r *NetworkResolver) GetNetworks(ctx context.Context) []string {
	names := lo.Keys(r.project.Networks)
	sort.Strings(names)
	return names
}

// ResolveNetwork resolves a network name to its configuration, expanding
// ${VAR} references against the environment
func (r *NetworkResolver) ResolveNetwork(ctx context.Context, name string) (*config.Network, error) {
	r.mu.RLock()
	cached, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	raw, exists := r.project.Networks[name]
	if !exists {
		return nil, r.notFound(ctx, name)
	}

	network, err := buildNetwork(name, raw)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[name] = network
	r.mu.Unlock()

	return network, nil
}

func (r *NetworkResolver) notFound(ctx context.Context, name string) error {
	names := r.GetNetworks(ctx)
	matches := fuzzy.Find(name, names)
	if len(matches) > 0 {
		return fmt.Errorf("%w: '%s' (did you mean '%s'?)", domain.ErrNetworkNotFound, name, matches[0].Str)
	}
	return fmt.Errorf("%w: '%s' (available: %s)", domain.ErrNetworkNotFound, name, strings.Join(names, ", "))
}

func buildNetwork(name string, raw config.NetworkConfig) (*config.Network, error) {
	expanded := expandNetwork(raw)

	networkType := expanded.Type
	if networkType == "" {
		networkType = config.NetworkTypeHTTP
	}
	chainType := expanded.ChainType
	if chainType == "" {
		chainType = config.ChainTypeL1
	}

	pollInterval := DefaultPollInterval
	if expanded.PollInterval != "" {
		d, err := time.ParseDuration(expanded.PollInterval)
		if err != nil {
			return nil, fmt.Errorf("network %s: invalid poll_interval %q: %w", name, expanded.PollInterval, err)
		}
		pollInterval = d
	}

	return &config.Network{
		Name:         name,
		Type:         networkType,
		ChainType:    chainType,
		ChainID:      expanded.ChainID,
		RPCURL:       expanded.URL,
		Accounts:     lo.Compact(expanded.Accounts),
		ExplorerURL:  strings.TrimSuffix(expanded.ExplorerURL, "/"),
		PollInterval: pollInterval,
		UnsetEnv:     unsetEnvVars(raw),
	}, nil
}
