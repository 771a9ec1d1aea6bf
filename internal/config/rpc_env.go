package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/samber/lo"
)

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// unsetEnvVars returns the ${VAR} references in a network entry whose
// variable is not set
func unsetEnvVars(n config.NetworkConfig) []string {
	values := append([]string{n.URL}, n.Accounts...)
	var unset []string
	for _, value := range values {
		name, ok := DetectEnvVar(strings.TrimSpace(value))
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(name); !set {
			unset = append(unset, name)
		}
	}
	return lo.Uniq(unset)
}

// expandEnv expands ${VAR} references. Unset variables become empty strings.
func expandEnv(value string) string {
	return os.ExpandEnv(value)
}

// expandNetwork returns a copy of the network entry with env references expanded
func expandNetwork(n config.NetworkConfig) config.NetworkConfig {
	n.URL = expandEnv(n.URL)
	n.ExplorerURL = expandEnv(n.ExplorerURL)
	n.Accounts = lo.Map(n.Accounts, func(account string, _ int) string {
		return strings.TrimSpace(expandEnv(account))
	})
	return n
}
