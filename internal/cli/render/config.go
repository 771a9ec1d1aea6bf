package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// Render renders the configuration display
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	fmt.Fprintln(r.out, "📋 Current config:")
	fmt.Fprintf(r.out, "Network:       %s\n", result.NetworkName)
	fmt.Fprintf(r.out, "Build profile: %s\n", result.BuildProfile)

	if result.Exists {
		fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))
	} else {
		fmt.Fprintf(r.out, "📁 config file: (none, using built-in defaults)\n")
	}

	project := result.Project
	if project == nil {
		return nil
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Artifacts:     %s\n", project.Paths.Artifacts)
	fmt.Fprintf(r.out, "Solidity:      %s\n", orNone(project.Solidity.Version))

	profiles := lo.Keys(project.Solidity.Profiles)
	sort.Strings(profiles)
	for _, name := range profiles {
		profile := project.Solidity.Profile(name)
		optimizer := "optimizer off"
		if profile.Optimizer.Enabled {
			optimizer = fmt.Sprintf("optimizer on, %d runs", profile.Optimizer.Runs)
		}
		fmt.Fprintf(r.out, "  %-12s %s (%s)\n", name, profile.Version, optimizer)
	}

	if len(project.Solidity.NpmFilesToBuild) > 0 {
		fmt.Fprintf(r.out, "Npm sources:   %s\n", strings.Join(project.Solidity.NpmFilesToBuild, ", "))
	}

	etherscan := "disabled"
	if project.Verify.Etherscan.Enabled {
		etherscan = fmt.Sprintf("enabled (api key %s)", orNone(project.Verify.Etherscan.APIKey))
	}
	fmt.Fprintf(r.out, "Etherscan:     %s\n", etherscan)

	return nil
}

// RenderYAML dumps the resolved configuration as YAML
func (r *ConfigRenderer) RenderYAML(result *usecase.ShowConfigResult) error {
	doc := struct {
		ProjectRoot  string                `yaml:"projectRoot"`
		ConfigFile   string                `yaml:"configFile,omitempty"`
		Network      string                `yaml:"network"`
		BuildProfile string                `yaml:"buildProfile"`
		Project      *config.ProjectConfig `yaml:"project,omitempty"`
	}{
		ProjectRoot:  result.ProjectRoot,
		ConfigFile:   result.ConfigPath,
		Network:      result.NetworkName,
		BuildProfile: result.BuildProfile,
		Project:      result.Project,
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
