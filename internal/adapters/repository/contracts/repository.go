package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/config"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/samber/lo"
)

// Repository indexes compiled contract artifacts under the artifacts directory.
// Both hardhat (<source>/<Name>.json with contractName) and foundry
// (<Source>.sol/<Name>.json with metadata) layouts are understood.
type Repository struct {
	artifactsDir string
	contracts    map[string][]*models.Artifact // key: contract name
	log          *slog.Logger
	mu           sync.RWMutex
	indexed      bool
}

// NewRepository creates a new artifact repository
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		artifactsDir: cfg.ArtifactsDir,
		contracts:    make(map[string][]*models.Artifact),
		log:          log,
	}
}

// artifactFile is the on-disk shape, a superset of both layouts
type artifactFile struct {
	models.Artifact
	Metadata json.RawMessage `json:"metadata"`
}

type foundryMetadata struct {
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

// Index discovers all artifacts
func (r *Repository) Index() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return nil
	}

	r.contracts = make(map[string][]*models.Artifact)

	if _, err := os.Stat(r.artifactsDir); os.IsNotExist(err) {
		return fmt.Errorf("%w: artifacts directory %s does not exist, compile the project first", domain.ErrArtifactNotFound, r.artifactsDir)
	}

	err := filepath.WalkDir(r.artifactsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip non artifacts
		if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}

		return r.processArtifact(path)
	})
	if err != nil {
		return fmt.Errorf("failed to index artifacts: %w", err)
	}

	r.indexed = true
	return nil
}

// processArtifact processes a single artifact file
func (r *Repository) processArtifact(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		// Skip files that are not artifacts
		r.log.Debug("skipping unreadable artifact", "path", path, "error", err)
		return nil
	}

	artifact := file.Artifact
	if artifact.Bytecode.IsEmpty() || len(artifact.ABI) == 0 {
		return nil
	}

	if artifact.ContractName == "" || artifact.SourceName == "" {
		var meta foundryMetadata
		if len(file.Metadata) > 0 && json.Unmarshal(file.Metadata, &meta) == nil {
			for source, name := range meta.Settings.CompilationTarget {
				artifact.SourceName = source
				artifact.ContractName = name
			}
		}
	}
	if artifact.ContractName == "" {
		artifact.ContractName = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	if artifact.SourceName == "" {
		rel, _ := filepath.Rel(r.artifactsDir, filepath.Dir(path))
		artifact.SourceName = filepath.ToSlash(rel)
	}
	artifact.Path = path

	r.log.Debug("indexed artifact", "contract", artifact.ContractName, "source", artifact.SourceName)
	r.contracts[artifact.ContractName] = append(r.contracts[artifact.ContractName], &artifact)
	return nil
}

// GetArtifact returns the artifact for a contract name or "<source>:<name>"
func (r *Repository) GetArtifact(ctx context.Context, key string) (*models.Artifact, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	name := key
	source := ""
	if idx := strings.LastIndex(key, ":"); idx != -1 {
		source, name = key[:idx], key[idx+1:]
	}

	candidates := r.contracts[name]
	if source != "" {
		candidates = lo.Filter(candidates, func(a *models.Artifact, _ int) bool {
			return a.SourceName == source
		})
	}

	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, key)
	case 1:
		artifact := candidates[0]
		if !artifact.Bytecode.IsLinked() {
			return nil, fmt.Errorf("artifact %s has unlinked library references", artifact.FullyQualifiedName())
		}
		return artifact, nil
	default:
		names := lo.Map(candidates, func(a *models.Artifact, _ int) string {
			return a.FullyQualifiedName()
		})
		sort.Strings(names)
		return nil, fmt.Errorf("multiple artifacts named %s, use one of: %s", name, strings.Join(names, ", "))
	}
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactRepository = (*Repository)(nil)
