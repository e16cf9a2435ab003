// Package lockfile implements ports.LockLoader for flake.lock files.
package lockfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/locker/internal/core/domain"
)

// Loader reads a flake.lock file and decodes it into the domain model.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, decodes and validates the lock file at path. Validation is
// structural: the schema version must be the supported one and every locked
// source must carry a known type tag with its kind-specific fields. A
// LockFile returned without error therefore canonicalizes without failures.
//
// Every returned error keeps its domain sentinel in the chain, so callers
// can match with errors.Is.
func (l *Loader) Load(path string) (*domain.LockFile, error) {
	// #nosec G304 -- path is the file the user asked to lint
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(domain.ErrLockReadFailed, err)
	}

	var dto lockFileDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, errors.Join(domain.ErrLockParseFailed, err)
	}

	if dto.Version == nil {
		return nil, fmt.Errorf("%w: missing required field %q", domain.ErrLockParseFailed, "version")
	}
	if dto.Nodes == nil {
		return nil, fmt.Errorf("%w: missing required field %q", domain.ErrLockParseFailed, "nodes")
	}

	// The version gate runs before any node is converted. Reporting the
	// found version lets the user see how far ahead or behind they are.
	if *dto.Version != domain.SupportedLockVersion {
		return nil, fmt.Errorf("%w: found version %d, supported version is %d",
			domain.ErrUnsupportedLockVersion, *dto.Version, domain.SupportedLockVersion)
	}

	lock := &domain.LockFile{
		Version: *dto.Version,
		Root:    dto.Root,
		Nodes:   make(map[string]domain.Node, len(dto.Nodes)),
		Digest:  xxhash.Sum64(data),
	}

	for name, node := range dto.Nodes {
		converted, err := convertNode(node)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", name, err)
		}
		lock.Nodes[name] = converted
	}

	return lock, nil
}

func convertNode(dto nodeDTO) (domain.Node, error) {
	if dto.Locked == nil {
		return domain.Node{}, nil
	}

	source, err := convertSource(*dto.Locked)
	if err != nil {
		return domain.Node{}, err
	}
	return domain.Node{Locked: source}, nil
}

// convertSource discriminates on the type tag and checks the fields that
// kind requires. An empty string is a present field; only a missing key
// fails.
func convertSource(dto lockedDTO) (domain.LockedSource, error) {
	kind := domain.SourceKind(dto.Type)

	switch kind {
	case domain.KindGitHub, domain.KindGitLab, domain.KindSourceHut:
		if dto.Owner == nil {
			return nil, missingField(kind, "owner")
		}
		if dto.Repo == nil {
			return nil, missingField(kind, "repo")
		}
		return domain.NewSCMSource(kind, *dto.Owner, *dto.Repo), nil

	case domain.KindGit, domain.KindMercurial, domain.KindTarball:
		if dto.URL == nil {
			return nil, missingField(kind, "url")
		}
		return domain.NewURLSource(kind, *dto.URL), nil

	case domain.KindPath:
		if dto.Path == nil {
			return nil, missingField(kind, "path")
		}
		return domain.NewPathSource(*dto.Path), nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSourceKind, dto.Type)
	}
}

func missingField(kind domain.SourceKind, field string) error {
	return fmt.Errorf("%w: %s source requires %q", domain.ErrIncompleteSource, kind, field)
}
