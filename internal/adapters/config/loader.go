// Package config loads the optional locker ignore file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/locker/internal/core/domain"
	"go.trai.ch/locker/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// IgnoreFileName is the ignore file looked up next to the linted lock file.
const IgnoreFileName = ".locker.yaml"

// ignoreFile is the on-disk schema of the ignore file.
type ignoreFile struct {
	Ignore []string `yaml:"ignore"`
}

// Loader implements ports.IgnoreLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the ignore file in dir. A missing file yields an empty list; a
// present but unreadable or malformed file is an error.
func (l *Loader) Load(dir string) (*domain.IgnoreList, error) {
	path := filepath.Join(dir, IgnoreFileName)

	// #nosec G304 -- path is derived from the file the user asked to lint
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewIgnoreList(nil), nil
	}
	if err != nil {
		return nil, errors.Join(domain.ErrIgnoreReadFailed, err)
	}

	var file ignoreFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrIgnoreParseFailed, path, err)
	}

	if len(file.Ignore) > 0 {
		l.Logger.Info(fmt.Sprintf("ignoring %d uri(s) listed in %s", len(file.Ignore), IgnoreFileName))
	}

	return domain.NewIgnoreList(file.Ignore), nil
}
