// Package app implements the application layer for locker.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/locker/internal/core/domain"
	"go.trai.ch/locker/internal/core/ports"
	"go.trai.ch/locker/internal/ui/report"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	lockLoader   ports.LockLoader
	ignoreLoader ports.IgnoreLoader
	logger       ports.Logger
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(lockLoader ports.LockLoader, ignoreLoader ports.IgnoreLoader, log ports.Logger) *App {
	return &App{
		lockLoader:   lockLoader,
		ignoreLoader: ignoreLoader,
		logger:       log,
	}
}

// WithOutput redirects the report streams. Primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// LintOptions configuration for the Lint method.
type LintOptions struct {
	Verbose bool
}

// Components bundles the resolved application dependencies handed to main.
type Components struct {
	App    *App
	Logger ports.Logger
}

// Lint checks the lock file at path for inputs pinned to the same source.
// It returns domain.ErrDuplicatesFound after reporting when duplicates
// remain once the ignore list is applied.
func (a *App) Lint(_ context.Context, path string, opts LintOptions) error {
	// 1. Read and decode; the loader validates the schema version and the
	// locked source variants, so everything after this point is total.
	lock, err := a.lockLoader.Load(path)
	if err != nil {
		return err
	}

	if opts.Verbose {
		a.logger.Info(fmt.Sprintf("loaded %s (%d nodes, digest %016x)", path, len(lock.Nodes), lock.Digest))
	}

	// 2. Canonicalize and group
	inputs := domain.CanonicalInputs(lock)
	duplicates := domain.FindDuplicates(inputs)

	// 3. Apply the ignore list sitting next to the lock file
	ignores, err := a.ignoreLoader.Load(filepath.Dir(path))
	if err != nil {
		return zerr.Wrap(err, "failed to load ignore list")
	}
	duplicates = duplicates.Without(ignores)

	// 4. Report
	renderer := report.NewRenderer(a.stdout, a.stderr)
	if len(duplicates) == 0 {
		renderer.Clean()
		return nil
	}

	renderer.Duplicates(duplicates)
	return domain.ErrDuplicatesFound
}
