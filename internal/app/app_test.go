package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/locker/internal/app"
	"go.trai.ch/locker/internal/core/domain"
	"go.trai.ch/locker/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	app          *app.App
	lockLoader   *mocks.MockLockLoader
	ignoreLoader *mocks.MockIgnoreLoader
	logger       *mocks.MockLogger
	stdout       *bytes.Buffer
	stderr       *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	h := &harness{
		lockLoader:   mocks.NewMockLockLoader(ctrl),
		ignoreLoader: mocks.NewMockIgnoreLoader(ctrl),
		logger:       mocks.NewMockLogger(ctrl),
		stdout:       &bytes.Buffer{},
		stderr:       &bytes.Buffer{},
	}
	h.app = app.New(h.lockLoader, h.ignoreLoader, h.logger).WithOutput(h.stdout, h.stderr)
	return h
}

func lockWith(nodes map[string]domain.Node) *domain.LockFile {
	return &domain.LockFile{
		Version: domain.SupportedLockVersion,
		Root:    "root",
		Nodes:   nodes,
		Digest:  0xfeedface,
	}
}

func TestApp_Lint_Clean(t *testing.T) {
	h := newHarness(t)

	h.lockLoader.EXPECT().Load("flake.lock").Return(lockWith(map[string]domain.Node{
		"root":    {},
		"nixpkgs": {Locked: domain.NewSCMSource(domain.KindGitHub, "NixOS", "nixpkgs")},
		"utils":   {Locked: domain.NewSCMSource(domain.KindGitHub, "numtide", "flake-utils")},
	}), nil)
	h.ignoreLoader.EXPECT().Load(".").Return(domain.NewIgnoreList(nil), nil)

	err := h.app.Lint(context.Background(), "flake.lock", app.LintOptions{})

	require.NoError(t, err)
	assert.Equal(t, "No duplicate inputs found.\n", h.stdout.String())
	assert.Empty(t, h.stderr.String())
}

func TestApp_Lint_Duplicates(t *testing.T) {
	h := newHarness(t)

	h.lockLoader.EXPECT().Load("flake.lock").Return(lockWith(map[string]domain.Node{
		"nixpkgs":   {Locked: domain.NewSCMSource(domain.KindGitHub, "NixOS", "nixpkgs")},
		"nixpkgs_2": {Locked: domain.NewSCMSource(domain.KindGitHub, "nixos", "nixpkgs")},
	}), nil)
	h.ignoreLoader.EXPECT().Load(".").Return(domain.NewIgnoreList(nil), nil)

	err := h.app.Lint(context.Background(), "flake.lock", app.LintOptions{})

	require.ErrorIs(t, err, domain.ErrDuplicatesFound)
	assert.Contains(t, h.stdout.String(), "The following flake uris contained duplicate entries")
	assert.Contains(t, h.stderr.String(), "'github:nixos/nixpkgs'")
}

func TestApp_Lint_IgnoredDuplicatesAreClean(t *testing.T) {
	h := newHarness(t)

	h.lockLoader.EXPECT().Load("flake.lock").Return(lockWith(map[string]domain.Node{
		"nixpkgs":   {Locked: domain.NewSCMSource(domain.KindGitHub, "NixOS", "nixpkgs")},
		"nixpkgs_2": {Locked: domain.NewSCMSource(domain.KindGitHub, "nixos", "nixpkgs")},
	}), nil)
	h.ignoreLoader.EXPECT().Load(".").Return(domain.NewIgnoreList([]string{"github:nixos/nixpkgs"}), nil)

	err := h.app.Lint(context.Background(), "flake.lock", app.LintOptions{})

	require.NoError(t, err)
	assert.Equal(t, "No duplicate inputs found.\n", h.stdout.String())
}

func TestApp_Lint_LoadErrorPropagates(t *testing.T) {
	h := newHarness(t)

	wantErr := domain.ErrUnsupportedLockVersion
	h.lockLoader.EXPECT().Load("flake.lock").Return(nil, wantErr)

	err := h.app.Lint(context.Background(), "flake.lock", app.LintOptions{})

	require.ErrorIs(t, err, wantErr)
	assert.Empty(t, h.stdout.String())
	assert.Empty(t, h.stderr.String())
}

func TestApp_Lint_IgnoreLoadErrorPropagates(t *testing.T) {
	h := newHarness(t)

	h.lockLoader.EXPECT().Load("flake.lock").Return(lockWith(map[string]domain.Node{
		"nixpkgs": {Locked: domain.NewSCMSource(domain.KindGitHub, "NixOS", "nixpkgs")},
	}), nil)
	h.ignoreLoader.EXPECT().Load(".").Return(nil,
		errors.Join(domain.ErrIgnoreParseFailed, errors.New("yaml: mapping values are not allowed")))

	err := h.app.Lint(context.Background(), "flake.lock", app.LintOptions{})

	require.ErrorIs(t, err, domain.ErrIgnoreParseFailed)
	assert.Contains(t, err.Error(), "failed to load ignore list")
}

func TestApp_Lint_VerboseLogsDigest(t *testing.T) {
	h := newHarness(t)

	h.lockLoader.EXPECT().Load("sub/flake.lock").Return(lockWith(map[string]domain.Node{
		"nixpkgs": {Locked: domain.NewSCMSource(domain.KindGitHub, "NixOS", "nixpkgs")},
	}), nil)
	h.ignoreLoader.EXPECT().Load("sub").Return(domain.NewIgnoreList(nil), nil)
	h.logger.EXPECT().Info("loaded sub/flake.lock (1 nodes, digest 00000000feedface)")

	err := h.app.Lint(context.Background(), "sub/flake.lock", app.LintOptions{Verbose: true})

	require.NoError(t, err)
}
