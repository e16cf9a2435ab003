package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/locker/internal/adapters/config"
	"go.trai.ch/locker/internal/core/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string) {}
func (noopLogger) Warn(string) {}
func (noopLogger) Error(error) {}

func TestLoader_Load_MissingFileIsEmpty(t *testing.T) {
	loader := config.NewLoader(noopLogger{})

	list, err := loader.Load(t.TempDir())

	require.NoError(t, err)
	assert.True(t, list.Empty())
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	content := "ignore:\n  - github:nixos/nixpkgs\n  - path:./lib\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.IgnoreFileName), []byte(content), 0o600))

	list, err := config.NewLoader(noopLogger{}).Load(dir)

	require.NoError(t, err)
	assert.True(t, list.Ignored("github:nixos/nixpkgs"))
	assert.True(t, list.Ignored("path:./lib"))
	assert.False(t, list.Ignored("github:numtide/flake-utils"))
}

func TestLoader_Load_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.IgnoreFileName), []byte("ignore: ["), 0o600))

	_, err := config.NewLoader(noopLogger{}).Load(dir)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIgnoreParseFailed)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.IgnoreFileName), nil, 0o600))

	list, err := config.NewLoader(noopLogger{}).Load(dir)

	require.NoError(t, err)
	assert.True(t, list.Empty())
}
