package report_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/locker/internal/core/domain"
	"go.trai.ch/locker/internal/ui/report"
)

func newTestRenderer(t *testing.T) (*report.Renderer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return report.NewRenderer(stdout, stderr), stdout, stderr
}

func TestRenderer_Clean(t *testing.T) {
	r, stdout, stderr := newTestRenderer(t)

	r.Clean()

	assert.Equal(t, "No duplicate inputs found.\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRenderer_Duplicates(t *testing.T) {
	r, stdout, stderr := newTestRenderer(t)

	r.Duplicates(domain.Duplicates{
		"github:user1/repo1":               {"input3"},
		"git:https://example.com/repo.git": {"input5"},
	})

	assert.Equal(t, "The following flake uris contained duplicate entries in your flake.lock:\n", stdout.String())

	g := goldie.New(t)
	g.Assert(t, "duplicates_two_groups", stderr.Bytes())
}

func TestRenderer_Duplicates_MultipleNames(t *testing.T) {
	r, _, stderr := newTestRenderer(t)

	r.Duplicates(domain.Duplicates{
		"github:nixos/nixpkgs": {"nixpkgs_2", "nixpkgs_3", "nixpkgs_4"},
	})

	g := goldie.New(t)
	g.Assert(t, "duplicates_one_group", stderr.Bytes())
}
