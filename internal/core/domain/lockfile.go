// Package domain contains the core lock file model and the duplicate
// detection logic. It has no I/O; decoding lives in the adapters.
package domain

import (
	"fmt"
	"strings"
)

// DefaultLockFileName is the file linted when no path is given on the CLI.
const DefaultLockFileName = "flake.lock"

// SupportedLockVersion is the only flake.lock schema version locker understands.
const SupportedLockVersion = 7

// LockFile is a decoded flake.lock document. It is constructed once per run
// by the lock file loader and never mutated afterwards.
type LockFile struct {
	// Version is the lock file schema version. Always SupportedLockVersion
	// for a LockFile produced by the loader.
	Version int

	// Root names the synthetic root node. Carried for completeness, the
	// linter never dereferences it.
	Root string

	// Nodes maps input names to their entries. Key order is irrelevant.
	Nodes map[string]Node

	// Digest is the xxhash of the raw file contents, set by the loader.
	Digest uint64
}

// Node is one named entry in the lock file. A node without a locked source
// (typically the root node) contributes nothing to linting.
type Node struct {
	Locked LockedSource
}

// SourceKind discriminates the closed set of locked source variants.
type SourceKind string

// The seven locked source kinds of lock schema version 7.
const (
	KindGitHub    SourceKind = "github"
	KindGitLab    SourceKind = "gitlab"
	KindSourceHut SourceKind = "sourcehut"
	KindGit       SourceKind = "git"
	KindMercurial SourceKind = "hg"
	KindTarball   SourceKind = "tarball"
	KindPath      SourceKind = "path"
)

// LockedSource is the resolved origin of an input: forge coordinates, a URL,
// or a filesystem path. Implementations are the closed variant set below;
// every variant has a total FlakeURI mapping, so canonicalization of a
// decoded source cannot fail.
type LockedSource interface {
	Kind() SourceKind

	// FlakeURI returns the canonical identity of the source. Two inputs
	// pinned to the same underlying source share a FlakeURI.
	FlakeURI() string
}

// SCMSource is a forge-hosted repository (github, gitlab or sourcehut).
type SCMSource struct {
	kind  SourceKind
	Owner string
	Repo  string
}

// NewSCMSource creates a locked source for a forge-hosted repository.
func NewSCMSource(kind SourceKind, owner, repo string) SCMSource {
	return SCMSource{kind: kind, Owner: owner, Repo: repo}
}

// Kind returns the forge kind.
func (s SCMSource) Kind() SourceKind { return s.kind }

// FlakeURI canonicalizes to "kind:owner/repo". Forges treat owner and repo
// case-insensitively, so both segments are lowercased.
func (s SCMSource) FlakeURI() string {
	return fmt.Sprintf("%s:%s/%s", s.kind, strings.ToLower(s.Owner), strings.ToLower(s.Repo))
}

// URLSource is a source fetched from a URL (git, hg or tarball).
type URLSource struct {
	kind SourceKind
	URL  string
}

// NewURLSource creates a locked source fetched from a URL.
func NewURLSource(kind SourceKind, url string) URLSource {
	return URLSource{kind: kind, URL: url}
}

// Kind returns the fetch kind.
func (s URLSource) Kind() SourceKind { return s.kind }

// FlakeURI canonicalizes to "kind:url". URLs may be case-sensitive past the
// host, so the URL is kept verbatim.
func (s URLSource) FlakeURI() string {
	return fmt.Sprintf("%s:%s", s.kind, s.URL)
}

// PathSource is a source on the local filesystem.
type PathSource struct {
	Path string
}

// NewPathSource creates a locked source for a filesystem path.
func NewPathSource(path string) PathSource {
	return PathSource{Path: path}
}

// Kind returns KindPath.
func (s PathSource) Kind() SourceKind { return KindPath }

// FlakeURI canonicalizes to "path:path".
func (s PathSource) FlakeURI() string {
	return fmt.Sprintf("%s:%s", KindPath, s.Path)
}

// CanonicalInputs maps every input name with a locked source to its
// canonical flake URI. Nodes without a locked source are skipped. Running it
// twice on the same LockFile yields identical mappings.
func CanonicalInputs(lock *LockFile) map[string]string {
	inputs := make(map[string]string, len(lock.Nodes))
	for name, node := range lock.Nodes {
		if node.Locked == nil {
			continue
		}
		inputs[name] = node.Locked.FlakeURI()
	}
	return inputs
}
