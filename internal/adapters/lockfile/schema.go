package lockfile

// Wire-level DTOs for the flake.lock JSON schema. Fields that a kind
// requires are pointers so that an absent field is distinguishable from an
// empty one. Unknown fields (rev, narHash, lastModified, ...) are ignored.

type lockFileDTO struct {
	Nodes   map[string]nodeDTO `json:"nodes"`
	Version *int               `json:"version"`
	Root    string             `json:"root"`
}

type nodeDTO struct {
	Locked *lockedDTO `json:"locked"`
}

type lockedDTO struct {
	Type string `json:"type"`

	// github, gitlab, sourcehut
	Owner *string `json:"owner"`
	Repo  *string `json:"repo"`

	// git, hg, tarball
	URL *string `json:"url"`

	// path
	Path *string `json:"path"`
}
