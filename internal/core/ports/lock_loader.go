// Package ports defines the interfaces between the application core and its
// adapters.
package ports

import "go.trai.ch/locker/internal/core/domain"

//go:generate mockgen -source=lock_loader.go -destination=mocks/lock_loader.go -package=mocks

// LockLoader reads and decodes a lock file into the domain model. The
// returned LockFile is fully validated: its schema version is supported and
// every locked source belongs to the closed variant set.
type LockLoader interface {
	Load(path string) (*domain.LockFile, error)
}
