package ports

import "go.trai.ch/locker/internal/core/domain"

//go:generate mockgen -source=ignore_loader.go -destination=mocks/ignore_loader.go -package=mocks

// IgnoreLoader loads the optional ignore list that sits next to the linted
// lock file. A missing ignore file yields an empty list, not an error.
type IgnoreLoader interface {
	Load(dir string) (*domain.IgnoreList, error)
}
