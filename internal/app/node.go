package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locker/internal/adapters/config"
	"go.trai.ch/locker/internal/adapters/lockfile"
	"go.trai.ch/locker/internal/adapters/logger"
	"go.trai.ch/locker/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lockfile.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			lockLoader, err := graft.Dep[ports.LockLoader](ctx)
			if err != nil {
				return nil, err
			}

			ignoreLoader, err := graft.Dep[ports.IgnoreLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(lockLoader, ignoreLoader, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}
