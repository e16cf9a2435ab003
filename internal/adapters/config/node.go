package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locker/internal/adapters/logger"
	"go.trai.ch/locker/internal/core/ports"
)

// NodeID is the unique identifier for the ignore loader Graft node.
const NodeID graft.ID = "adapter.ignore_loader"

func init() {
	graft.Register(graft.Node[ports.IgnoreLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.IgnoreLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
