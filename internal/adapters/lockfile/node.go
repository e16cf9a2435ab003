package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locker/internal/core/ports"
)

// NodeID is the unique identifier for the lock loader Graft node.
const NodeID graft.ID = "adapter.lockfile"

func init() {
	graft.Register(graft.Node[ports.LockLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockLoader, error) {
			return NewLoader(), nil
		},
	})
}
