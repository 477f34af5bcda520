package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shelf/internal/core/ports"
)

const NodeID graft.ID = "adapter.lockfile"

func init() {
	graft.Register(graft.Node[ports.LockfileStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileStore, error) {
			return NewStore(), nil
		},
	})
}
