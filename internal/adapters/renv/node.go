package renv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rpack.dev/rpack/internal/adapters/rscript"
	"go.rpack.dev/rpack/internal/core/ports"
)

// NodeID is the unique identifier for the snapshotter Graft node.
const NodeID graft.ID = "adapter.snapshotter"

func init() {
	graft.Register(graft.Node[ports.Snapshotter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{rscript.NodeID},
		Run: func(ctx context.Context) (ports.Snapshotter, error) {
			interp, err := graft.Dep[ports.Interpreter](ctx)
			if err != nil {
				return nil, err
			}
			return NewSnapshotter(interp), nil
		},
	})
}
