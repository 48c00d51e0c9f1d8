package rinstall

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rpack.dev/rpack/internal/adapters/rscript"
	"go.rpack.dev/rpack/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{rscript.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			interp, err := graft.Dep[ports.Interpreter](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(interp), nil
		},
	})
}
