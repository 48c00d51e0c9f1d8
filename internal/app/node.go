package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rpack.dev/rpack/internal/adapters/config"
	"go.rpack.dev/rpack/internal/adapters/logger"
	"go.rpack.dev/rpack/internal/adapters/manifest"
	"go.rpack.dev/rpack/internal/adapters/renv"
	"go.rpack.dev/rpack/internal/adapters/rinstall"
	"go.rpack.dev/rpack/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			renv.NodeID,
			rinstall.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}
			snapshots, err := graft.Dep[ports.Snapshotter](ctx)
			if err != nil {
				return nil, err
			}
			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, manifests, snapshots, installer, log),
				Logger: log,
			}, nil
		},
	})
}
