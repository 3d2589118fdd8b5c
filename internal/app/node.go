package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/equip/internal/adapters/cargo"
	"go.trai.ch/equip/internal/adapters/config"
	"go.trai.ch/equip/internal/adapters/logger"
	"go.trai.ch/equip/internal/adapters/telemetry"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/equip/internal/engine/sandbox"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	// Tracer is exposed so the CLI can flush and close the recording
	// session on shutdown.
	Tracer ports.Tracer
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			cargo.NodeID,
			config.NodeID,
			sandbox.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			meta, err := graft.Dep[ports.MetadataSource](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[*sandbox.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, meta, loader, verifier), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log, Tracer: tracer}, nil
		},
	})
}
