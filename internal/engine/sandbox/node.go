package sandbox

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/equip/internal/adapters/logger"
	"go.trai.ch/equip/internal/adapters/manifest"
	"go.trai.ch/equip/internal/adapters/shell"
	"go.trai.ch/equip/internal/adapters/telemetry"
	"go.trai.ch/equip/internal/core/ports"
)

const NodeID graft.ID = "engine.sandbox_verifier"

func init() {
	graft.Register(graft.Node[*Verifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Verifier, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
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
			return NewVerifier(runner, log, tracer, manifest.CopyDependencies), nil
		},
	})
}
