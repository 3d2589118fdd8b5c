package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/equip/internal/adapters/shell"
	"go.trai.ch/equip/internal/core/ports"
)

const NodeID graft.ID = "adapter.metadata_source"

func init() {
	graft.Register(graft.Node[ports.MetadataSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.MetadataSource, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(runner), nil
		},
	})
}
