package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nest/internal/adapters/fs"
	"go.trai.ch/nest/internal/core/ports"
)

// NodeID is the unique identifier for the transform store factory node.
const NodeID graft.ID = "adapter.transform_store"

func init() {
	graft.Register(graft.Node[ports.TransformStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.TransformStoreFactory, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(hasher), nil
		},
	})
}
