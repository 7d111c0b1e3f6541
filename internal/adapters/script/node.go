package script

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nest/internal/core/ports"
)

// NodeID is the unique identifier for the script evaluator node.
const NodeID graft.ID = "adapter.script"

func init() {
	graft.Register(graft.Node[ports.ScriptEvaluator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScriptEvaluator, error) {
			return NewEvaluator(), nil
		},
	})
}
