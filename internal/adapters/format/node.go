package format

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildinfo/internal/core/ports"
)

// NodeID is the unique identifier for the encoder provider Graft node.
const NodeID graft.ID = "adapter.format"

func init() {
	graft.Register(graft.Node[ports.EncoderProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EncoderProvider, error) {
			return NewProvider(), nil
		},
	})
}
