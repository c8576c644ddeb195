package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports"
)

// NodeID is the unique identifier for the backend connector Graft node.
const NodeID graft.ID = "adapter.backend"

// Connector builds HTTP clients once settings are resolved.
type Connector struct{}

// Connect implements ports.BackendConnector.
func (Connector) Connect(settings domain.BackendSettings, tracer ports.Tracer) (ports.Backend, error) {
	return NewClient(settings, tracer)
}

func init() {
	graft.Register(graft.Node[ports.BackendConnector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BackendConnector, error) {
			return Connector{}, nil
		},
	})
}
