package ports

import (
	"context"

	"go.trai.ch/eagroute/internal/core/domain"
)

// Renderer is the abstraction for the dashboard surface.
// It decouples store notifications from presentation, so the same event
// stream drives either the interactive TUI or the linear watch output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// Asynchronous renderers (like the TUI) launch background goroutines.
	Start(ctx context.Context) error

	// Stop asks the renderer to terminate and flush buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnResourceUpdate is called after the cached entry for key changed.
	// Renderers read the new snapshot from the store themselves.
	OnResourceUpdate(key domain.Key)

	// OnActivity is called when a traced fetch or command finishes.
	OnActivity(activity domain.Activity)
}
