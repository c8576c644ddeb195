package telemetry

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to turn finished spans into
// activity feed entries on a Renderer.
type Bridge struct {
	mu       sync.RWMutex
	renderer ports.Renderer
}

// NewBridge returns a new Bridge. renderer may be nil and attached later.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{
		renderer: renderer,
	}
}

// Attach replaces the renderer that receives activity.
func (b *Bridge) Attach(renderer ports.Renderer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.renderer = renderer
}

// OnStart does nothing. Only finished work is reported.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	b.mu.RLock()
	renderer := b.renderer
	b.mu.RUnlock()
	if renderer == nil {
		return
	}

	if !s.SpanContext().IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "request failed"
		}
		err = errors.New(desc)
	}

	renderer.OnActivity(domain.Activity{
		Name:     s.Name(),
		At:       s.StartTime(),
		Duration: s.EndTime().Sub(s.StartTime()),
		Err:      err,
	})
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
