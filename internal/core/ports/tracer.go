package ports

import "context"

//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks

// SpanConfig holds span start options.
type SpanConfig struct {
	Attributes map[string]any
}

// SpanOption configures a span at start.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute when the span starts.
func WithAttribute(key string, value any) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]any)
		}
		c.Attributes[key] = value
	}
}

// Tracer starts spans around fetches and commands.
type Tracer interface {
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span is a started unit of work.
type Span interface {
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}
