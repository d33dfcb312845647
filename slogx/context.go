package slogx

import (
	"context"

	slogctx "github.com/veqryn/slog-context"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DecisionKey        = attribute.Key("decision")
	DecisionEnabledKey = attribute.Key("decision.enabled")
)

// WithFields appends the attributes to the context. They are emitted by any logger whose
// handler is wrapped with slogctx.NewHandler.
func WithFields(ctx context.Context, kvs ...attribute.KeyValue) context.Context {
	attrs := NewLogFields(kvs...)
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return slogctx.Append(ctx, args...)
}

// WithDecision records a resolved decision on the context.
func WithDecision(ctx context.Context, name string, enabled bool) context.Context {
	return WithFields(ctx, DecisionKey.String(name), DecisionEnabledKey.Bool(enabled))
}
