package loggerx

import (
	"context"
	"io"
	"log/slog"

	"github.com/clinia/featuretoggles/slogx"
	slogctx "github.com/veqryn/slog-context"
	"go.opentelemetry.io/otel/attribute"
)

type Logger struct {
	*slog.Logger
}

// New returns a JSON logger writing to w. Attributes stored on the context with
// slogx.WithFields are added to every record.
func New(w io.Writer, level slog.Leveler) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{slog.New(slogctx.NewHandler(h, nil))}
}

// NewNoop returns a logger that drops every record.
func NewNoop() *Logger {
	return &Logger{slog.New(slog.DiscardHandler)}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.Logger.With(slogx.ErrorAttr(err))}
}

func (l *Logger) Error(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelError, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelWarn, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Info(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelInfo, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Debug(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelDebug, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) WithFields(kvs ...attribute.KeyValue) *Logger {
	lfs := slogx.NewLogFields(kvs...)
	args := make([]any, 0, len(lfs))
	for _, a := range lfs {
		args = append(args, a)
	}
	return &Logger{l.Logger.With(args...)}
}
