// Package logging wires tabframe's diagnostic sink to structured logging,
// adapted from the teacher's multi-handler slog setup.
package logging

import (
	"context"
	"log/slog"
	"os"
	"time"

	slogseq "github.com/sokkalf/slog-seq"
)

// fanoutHandler dispatches every record to a fixed set of sink handlers, so
// a single logger can mirror output to the console and a remote collector
// without either sink knowing about the other.
type fanoutHandler struct {
	sinks []slog.Handler
}

// fanout composes sinks into a single slog.Handler.
func fanout(sinks ...slog.Handler) slog.Handler {
	return &fanoutHandler{sinks: sinks}
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sink := range h.sinks {
		if sink.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, sink := range h.sinks {
		if err := sink.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

// derive rebuilds the fanout over a transformed copy of each sink, shared
// by WithAttrs and WithGroup below.
func (h *fanoutHandler) derive(transform func(slog.Handler) slog.Handler) slog.Handler {
	derived := make([]slog.Handler, len(h.sinks))
	for i, sink := range h.sinks {
		derived[i] = transform(sink)
	}
	return &fanoutHandler{sinks: derived}
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(sink slog.Handler) slog.Handler { return sink.WithAttrs(attrs) })
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(sink slog.Handler) slog.Handler { return sink.WithGroup(name) })
}

// Setup builds the process logger. When TABFRAME_SEQ_URL is set it fans out
// to both stdout text and a Seq server; otherwise stdout only. The returned
// close function must be called on shutdown to flush the Seq handler.
func Setup() (*slog.Logger, func()) {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	console := slog.NewTextHandler(os.Stdout, opts)

	seqURL := os.Getenv("TABFRAME_SEQ_URL")
	if seqURL == "" {
		return slog.New(console), func() {}
	}

	_, seq := slogseq.NewLogger(
		seqURL,
		slogseq.WithBatchSize(1),
		slogseq.WithFlushInterval(500*time.Millisecond),
		slogseq.WithHandlerOptions(opts),
	)
	if seq == nil {
		return slog.New(console), func() {}
	}

	logger := slog.New(fanout(console, seq))
	return logger, func() { seq.Close() }
}

// SlogDiag adapts a *slog.Logger to errs.Diag.
type SlogDiag struct {
	Logger *slog.Logger
}

func (d SlogDiag) Diag(msg string, kv ...any) {
	d.Logger.Warn(msg, kv...)
}
