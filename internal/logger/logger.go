package logger

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
)

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// New creates a slog.Logger writing to stdout.
// Kubernetes/dev/prod: JSONHandler for log aggregation.
// Local development: TextHandler with WARN lines yellow and ERROR lines red.
// Both are wrapped with traceContextHandler to add trace_id/span_id.
func New() *slog.Logger {
	return NewWithWriter(os.Stdout)
}

func NewWithWriter(w io.Writer) *slog.Logger {
	var handler slog.Handler
	if useJSON() {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: true,
		})
	} else {
		handler = newColorLineHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(newTraceContextHandler(handler))
}

// NewWithServiceContext is the process logger: stdout plus service, version
// and environment on every line.
func NewWithServiceContext(serviceName, version string) *slog.Logger {
	return NewServiceLogger(os.Stdout, serviceName, version)
}

func NewServiceLogger(w io.Writer, serviceName, version string) *slog.Logger {
	return NewWithWriter(w).With(
		slog.String("service", serviceName),
		slog.String("version", version),
		slog.String("environment", environment()),
	)
}

func environment() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

func useJSON() bool {
	if _, inK8s := os.LookupEnv("KUBERNETES_SERVICE_HOST"); inK8s {
		return true
	}
	env := environment()
	return env == "prod" || env == "dev"
}

// colorLineHandler formats each record with a TextHandler into a scratch
// buffer and writes the finished line wrapped in an ANSI colour, so the
// escape codes reach the terminal unquoted.
type colorLineHandler struct {
	out     io.Writer
	mu      *sync.Mutex
	buf     *bytes.Buffer
	handler slog.Handler
}

func newColorLineHandler(w io.Writer, opts *slog.HandlerOptions) *colorLineHandler {
	buf := &bytes.Buffer{}
	return &colorLineHandler{
		out:     w,
		mu:      &sync.Mutex{},
		buf:     buf,
		handler: slog.NewTextHandler(buf, opts),
	}
}

func (h *colorLineHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *colorLineHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if err := h.handler.Handle(ctx, r); err != nil {
		return err
	}

	color := levelColor(r.Level)
	if color == "" {
		_, err := h.out.Write(h.buf.Bytes())
		return err
	}

	line := bytes.TrimRight(h.buf.Bytes(), "\n")
	_, err := fmt.Fprintf(h.out, "%s%s%s\n", color, line, ansiReset)
	return err
}

func (h *colorLineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &colorLineHandler{out: h.out, mu: h.mu, buf: h.buf, handler: h.handler.WithAttrs(attrs)}
}

func (h *colorLineHandler) WithGroup(name string) slog.Handler {
	return &colorLineHandler{out: h.out, mu: h.mu, buf: h.buf, handler: h.handler.WithGroup(name)}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return ansiRed
	case level >= slog.LevelWarn:
		return ansiYellow
	default:
		return ""
	}
}

// traceContextHandler adds trace_id and span_id from the OTel span context.
type traceContextHandler struct {
	handler slog.Handler
}

func newTraceContextHandler(h slog.Handler) *traceContextHandler {
	return &traceContextHandler{handler: h}
}

func (h *traceContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *traceContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", spanCtx.TraceID().String()),
			slog.String("span_id", spanCtx.SpanID().String()),
		)
	}
	return h.handler.Handle(ctx, r)
}

func (h *traceContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceContextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *traceContextHandler) WithGroup(name string) slog.Handler {
	return &traceContextHandler{handler: h.handler.WithGroup(name)}
}
