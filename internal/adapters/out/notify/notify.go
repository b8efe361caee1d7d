// Package notify holds the in-process notification sinks.
//
// Order workflows report user-facing messages through ports.Notifier. The HTTP
// adapter opens a Collector per request so the messages for the acting user
// travel back in the response body; the other sinks log or forward them.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"purchasing/internal/core/ports"
)

type collectorKey struct{}

// Collector gathers the notifications raised while serving one request.
type Collector struct {
	mu    sync.Mutex
	items []ports.Notification
}

// WithCollector returns a child context carrying a fresh Collector.
func WithCollector(ctx context.Context) (context.Context, *Collector) {
	c := &Collector{}
	return context.WithValue(ctx, collectorKey{}, c), c
}

// CollectorFrom returns the Collector of ctx, or nil.
func CollectorFrom(ctx context.Context) *Collector {
	c, _ := ctx.Value(collectorKey{}).(*Collector)
	return c
}

func (c *Collector) add(n ports.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, n)
}

// Drain returns the collected notifications and empties the collector.
func (c *Collector) Drain() []ports.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.items
	c.items = nil
	return items
}

// ContextNotifier hands notifications to the Collector found in the context.
// Without one the notification is dropped.
type ContextNotifier struct{}

func (ContextNotifier) Notify(ctx context.Context, n ports.Notification) {
	if c := CollectorFrom(ctx); c != nil {
		c.add(n)
	}
}

// LogNotifier writes every notification to a structured log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifications")}
}

func (l *LogNotifier) Notify(ctx context.Context, n ports.Notification) {
	level := slog.LevelInfo
	switch n.Level {
	case ports.LevelWarning:
		level = slog.LevelWarn
	case ports.LevelError:
		level = slog.LevelError
	}
	l.logger.Log(ctx, level, n.Message, "recipient", n.Recipient.String(), "level", string(n.Level))
}

// Fanout delivers each notification to every sink in order. Nil sinks are skipped.
type Fanout []ports.Notifier

func (f Fanout) Notify(ctx context.Context, n ports.Notification) {
	for _, sink := range f {
		if sink != nil {
			sink.Notify(ctx, n)
		}
	}
}
