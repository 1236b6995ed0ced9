// Package logging provides a custom slog handler that keeps the most
// recent log records in memory so the demo can expose them over HTTP.
package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultCapacity is the number of records kept when none is specified.
const DefaultCapacity = 100

// Entry is one captured log record.
type Entry struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

// recordStore is the ring buffer shared by a handler and its clones.
type recordStore struct {
	mu      sync.Mutex
	max     int
	entries []Entry
}

func (s *recordStore) add(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	if len(s.entries) > s.max {
		s.entries = s.entries[len(s.entries)-s.max:]
	}
}

func (s *recordStore) recent() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// MemoryHandler is a slog.Handler that wraps another handler and also
// records every log line in a bounded in-memory buffer.
type MemoryHandler struct {
	inner slog.Handler
	store *recordStore
}

// NewMemoryHandler creates a MemoryHandler that wraps the given handler
// and keeps up to max records. max <= 0 uses DefaultCapacity.
func NewMemoryHandler(inner slog.Handler, max int) *MemoryHandler {
	if max <= 0 {
		max = DefaultCapacity
	}
	return &MemoryHandler{
		inner: inner,
		store: &recordStore{max: max},
	}
}

// Enabled implements slog.Handler.
func (h *MemoryHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *MemoryHandler) Handle(ctx context.Context, r slog.Record) error {
	// Always forward to the inner handler first
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	h.store.add(Entry{
		Time:    r.Time,
		Level:   r.Level.String(),
		Message: r.Message,
	})
	return nil
}

// WithAttrs implements slog.Handler. Clones share the record buffer.
func (h *MemoryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MemoryHandler{
		inner: h.inner.WithAttrs(attrs),
		store: h.store,
	}
}

// WithGroup implements slog.Handler.
func (h *MemoryHandler) WithGroup(name string) slog.Handler {
	return &MemoryHandler{
		inner: h.inner.WithGroup(name),
		store: h.store,
	}
}

// Recent returns a copy of the captured records, oldest first.
func (h *MemoryHandler) Recent() []Entry {
	return h.store.recent()
}
