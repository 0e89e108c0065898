package config

import (
	"context"
	"log/slog"
	"maps"
	"slices"
)

var _ slog.Handler = (*DedupeHandler)(nil)

// DedupeHandler keeps only the latest value of each attribute key, so strategies that re-label a logger with the same key don't produce repeated fields.
// Groups are flattened into dotted key prefixes.
type DedupeHandler struct {
	group string
	index map[string]int
	attrs []slog.Attr
	impl  slog.Handler
}

// NewDedupeHandler wraps impl.
// A nil impl panics.
func NewDedupeHandler(impl slog.Handler) *DedupeHandler {
	if impl == nil {
		panic("nil implementing handler")
	}
	return &DedupeHandler{
		index: map[string]int{},
		impl:  impl,
	}
}

func (h *DedupeHandler) qualify(key string) string {
	if len(h.group) == 0 {
		return key
	}
	return h.group + "." + key
}

func (h *DedupeHandler) clone() *DedupeHandler {
	return &DedupeHandler{
		group: h.group,
		index: maps.Clone(h.index),
		attrs: slices.Clone(h.attrs),
		impl:  h.impl,
	}
}

func (h *DedupeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.impl.Enabled(ctx, level)
}

func (h *DedupeHandler) Handle(ctx context.Context, record slog.Record) error {
	merged := h
	if record.NumAttrs() > 0 {
		attrs := make([]slog.Attr, 0, record.NumAttrs())
		record.Attrs(func(attr slog.Attr) bool {
			attrs = append(attrs, attr)
			return true
		})
		record = slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
		merged = h.withAttrs(attrs)
	}
	return merged.impl.WithAttrs(merged.attrs).Handle(ctx, record)
}

func (h *DedupeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.withAttrs(attrs)
}

func (h *DedupeHandler) withAttrs(attrs []slog.Attr) *DedupeHandler {
	cp := h.clone()
	for _, attr := range attrs {
		attr.Key = cp.qualify(attr.Key)
		if i, ok := cp.index[attr.Key]; ok {
			cp.attrs[i] = attr
			continue
		}
		cp.index[attr.Key] = len(cp.attrs)
		cp.attrs = append(cp.attrs, attr)
	}
	return cp
}

func (h *DedupeHandler) WithGroup(name string) slog.Handler {
	if len(name) == 0 {
		return h
	}
	cp := h.clone()
	cp.group = cp.qualify(name)
	return cp
}
