// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jongio/clout"
)

// Handler is a slog.Handler that forwards records to the clout console
// at the corresponding level. Records arriving while clout is not
// installed are dropped rather than panicking, so the bridge can be
// wired up before output configuration is final.
//
// Attributes are rendered logfmt-style (key=value) after the message;
// group names prefix their attribute keys with dots.
type Handler struct {
	attrs  []slog.Attr
	groups []string
}

// NewHandler creates a bridge handler with no preset attributes.
func NewHandler() *Handler {
	return &Handler{}
}

// Setup installs the bridge as the default slog logger, so libraries
// logging via slog surface on the clout console.
func Setup() {
	slog.SetDefault(slog.New(NewHandler()))
}

// cloutLevel maps slog levels onto clout levels. Anything below debug
// becomes trace; custom levels between the named ones round down.
func cloutLevel(level slog.Level) clout.Level {
	switch {
	case level >= slog.LevelError:
		return clout.LevelError
	case level >= slog.LevelWarn:
		return clout.LevelWarn
	case level >= slog.LevelInfo:
		return clout.LevelInfo
	case level >= slog.LevelDebug:
		return clout.LevelDebug
	default:
		return clout.LevelTrace
	}
}

// Enabled reports whether a record at the given level would be emitted.
// Threshold filtering happens inside clout, so this only declines when
// no output is installed.
func (h *Handler) Enabled(_ context.Context, _ slog.Level) bool {
	return clout.Active()
}

// Handle renders the record onto the clout console.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		appendAttr(&b, "", a)
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, prefix, a)
		return true
	})

	clout.TryEmit(cloutLevel(r.Level), "%s", b.String())
	return nil
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value)
}

// WithAttrs returns a handler that includes the given attributes on
// every record. Attribute keys are qualified with the current group
// prefix at the time they are added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := &Handler{
		attrs:  make([]slog.Attr, 0, len(h.attrs)+len(attrs)),
		groups: h.groups,
	}
	next.attrs = append(next.attrs, h.attrs...)
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return next
}

// WithGroup returns a handler that prefixes subsequent attribute keys
// with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := &Handler{
		attrs:  h.attrs,
		groups: make([]string, 0, len(h.groups)+1),
	}
	next.groups = append(next.groups, h.groups...)
	next.groups = append(next.groups, name)
	return next
}
