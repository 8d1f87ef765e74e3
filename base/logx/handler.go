// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log and print output.
// It is automatically disabled when stderr is not a terminal.
var UseColor = true

var output = termenv.NewOutput(os.Stderr)

func init() {
	if output.Profile == termenv.Ascii {
		UseColor = false
	}
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// LevelColor colors the given string per the given level:
// red for errors, yellow for warnings, and faint for debug.
func LevelColor(level slog.Level, s string) string {
	if !UseColor {
		return s
	}
	switch {
	case level >= slog.LevelError:
		return output.String(s).Foreground(output.Color("1")).String()
	case level >= slog.LevelWarn:
		return output.String(s).Foreground(output.Color("3")).String()
	case level < slog.LevelInfo:
		return output.String(s).Faint().String()
	}
	return s
}

// Handler is a [slog.Handler] that writes human-readable records
// gated on [UserLevel], with the level tag colored per its severity.
type Handler struct {
	mu    sync.Mutex
	w     io.Writer
	attrs []slog.Attr
	group string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(r.Time.Format(time.DateTime))
	b.WriteString(" ")
	b.WriteString(LevelColor(r.Level, r.Level.String()))
	b.WriteString(" ")
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(b, h.group, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(b, h.group, a)
		return true
	})
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	b.WriteString(" ")
	if group != "" {
		b.WriteString(group)
		b.WriteString(".")
	}
	b.WriteString(a.Key)
	b.WriteString("=")
	b.WriteString(fmt.Sprint(a.Value.Any()))
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &Handler{w: h.w, group: h.group}
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{w: h.w, attrs: h.attrs, group: name}
}
