package render

import (
	"context"
	"log/slog"
)

// nopHandler drops every record.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// ResizeHandler is called with the new framebuffer size whenever the window is resized.
type ResizeHandler func(dev Device, width, height int)

// SyncViewport resets the viewport to cover the whole framebuffer.
// Geometry is left as is, so the scene stretches with the window.
func SyncViewport(dev Device, width, height int) {
	dev.Viewport(0, 0, int32(width), int32(height))
}

type options struct {
	logger   *slog.Logger
	onResize ResizeHandler
}

type Option func(*options)

// WithLogger sets the logger receiving diagnostics. Silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithResizeHandler replaces SyncViewport as the framebuffer resize handler.
func WithResizeHandler(h ResizeHandler) Option {
	return func(o *options) {
		if h != nil {
			o.onResize = h
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:   slog.New(nopHandler{}),
		onResize: SyncViewport,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
