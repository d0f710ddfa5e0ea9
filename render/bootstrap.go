package render

import (
	"errors"
	"fmt"
	"log/slog"
)

// Context is a window with its current rendering context.
type Context struct {
	Platform Platform
	Window   Window
	Device   Device

	cfg    Config
	log    *slog.Logger
	closed bool
}

// Bootstrap initializes the backend, creates the window, makes its context
// current, sets the viewport and registers the resize handler.
// On failure every backend state acquired so far is released.
func Bootstrap(p Platform, cfg Config, opts ...Option) (*Context, error) {
	o := newOptions(opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := p.Init(Hints{Platform: cfg.Platform}); err != nil {
		var ierr *InitError
		if errors.As(err, &ierr) {
			o.logger.Error("failed to init window backend", "code", ierr.Code, "description", ierr.Description)
		} else {
			o.logger.Error("failed to init window backend", "error", err)
		}
		return nil, fmt.Errorf("failed to init window backend: %w", err)
	}

	win, err := p.CreateWindow(WindowConfig{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Title:        cfg.Title,
		ContextMajor: cfg.ContextMajor,
		ContextMinor: cfg.ContextMinor,
		CoreProfile:  cfg.CoreProfile,
	})
	if err == nil && win == nil {
		err = errNilWindow
	}
	if err != nil {
		o.logger.Error("failed to create window", "error", err)
		p.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dev, err := win.MakeContextCurrent()
	if err != nil {
		o.logger.Error("failed to make context current", "error", err)
		win.Destroy()
		p.Terminate()
		return nil, fmt.Errorf("failed to make context current: %w", err)
	}

	width, height := win.FramebufferSize()
	dev.Viewport(0, 0, int32(width), int32(height))
	onResize := o.onResize
	win.SetFramebufferSizeCallback(func(width, height int) {
		onResize(dev, width, height)
	})

	o.logger.Debug("window ready", "title", cfg.Title, "width", width, "height", height)

	return &Context{
		Platform: p,
		Window:   win,
		Device:   dev,
		cfg:      cfg,
		log:      o.logger,
	}, nil
}

// Close destroys the window and terminates the backend.
// Release GPU objects before calling it.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.Window.Destroy()
	c.Platform.Terminate()
}
