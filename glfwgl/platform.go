// Package glfwgl implements the render backend with GLFW 3.3 and OpenGL 3.3 core.
//
// Every call must happen on the main OS thread: lock it with
// runtime.LockOSThread from an init function before using this package.
package glfwgl

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"go.creack.net/triangle/render"
)

// Platform is the GLFW windowing backend.
type Platform struct {
	log *slog.Logger
}

// New returns the GLFW platform. A nil logger discards diagnostics.
func New(log *slog.Logger) *Platform {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Platform{log: log}
}

// Init initializes GLFW.
//
// GLFW 3.3 picks the Linux display server at build time, so the platform
// hint is only compared against the compiled one.
func (p *Platform) Init(hints render.Hints) error {
	if hints.Platform != "" && hints.Platform != compiledPlatform {
		p.log.Warn("requested display server not compiled in", "requested", hints.Platform, "compiled", compiledPlatform)
	}
	if err := glfw.Init(); err != nil {
		var gerr *glfw.Error
		if errors.As(err, &gerr) {
			return &render.InitError{Code: int(gerr.Code), Description: gerr.Desc}
		}
		return err
	}
	return nil
}

func (p *Platform) CreateWindow(cfg render.WindowConfig) (render.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow: %w", err)
	}
	if w == nil {
		return nil, errors.New("glfw.CreateWindow returned no window")
	}
	return &Window{w: w, log: p.log}, nil
}

func (p *Platform) PollEvents() { glfw.PollEvents() }

func (p *Platform) Terminate() { glfw.Terminate() }

// Window is a GLFW window and its OpenGL context.
type Window struct {
	w   *glfw.Window
	log *slog.Logger
}

// MakeContextCurrent makes the window context current and loads the GL entry points.
func (w *Window) MakeContextCurrent() (render.Device, error) {
	w.w.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init: %w", err)
	}
	w.log.Debug("context current", "gl_version", gl.GoStr(gl.GetString(gl.VERSION)))
	return Device{}, nil
}

func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) {
	w.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

func (w *Window) FramebufferSize() (int, int) { return w.w.GetFramebufferSize() }

func (w *Window) KeyPressed(key render.Key) bool {
	k, ok := keys[key]
	if !ok {
		return false
	}
	return w.w.GetKey(k) == glfw.Press
}

func (w *Window) ShouldClose() bool         { return w.w.ShouldClose() }
func (w *Window) SetShouldClose(value bool) { w.w.SetShouldClose(value) }
func (w *Window) SwapBuffers()              { w.w.SwapBuffers() }
func (w *Window) Destroy()                  { w.w.Destroy() }

var keys = map[render.Key]glfw.Key{
	render.KeyEscape: glfw.KeyEscape,
}
