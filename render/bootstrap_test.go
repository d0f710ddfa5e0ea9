package render

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestBootstrap(t *testing.T) {
	p := newFakePlatform()
	cfg := DefaultConfig()

	c, err := Bootstrap(p, cfg)
	require.NoError(t, err)
	require.Equal(t, 1, p.windows)
	require.Equal(t, "wayland", p.hints.Platform)
	require.Equal(t, [4]int32{0, 0, 800, 600}, p.dev.viewport)
	require.Equal(t, Running, c.State())

	c.Close()
	require.True(t, p.window.destroyed)
	require.True(t, p.terminated)

	// Closing twice is a no-op.
	p.terminated = false
	c.Close()
	require.False(t, p.terminated)
}

func TestBootstrapViewportFollowsFramebuffer(t *testing.T) {
	p := newFakePlatform()
	c, err := Bootstrap(p, DefaultConfig())
	require.NoError(t, err)
	defer c.Close()

	for _, size := range [][2]int{{1024, 768}, {1, 1}, {1600, 900}} {
		p.window.resize(size[0], size[1])
		w, h := p.window.FramebufferSize()
		require.Equal(t, [4]int32{0, 0, int32(w), int32(h)}, p.dev.viewport)
	}
}

func TestBootstrapResizeHandler(t *testing.T) {
	p := newFakePlatform()
	var got [][2]int
	c, err := Bootstrap(p, DefaultConfig(), WithResizeHandler(func(dev Device, width, height int) {
		got = append(got, [2]int{width, height})
	}))
	require.NoError(t, err)
	defer c.Close()

	p.window.resize(640, 480)
	require.Equal(t, [][2]int{{640, 480}}, got)
	require.Equal(t, 1, p.dev.viewports, "custom handler replaces the viewport sync")
}

func TestBootstrapInitFailure(t *testing.T) {
	p := newFakePlatform()
	p.initErr = &InitError{Code: 0x10008, Description: "Wayland: Failed to connect to display"}
	logger, logs := newTestLogger()

	c, err := Bootstrap(p, DefaultConfig(), WithLogger(logger))
	require.Nil(t, c)
	var ierr *InitError
	require.ErrorAs(t, err, &ierr)
	require.Equal(t, 0x10008, ierr.Code)
	require.Contains(t, logs.String(), "Failed to connect to display")
	require.Contains(t, logs.String(), "code=65544")
	require.Zero(t, p.windows)
}

func TestBootstrapWindowFailure(t *testing.T) {
	for _, tc := range []struct {
		name  string
		setup func(*fakePlatform)
	}{
		{"error", func(p *fakePlatform) { p.createErr = errors.New("no suitable pixel format") }},
		{"nil window", func(p *fakePlatform) { p.nilWindow = true }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := newFakePlatform()
			tc.setup(p)
			logger, logs := newTestLogger()

			c, err := Bootstrap(p, DefaultConfig(), WithLogger(logger))
			require.Error(t, err)
			require.Nil(t, c)
			require.True(t, p.terminated)
			require.Contains(t, logs.String(), "failed to create window")
			require.Zero(t, p.dev.viewports, "nothing runs past window creation")
		})
	}
}

func TestBootstrapInvalidConfig(t *testing.T) {
	p := newFakePlatform()
	cfg := DefaultConfig()
	cfg.Width = 0

	_, err := Bootstrap(p, cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Empty(t, p.hints.Platform, "backend is left untouched")
}
