package render

import (
	"errors"
	"fmt"
	"image/color"

	"go.creack.net/triangle/assets"
)

const (
	ComponentsPerVertex = 3 // x, y, z.
	VerticesPerTriangle = 3

	floatSize = 4 // Size of a float32 in bytes.
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Color is a RGBA color with components in [0, 1].
type Color [4]float32

// NRGBA converts the color to an 8 bits per channel color.
func (c Color) NRGBA() color.NRGBA {
	to8 := func(f float32) uint8 { return uint8(f*255 + 0.5) }
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func (c Color) valid() bool {
	for _, elem := range c {
		if elem < 0 || elem > 1 {
			return false
		}
	}
	return true
}

type Config struct {
	Width    int    `yaml:"width"`    // Initial window width in screen coordinates.
	Height   int    `yaml:"height"`   // Initial window height in screen coordinates.
	Title    string `yaml:"title"`    // Window title.
	Platform string `yaml:"platform"` // Preferred display server, "" for the backend default.

	ContextMajor int  `yaml:"context_major"`
	ContextMinor int  `yaml:"context_minor"`
	CoreProfile  bool `yaml:"core_profile"`

	// Vertices holds tightly packed x, y, z positions in normalized device coordinates,
	// three vertices per triangle.
	Vertices []float32 `yaml:"vertices"`

	VertexShader   string `yaml:"-"`
	FragmentShader string `yaml:"-"`

	ClearColor Color `yaml:"clear_color"`

	// FillColor is the color the fragment shader outputs. Only used by the
	// frontends that can't run the GLSL sources.
	FillColor Color `yaml:"fill_color"`

	// Strict makes shader compile and program link failures fatal.
	// When false, they are logged and rendering goes on with whatever the driver produced.
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns the 800x600 window with a single orange triangle on a dark teal background.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		Title:        "test",
		Platform:     "wayland",
		ContextMajor: 3,
		ContextMinor: 3,
		CoreProfile:  true,
		Vertices: []float32{
			-0.5, -0.5, 0.0,
			0.5, -0.5, 0.0,
			0.0, 0.5, 0.0,
		},
		VertexShader:   assets.VertexShader,
		FragmentShader: assets.FragmentShader,
		ClearColor:     Color{0.2, 0.3, 0.3, 1.0},
		FillColor:      Color{1.0, 0.5, 0.2, 1.0},
		Strict:         true,
	}
}

// VertexCount returns the number of vertices described by Vertices.
func (c Config) VertexCount() int {
	return len(c.Vertices) / ComponentsPerVertex
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Title == "":
		return fmt.Errorf("%w: empty window title", ErrInvalidConfig)
	case c.ContextMajor <= 0 || c.ContextMinor < 0:
		return fmt.Errorf("%w: context version %d.%d", ErrInvalidConfig, c.ContextMajor, c.ContextMinor)
	case len(c.Vertices) == 0 || len(c.Vertices)%(ComponentsPerVertex*VerticesPerTriangle) != 0:
		return fmt.Errorf("%w: %d floats do not describe whole triangles", ErrInvalidConfig, len(c.Vertices))
	case c.VertexShader == "" || c.FragmentShader == "":
		return fmt.Errorf("%w: missing shader source", ErrInvalidConfig)
	case !c.ClearColor.valid():
		return fmt.Errorf("%w: clear color %v out of range", ErrInvalidConfig, c.ClearColor)
	case !c.FillColor.valid():
		return fmt.Errorf("%w: fill color %v out of range", ErrInvalidConfig, c.FillColor)
	}
	return nil
}
