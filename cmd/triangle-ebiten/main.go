// Package main draws the triangle with ebiten and a Kage shader.
package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"go.creack.net/triangle/assets"
	"go.creack.net/triangle/cli"
	"go.creack.net/triangle/raster"
	"go.creack.net/triangle/render"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

// Game implements ebiten.Game interface.
type Game struct {
	cfg     render.Config
	shader  *ebiten.Shader
	overlay bool

	vertices []ebiten.Vertex
	indices  []uint16

	width, height int // Latest outside size.
	frames        int
}

func NewGame(cfg render.Config, overlay bool) (*Game, error) {
	n := cfg.VertexCount()
	if n > math.MaxUint16 {
		return nil, fmt.Errorf("too many vertices: %d", n)
	}
	shader, err := ebiten.NewShader(assets.KageShader)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}
	g := &Game{
		cfg:      cfg,
		shader:   shader,
		overlay:  overlay,
		vertices: make([]ebiten.Vertex, n),
		indices:  make([]uint16, n),
		width:    cfg.Width,
		height:   cfg.Height,
	}
	for i := range g.indices {
		g.indices[i] = uint16(i)
	}
	return g, nil
}

// Update stops the game when Escape is pressed.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw clears the screen and draws every triangle, stretched to the screen size.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.NRGBA())

	b := screen.Bounds()
	for i := range g.vertices {
		v := g.cfg.Vertices[i*render.ComponentsPerVertex:]
		x, y := raster.ToPixel(v[0], v[1], b.Dx(), b.Dy())
		g.vertices[i] = ebiten.Vertex{DstX: x, DstY: y, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	}
	c := g.cfg.FillColor
	screen.DrawTrianglesShader(g.vertices, g.indices, g.shader, &ebiten.DrawTrianglesShaderOptions{
		Uniforms: map[string]any{"Color": []float32{c[0], c[1], c[2], c[3]}},
	})
	g.frames++

	if g.overlay {
		textOp := &text.DrawOptions{}
		textOp.LineSpacing = fontFace.Metrics().HLineGap + fontFace.Metrics().HAscent + fontFace.Metrics().HDescent
		textOp.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, fmt.Sprintf("frame %d\n%dx%d\nESC to quit", g.frames, g.width, g.height), fontFace, textOp)
	}
}

// Layout follows the window size so the viewport always matches it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stdout)

	fs, settings := cli.NewFlagSet(os.Args[0])
	overlay := fs.Bool("overlay", false, "show frame count and screen size")
	cfg, err := cli.ParseConfig(fs, settings, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to parse cli config: %s.", err)
	}
	logger := settings.Logger(os.Stdout)

	game, err := NewGame(cfg, *overlay)
	if err != nil {
		log.Fatalf("fail: %s.", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("fail: %s.", err)
	}
	logger.Debug("bye", "frames", game.frames)
}
