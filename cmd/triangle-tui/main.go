// Package main draws the triangle in the terminal, two pixels per cell.
package main

import (
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"go.creack.net/triangle/cli"
	"go.creack.net/triangle/raster"
	"go.creack.net/triangle/render"
)

// halfBlock is drawn with the upper pixel as foreground and the lower one as background.
const halfBlock = '▀'

type Viewer struct {
	app *tview.Application
	box *tview.Box
	cfg render.Config
	log *slog.Logger

	frames int
}

func NewViewer(cfg render.Config, logger *slog.Logger) *Viewer {
	app := tview.NewApplication()
	v := &Viewer{app: app, cfg: cfg, log: logger}
	v.box = tview.NewBox().SetDrawFunc(v.draw)
	app.SetRoot(v.box, true)
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			app.Stop()
			return nil
		}
		return event
	})
	return v
}

// draw rasterizes the scene at the box size. tview calls it again on
// terminal resize, so the image always matches the visible area.
func (v *Viewer) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width <= 0 || height <= 0 {
		return x, y, width, height
	}
	img := raster.Render(width, height*2, v.cfg)
	for row := range height {
		for col := range width {
			screen.SetContent(x+col, y+row, halfBlock, nil, cellStyle(img, col, row))
		}
	}
	v.frames++
	return x, y, width, height
}

func cellStyle(img *image.RGBA, col, row int) tcell.Style {
	top, bottom := img.RGBAAt(col, row*2), img.RGBAAt(col, row*2+1)
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}

func (v *Viewer) Run() error {
	defer func() { v.log.Debug("bye", "frames", v.frames) }()
	return v.app.Run()
}

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stdout)

	fs, settings := cli.NewFlagSet(os.Args[0])
	cfg, err := cli.ParseConfig(fs, settings, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to parse cli config: %s.", err)
	}

	// The terminal is taken over while running, keep diagnostics on stderr.
	if err := NewViewer(cfg, settings.Logger(os.Stderr)).Run(); err != nil {
		log.Fatalf("fail: %s.", err)
	}
}
