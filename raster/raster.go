// Package raster draws the scene on the CPU, for frontends without a GL context.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"go.creack.net/triangle/render"
)

// ToPixel maps normalized device coordinates to the pixel space of a
// width x height target. Pixel y grows downward.
func ToPixel(x, y float32, width, height int) (px, py float32) {
	return (x + 1) / 2 * float32(width), (1 - y) / 2 * float32(height)
}

type point struct{ x, y float32 }

// Fill rasterizes the triangles of vertices, packed x, y, z triples, into dst.
// Depth is ignored and geometry outside dst is clipped.
func Fill(dst draw.Image, vertices []float32, c color.Color) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	const stride = render.ComponentsPerVertex * render.VerticesPerTriangle
	src := image.NewUniform(c)
	z := vector.NewRasterizer(w, h)
	for i := 0; i+stride <= len(vertices); i += stride {
		tri := make([]point, 0, render.VerticesPerTriangle)
		for j := range render.VerticesPerTriangle {
			v := vertices[i+j*render.ComponentsPerVertex:]
			x, y := ToPixel(v[0], v[1], w, h)
			tri = append(tri, point{x, y})
		}
		poly := clip(tri, float32(w), float32(h))
		if len(poly) < 3 {
			continue
		}

		z.Reset(w, h)
		z.MoveTo(poly[0].x, poly[0].y)
		for _, p := range poly[1:] {
			z.LineTo(p.x, p.y)
		}
		z.ClosePath()
		z.Draw(dst, b, src, image.Point{})
	}
}

// Render draws the scene of cfg in a new width x height image: the clear
// color, then every triangle in the fill color.
func Render(width, height int, cfg render.Config) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.ClearColor.NRGBA()), image.Point{}, draw.Src)
	Fill(img, cfg.Vertices, cfg.FillColor.NRGBA())
	return img
}

// clip cuts the polygon to the [0, w] x [0, h] rectangle (Sutherland-Hodgman).
func clip(poly []point, w, h float32) []point {
	edges := []struct {
		inside func(p point) bool
		cross  func(a, b point) point
	}{
		{func(p point) bool { return p.x >= 0 }, func(a, b point) point { return lerpX(a, b, 0) }},
		{func(p point) bool { return p.x <= w }, func(a, b point) point { return lerpX(a, b, w) }},
		{func(p point) bool { return p.y >= 0 }, func(a, b point) point { return lerpY(a, b, 0) }},
		{func(p point) bool { return p.y <= h }, func(a, b point) point { return lerpY(a, b, h) }},
	}
	for _, e := range edges {
		if len(poly) == 0 {
			return nil
		}
		in := poly
		poly = make([]point, 0, len(in)+1)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				poly = append(poly, cur)
			case e.inside(cur):
				poly = append(poly, e.cross(prev, cur), cur)
			case e.inside(prev):
				poly = append(poly, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return poly
}

func lerpX(a, b point, x float32) point {
	t := (x - a.x) / (b.x - a.x)
	return point{x, a.y + t*(b.y-a.y)}
}

func lerpY(a, b point, y float32) point {
	t := (y - a.y) / (b.y - a.y)
	return point{a.x + t*(b.x-a.x), y}
}
