package assets

import (
	_ "embed"
)

// Vertex shader mapping the position attribute straight to clip space.
//
//go:embed shaders/triangle.vert
var VertexShader string

// Fragment shader painting every fragment opaque orange.
//
//go:embed shaders/triangle.frag
var FragmentShader string

// Kage equivalent of the fragment shader for the ebiten frontend.
// The color comes from the Color uniform.
//
//go:embed shaders/triangle.kage
var KageShader []byte
