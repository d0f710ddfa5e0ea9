package glfwgl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"go.creack.net/triangle/render"
)

// Device issues commands to the current OpenGL context.
type Device struct{}

var shaderTypes = map[render.ShaderKind]uint32{
	render.ShaderVertex:   gl.VERTEX_SHADER,
	render.ShaderFragment: gl.FRAGMENT_SHADER,
}

func (Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (Device) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (Device) Clear()                             { gl.Clear(gl.COLOR_BUFFER_BIT) }

func (Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (Device) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (Device) BindArrayBuffer(vbo uint32) { gl.BindBuffer(gl.ARRAY_BUFFER, vbo) }

func (Device) BufferStaticDraw(data []float32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (Device) ReadArrayBuffer(n int) []float32 {
	out := make([]float32, n)
	if n == 0 {
		return out
	}
	gl.GetBufferSubData(gl.ARRAY_BUFFER, 0, n*4, gl.Ptr(out))
	return out
}

func (Device) DeleteBuffer(vbo uint32) { gl.DeleteBuffers(1, &vbo) }

func (Device) CreateShader(kind render.ShaderKind) uint32 {
	return gl.CreateShader(shaderTypes[kind])
}

func (Device) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csrc, nil)
}

func (Device) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Device) ShaderInfoLog(shader uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]byte, bufSize)
	var n int32
	gl.GetShaderInfoLog(shader, bufSize, &n, &buf[0])
	return string(buf[:n])
}

func (Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Device) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Device) ProgramInfoLog(program uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]byte, bufSize)
	var n int32
	gl.GetProgramInfoLog(program, bufSize, &n, &buf[0])
	return string(buf[:n])
}

func (Device) UseProgram(program uint32) { gl.UseProgram(program) }

func (Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Device) VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, normalized, stride, offset)
}

func (Device) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Device) DrawTriangles(first, count int32) { gl.DrawArrays(gl.TRIANGLES, first, count) }
