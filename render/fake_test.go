package render

import (
	"strings"
)

// fakeDevice is an in-memory GL recording every call.
type fakeDevice struct {
	nextID uint32

	viewport   [4]int32
	viewports  int
	clearColor Color
	clears     []Color
	draws      [][2]int32
	calls      []string

	boundVAO    uint32
	boundBuffer uint32
	program     uint32

	vaos     map[uint32]bool
	buffers  map[uint32][]float32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	attrib struct {
		index      uint32
		size       int32
		normalized bool
		stride     int32
		offset     uintptr
		enabled    bool
	}
}

type fakeShader struct {
	kind     ShaderKind
	src      string
	compiled bool
	log      string
}

type fakeProgram struct {
	shaders []uint32
	linked  bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		vaos:     map[uint32]bool{},
		buffers:  map[uint32][]float32{},
		shaders:  map[uint32]*fakeShader{},
		programs: map[uint32]*fakeProgram{},
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) record(call string) { d.calls = append(d.calls, call) }

func (d *fakeDevice) Viewport(x, y, width, height int32) {
	d.viewport = [4]int32{x, y, width, height}
	d.viewports++
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) { d.clearColor = Color{r, g, b, a} }

func (d *fakeDevice) Clear() {
	d.clears = append(d.clears, d.clearColor)
	d.record("clear")
}

func (d *fakeDevice) GenVertexArray() uint32 {
	id := d.id()
	d.vaos[id] = true
	return id
}

func (d *fakeDevice) BindVertexArray(vao uint32) {
	d.boundVAO = vao
	if vao == 0 {
		d.record("unbind-vao")
		return
	}
	d.record("bind-vao")
}

func (d *fakeDevice) DeleteVertexArray(vao uint32) {
	delete(d.vaos, vao)
	d.record("delete-vao")
}

func (d *fakeDevice) GenBuffer() uint32 {
	id := d.id()
	d.buffers[id] = nil
	return id
}

func (d *fakeDevice) BindArrayBuffer(vbo uint32) { d.boundBuffer = vbo }

func (d *fakeDevice) BufferStaticDraw(data []float32) {
	d.buffers[d.boundBuffer] = append([]float32(nil), data...)
	d.record("upload")
}

func (d *fakeDevice) ReadArrayBuffer(n int) []float32 {
	data := d.buffers[d.boundBuffer]
	return append([]float32(nil), data[:min(n, len(data))]...)
}

func (d *fakeDevice) DeleteBuffer(vbo uint32) {
	delete(d.buffers, vbo)
	d.record("delete-buffer")
}

func (d *fakeDevice) CreateShader(kind ShaderKind) uint32 {
	id := d.id()
	d.shaders[id] = &fakeShader{kind: kind}
	return id
}

func (d *fakeDevice) ShaderSource(shader uint32, src string) { d.shaders[shader].src = src }

// CompileShader fails any source containing "syntax error".
func (d *fakeDevice) CompileShader(shader uint32) {
	s := d.shaders[shader]
	if strings.Contains(s.src, "syntax error") {
		s.log = "0:3(1): error: syntax error, unexpected NEW_IDENTIFIER\n" + strings.Repeat("x", 1024)
		return
	}
	s.compiled = true
}

func (d *fakeDevice) ShaderCompiled(shader uint32) bool { return d.shaders[shader].compiled }

func (d *fakeDevice) ShaderInfoLog(shader uint32, bufSize int32) string {
	return truncate(d.shaders[shader].log, bufSize)
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	delete(d.shaders, shader)
	d.record("delete-shader")
}

func (d *fakeDevice) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = &fakeProgram{}
	return id
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	p := d.programs[program]
	p.shaders = append(p.shaders, shader)
}

// LinkProgram needs one compiled shader of each kind.
func (d *fakeDevice) LinkProgram(program uint32) {
	p := d.programs[program]
	kinds := map[ShaderKind]bool{}
	for _, id := range p.shaders {
		if s, ok := d.shaders[id]; ok && s.compiled {
			kinds[s.kind] = true
		}
	}
	p.linked = kinds[ShaderVertex] && kinds[ShaderFragment]
	d.record("link")
}

func (d *fakeDevice) ProgramLinked(program uint32) bool { return d.programs[program].linked }

func (d *fakeDevice) ProgramInfoLog(program uint32, bufSize int32) string {
	if d.programs[program].linked {
		return ""
	}
	return truncate("error: linking with uncompiled/unspecialized shader", bufSize)
}

func (d *fakeDevice) UseProgram(program uint32) { d.program = program }

func (d *fakeDevice) DeleteProgram(program uint32) {
	delete(d.programs, program)
	d.record("delete-program")
}

func (d *fakeDevice) VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset uintptr) {
	d.attrib.index, d.attrib.size, d.attrib.normalized = index, size, normalized
	d.attrib.stride, d.attrib.offset = stride, offset
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32) {
	d.attrib.enabled = index == d.attrib.index
}

func (d *fakeDevice) DrawTriangles(first, count int32) {
	d.draws = append(d.draws, [2]int32{first, count})
	d.record("draw")
}

func truncate(s string, bufSize int32) string {
	if n := int(bufSize) - 1; len(s) > n {
		return s[:n]
	}
	return s
}

type fakeWindow struct {
	dev *fakeDevice

	width, height int
	shouldClose   bool
	keys          map[Key]bool
	onResize      func(width, height int)
	swaps         int
	destroyed     bool
}

func (w *fakeWindow) MakeContextCurrent() (Device, error) { return w.dev, nil }

func (w *fakeWindow) SetFramebufferSizeCallback(fn func(width, height int)) { w.onResize = fn }

func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) KeyPressed(key Key) bool { return w.keys[key] }

func (w *fakeWindow) ShouldClose() bool { return w.shouldClose }

func (w *fakeWindow) SetShouldClose(value bool) { w.shouldClose = value }

func (w *fakeWindow) SwapBuffers() { w.swaps++ }

func (w *fakeWindow) Destroy() { w.destroyed = true }

// resize simulates the platform reporting a new framebuffer size.
func (w *fakeWindow) resize(width, height int) {
	w.width, w.height = width, height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

type fakePlatform struct {
	dev    *fakeDevice
	window *fakeWindow

	initErr   error
	createErr error
	nilWindow bool // CreateWindow reports success without a window.
	hints     Hints
	windows   int

	polls      int
	onPoll     func(polls int)
	terminated bool
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{dev: newFakeDevice()}
}

func (p *fakePlatform) Init(hints Hints) error {
	p.hints = hints
	return p.initErr
}

func (p *fakePlatform) CreateWindow(cfg WindowConfig) (Window, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	if p.nilWindow {
		return nil, nil
	}
	p.windows++
	p.window = &fakeWindow{
		dev:    p.dev,
		width:  cfg.Width,
		height: cfg.Height,
		keys:   map[Key]bool{},
	}
	return p.window, nil
}

func (p *fakePlatform) PollEvents() {
	p.polls++
	if p.onPoll != nil {
		p.onPoll(p.polls)
	}
}

func (p *fakePlatform) Terminate() { p.terminated = true }
