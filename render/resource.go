package render

// InfoLogSize is the buffer size used to fetch compile and link diagnostics,
// terminator included.
const InfoLogSize = 512

// VertexArray owns a vertex array object. Close is safe to call more than once,
// and on a nil VertexArray.
type VertexArray struct {
	dev      Device
	id       uint32
	released bool
}

func NewVertexArray(dev Device) *VertexArray {
	return &VertexArray{dev: dev, id: dev.GenVertexArray()}
}

func (v *VertexArray) ID() uint32 { return v.id }
func (v *VertexArray) Bind()      { v.dev.BindVertexArray(v.id) }

func (v *VertexArray) Close() {
	if v == nil || v.released {
		return
	}
	v.released = true
	v.dev.DeleteVertexArray(v.id)
}

// Buffer owns an array buffer object.
type Buffer struct {
	dev      Device
	id       uint32
	size     int // Number of floats uploaded.
	released bool
}

func NewBuffer(dev Device) *Buffer {
	return &Buffer{dev: dev, id: dev.GenBuffer()}
}

func (b *Buffer) ID() uint32 { return b.id }
func (b *Buffer) Len() int   { return b.size }
func (b *Buffer) Bind()      { b.dev.BindArrayBuffer(b.id) }

// Upload binds the buffer and copies data into it with a static draw hint.
func (b *Buffer) Upload(data []float32) {
	b.Bind()
	b.dev.BufferStaticDraw(data)
	b.size = len(data)
}

// Read binds the buffer and returns its content.
func (b *Buffer) Read() []float32 {
	b.Bind()
	return b.dev.ReadArrayBuffer(b.size)
}

func (b *Buffer) Close() {
	if b == nil || b.released {
		return
	}
	b.released = true
	b.dev.DeleteBuffer(b.id)
}

// Shader owns a shader object.
type Shader struct {
	dev      Device
	id       uint32
	kind     ShaderKind
	released bool
}

// CompileShader creates and compiles a shader. On compile failure it returns
// both the shader and a *CompileError so callers may go on with it.
func CompileShader(dev Device, kind ShaderKind, src string) (*Shader, error) {
	s := &Shader{dev: dev, id: dev.CreateShader(kind), kind: kind}
	dev.ShaderSource(s.id, src)
	dev.CompileShader(s.id)
	if !dev.ShaderCompiled(s.id) {
		return s, &CompileError{Stage: stageOf(kind), Log: dev.ShaderInfoLog(s.id, InfoLogSize)}
	}
	return s, nil
}

func (s *Shader) ID() uint32       { return s.id }
func (s *Shader) Kind() ShaderKind { return s.kind }

func (s *Shader) Close() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.dev.DeleteShader(s.id)
}

// Program owns a shader program object.
type Program struct {
	dev      Device
	id       uint32
	released bool
}

// LinkProgram attaches the shaders and links them. On link failure it returns
// both the program and a *CompileError. The shaders are left to the caller.
func LinkProgram(dev Device, shaders ...*Shader) (*Program, error) {
	p := &Program{dev: dev, id: dev.CreateProgram()}
	for _, s := range shaders {
		dev.AttachShader(p.id, s.id)
	}
	dev.LinkProgram(p.id)
	if !dev.ProgramLinked(p.id) {
		return p, &CompileError{Stage: StageLink, Log: dev.ProgramInfoLog(p.id, InfoLogSize)}
	}
	return p, nil
}

func (p *Program) ID() uint32 { return p.id }
func (p *Program) Use()       { p.dev.UseProgram(p.id) }

func (p *Program) Close() {
	if p == nil || p.released {
		return
	}
	p.released = true
	p.dev.DeleteProgram(p.id)
}
