package render

// Key identifies a keyboard key.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// ShaderKind is the pipeline stage a shader object runs at.
type ShaderKind int

const (
	_ ShaderKind = iota
	ShaderVertex
	ShaderFragment
)

func (sk ShaderKind) String() string {
	switch sk {
	case ShaderVertex:
		return "vertex"
	case ShaderFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the subset of OpenGL the program issues.
// Object names are the raw GL handles. All methods must be called from the
// thread owning the current context.
type Device interface {
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear() // Clears the color buffer.

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	// BufferStaticDraw uploads data to the bound array buffer with a static draw usage hint.
	BufferStaticDraw(data []float32)
	// ReadArrayBuffer reads back n floats from the bound array buffer.
	ReadArrayBuffer(n int) []float32
	DeleteBuffer(vbo uint32)

	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns at most bufSize-1 bytes of the shader diagnostic.
	ShaderInfoLog(shader uint32, bufSize int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	// ProgramInfoLog returns at most bufSize-1 bytes of the link diagnostic.
	ProgramInfoLog(program uint32, bufSize int32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DrawTriangles(first, count int32)
}

// Hints are applied to the windowing backend before initialization.
type Hints struct {
	Platform string // Preferred display server, e.g. "wayland" or "x11".
}

type WindowConfig struct {
	Width, Height int
	Title         string

	ContextMajor int
	ContextMinor int
	CoreProfile  bool
}

// Platform is the windowing backend.
type Platform interface {
	// Init initializes the backend. Failures should be reported as *InitError.
	Init(hints Hints) error
	// CreateWindow creates a window and its rendering context.
	// On failure the returned Window must be a nil interface.
	CreateWindow(cfg WindowConfig) (Window, error)
	// PollEvents processes pending events and returns immediately.
	PollEvents()
	// Terminate releases the backend, destroying any remaining window.
	Terminate()
}

type Window interface {
	// MakeContextCurrent binds the window context to the calling thread and
	// returns the device issuing commands to it.
	MakeContextCurrent() (Device, error)
	SetFramebufferSizeCallback(fn func(width, height int))
	FramebufferSize() (width, height int)
	KeyPressed(key Key) bool
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
	Destroy()
}
