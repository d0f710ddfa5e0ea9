package render

import (
	"errors"
	"log/slog"
)

// positionAttrib is the vertex shader input location of the position.
const positionAttrib = 0

// Pipeline is the geometry and shader program drawn every frame.
// It is built once and never mutated afterwards.
type Pipeline struct {
	dev     Device
	vao     *VertexArray
	vbo     *Buffer
	program *Program
	count   int32 // Vertices per draw call.
	log     *slog.Logger
}

// NewPipeline uploads cfg.Vertices, builds the shader program from the config
// sources and declares the position attribute layout.
//
// When cfg.Strict is set, a compile or link failure is returned as a
// *CompileError and everything acquired so far is released. Otherwise the
// failure is only logged.
func NewPipeline(dev Device, cfg Config, opts ...Option) (_ *Pipeline, err error) {
	o := newOptions(opts)
	p := &Pipeline{
		dev:   dev,
		count: int32(cfg.VertexCount()),
		log:   o.logger,
	}
	defer func() {
		if err != nil {
			p.Close()
		}
	}()

	p.vao = NewVertexArray(dev)
	p.vao.Bind()
	p.vbo = NewBuffer(dev)
	p.vbo.Upload(cfg.Vertices)

	vs, err := p.compile(ShaderVertex, cfg.VertexShader, cfg.Strict)
	if err != nil {
		return nil, err
	}
	fs, err := p.compile(ShaderFragment, cfg.FragmentShader, cfg.Strict)
	if err != nil {
		vs.Close()
		return nil, err
	}

	prog, linkErr := LinkProgram(dev, vs, fs)
	p.program = prog
	// The program keeps what it needs, link failure or not.
	vs.Close()
	fs.Close()
	if err := p.check(linkErr, cfg.Strict); err != nil {
		return nil, err
	}

	p.program.Use()
	dev.VertexAttribPointer(positionAttrib, ComponentsPerVertex, false, ComponentsPerVertex*floatSize, 0)
	dev.EnableVertexAttribArray(positionAttrib)

	p.log.Debug("pipeline ready",
		"vao", p.vao.ID(), "vbo", p.vbo.ID(), "program", p.program.ID(), "vertices", p.count)
	return p, nil
}

func (p *Pipeline) compile(kind ShaderKind, src string, strict bool) (*Shader, error) {
	s, err := CompileShader(p.dev, kind, src)
	if err := p.check(err, strict); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// check logs a compile or link failure and tells whether it is fatal.
func (p *Pipeline) check(err error, strict bool) error {
	if err == nil {
		return nil
	}
	var cerr *CompileError
	if errors.As(err, &cerr) {
		p.log.Error(cerr.Stage.String()+" failed", "log", cerr.Log)
	} else {
		p.log.Error("shader setup failed", "error", err)
	}
	if strict {
		return err
	}
	return nil
}

// Draw issues the single draw call of a frame.
func (p *Pipeline) Draw() {
	p.program.Use()
	p.vao.Bind()
	p.dev.DrawTriangles(0, p.count)
	p.dev.BindVertexArray(0)
}

// VertexCount returns the number of vertices drawn per frame.
func (p *Pipeline) VertexCount() int { return int(p.count) }

// Vertices reads back the vertex buffer.
func (p *Pipeline) Vertices() []float32 { return p.vbo.Read() }

// Close releases the vertex array, the vertex buffer and the program.
func (p *Pipeline) Close() {
	p.vao.Close()
	p.vbo.Close()
	p.program.Close()
}
