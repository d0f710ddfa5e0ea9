package render

import (
	"errors"
	"fmt"
	"strings"
)

var errNilWindow = errors.New("backend returned no window")

// InitError is a windowing backend initialization failure.
type InitError struct {
	Code        int
	Description string
}

func (e *InitError) Error() string {
	return fmt.Sprintf("(%d) %s", e.Code, e.Description)
}

// Stage is the shader program construction step that failed.
type Stage int

const (
	_ Stage = iota
	StageVertex
	StageFragment
	StageLink
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex shader compilation"
	case StageFragment:
		return "fragment shader compilation"
	case StageLink:
		return "shader program link"
	default:
		return "unknown stage"
	}
}

func stageOf(kind ShaderKind) Stage {
	switch kind {
	case ShaderVertex:
		return StageVertex
	case ShaderFragment:
		return StageFragment
	default:
		return 0
	}
}

// CompileError holds the driver diagnostic of a failed compile or link.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Stage, strings.TrimSpace(e.Log))
}
