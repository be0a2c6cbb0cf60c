package shapes

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownShaderKind is returned when a shader type tag is neither
	// x-shader/x-vertex nor x-shader/x-fragment.
	ErrUnknownShaderKind = errors.New("unknown shader kind")

	// ErrCompile is returned when the driver rejects a shader source.
	ErrCompile = errors.New("shader compilation failed")

	// ErrLink is returned when the driver rejects a program link.
	ErrLink = errors.New("shader program linking failed")

	// ErrNotReady is returned by Draw before a successful Init.
	ErrNotReady = errors.New("renderer not initialized")

	// ErrEmptySurface is returned by Draw when the surface has zero area.
	ErrEmptySurface = errors.New("surface has no drawable area")

	// ErrVertexLayout is returned when a mesh's float count is not a whole
	// number of vertices.
	ErrVertexLayout = errors.New("vertex data does not match layout")
)

// ShaderError describes a fatal shader setup failure.
type ShaderError struct {
	Source string // element id, or "program" for link failures
	Tag    string // type tag as written in the page, if any
	Log    string // driver diagnostic text
	Err    error
}

func (e *ShaderError) Error() string {
	msg := e.Err.Error()
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	if e.Tag != "" && errors.Is(e.Err, ErrUnknownShaderKind) {
		msg += fmt.Sprintf(" %q", e.Tag)
	}
	if e.Log != "" {
		msg += ": " + e.Log
	}
	return msg
}

func (e *ShaderError) Unwrap() error { return e.Err }
