package shapes

import "github.com/go-gl/mathgl/mgl32"

// Opaque object handles. Zero is never a valid handle.
type (
	Shader  uint32
	Program uint32
	Buffer  uint32
)

// Attrib is a vertex attribute location. Negative means not found.
type Attrib int32

// Uniform is a uniform location. Negative means not found.
type Uniform int32

// ShaderKind is the pipeline stage a shader runs in.
type ShaderKind int

const (
	VertexShader ShaderKind = iota + 1
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// Primitive is the topology used to assemble vertices in a draw call.
type Primitive int

const (
	Triangles Primitive = iota + 1
	TriangleStrip
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle-strip"
	default:
		return "unknown"
	}
}

// ClearMask selects the buffers cleared by GL.Clear.
type ClearMask uint32

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// Capability is a server-side GL capability toggled by GL.Enable.
type Capability int

const (
	DepthTest Capability = iota + 1
)

// GL is the subset of a WebGL / OpenGL context the renderer needs.
// Every stage receives it explicitly; nothing reaches for a global context.
//
// Buffer calls always target the array buffer binding. Vertex data is
// 32-bit float.
type GL interface {
	CreateShader(kind ShaderKind) Shader
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	GetAttribLocation(p Program, name string) Attrib
	EnableVertexAttribArray(a Attrib)
	GetUniformLocation(p Program, name string) Uniform

	CreateBuffer() Buffer
	BindBuffer(b Buffer)
	BufferData(data []float32)
	DeleteBuffer(b Buffer)
	VertexAttribPointer(a Attrib, size int, normalized bool, stride, offset int)
	UniformMatrix4fv(u Uniform, m mgl32.Mat4)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Enable(c Capability)
	DrawArrays(mode Primitive, first, count int)
}

// Surface is the drawing area a context renders into.
type Surface interface {
	// Size returns the drawable size in pixels.
	Size() (width, height int)
}
