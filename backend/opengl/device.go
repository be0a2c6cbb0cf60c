// Package opengl provides an OpenGL 4.1 core device and a GLFW window
// surface for the shapes renderer.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/shapes"
)

// Device implements shapes.GL on the current OpenGL context.
// The core profile has no default vertex array, so the device binds its own
// for its whole lifetime.
type Device struct {
	vao uint32
}

var _ shapes.GL = (*Device)(nil)

// NewDevice binds a vertex array object on the current context.
// gl.Init must have succeeded first.
func NewDevice() *Device {
	d := &Device{}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	return d
}

// Delete releases the vertex array object.
func (d *Device) Delete() {
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

// CreateShader returns 0 for an unknown kind.
func (d *Device) CreateShader(kind shapes.ShaderKind) shapes.Shader {
	switch kind {
	case shapes.VertexShader:
		return shapes.Shader(gl.CreateShader(gl.VERTEX_SHADER))
	case shapes.FragmentShader:
		return shapes.Shader(gl.CreateShader(gl.FRAGMENT_SHADER))
	default:
		return 0
	}
}

// ShaderSource sets the GLSL text of s.
func (d *Device) ShaderSource(s shapes.Shader, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, csource, nil)
	free()
}

// CompileShader wraps glCompileShader.
func (d *Device) CompileShader(s shapes.Shader) { gl.CompileShader(uint32(s)) }

// ShaderCompiled reads GL_COMPILE_STATUS.
func (d *Device) ShaderCompiled(s shapes.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns the driver's compile log.
func (d *Device) ShaderInfoLog(s shapes.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(uint32(s), logLength, nil, &log[0])
	return trimLog(log)
}

// DeleteShader wraps glDeleteShader.
func (d *Device) DeleteShader(s shapes.Shader) { gl.DeleteShader(uint32(s)) }

// CreateProgram wraps glCreateProgram.
func (d *Device) CreateProgram() shapes.Program { return shapes.Program(gl.CreateProgram()) }

// AttachShader wraps glAttachShader.
func (d *Device) AttachShader(p shapes.Program, s shapes.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

// LinkProgram wraps glLinkProgram.
func (d *Device) LinkProgram(p shapes.Program) { gl.LinkProgram(uint32(p)) }

// ProgramLinked reads GL_LINK_STATUS.
func (d *Device) ProgramLinked(p shapes.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog returns the driver's link log.
func (d *Device) ProgramInfoLog(p shapes.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(uint32(p), logLength, nil, &log[0])
	return trimLog(log)
}

// UseProgram wraps glUseProgram.
func (d *Device) UseProgram(p shapes.Program) { gl.UseProgram(uint32(p)) }

// DeleteProgram wraps glDeleteProgram.
func (d *Device) DeleteProgram(p shapes.Program) { gl.DeleteProgram(uint32(p)) }

// GetAttribLocation returns -1 for an inactive attribute.
func (d *Device) GetAttribLocation(p shapes.Program, name string) shapes.Attrib {
	return shapes.Attrib(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

// EnableVertexAttribArray ignores negative locations.
func (d *Device) EnableVertexAttribArray(a shapes.Attrib) {
	if a < 0 {
		return
	}
	gl.EnableVertexAttribArray(uint32(a))
}

// GetUniformLocation returns -1 for an inactive uniform.
func (d *Device) GetUniformLocation(p shapes.Program, name string) shapes.Uniform {
	return shapes.Uniform(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

// CreateBuffer generates one buffer object.
func (d *Device) CreateBuffer() shapes.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return shapes.Buffer(b)
}

// BindBuffer binds b to GL_ARRAY_BUFFER.
func (d *Device) BindBuffer(b shapes.Buffer) { gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b)) }

// BufferData uploads data to the bound array buffer as GL_STATIC_DRAW.
func (d *Device) BufferData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

// DeleteBuffer deletes one buffer object.
func (d *Device) DeleteBuffer(b shapes.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

// VertexAttribPointer describes float attributes; stride and offset are in bytes.
func (d *Device) VertexAttribPointer(a shapes.Attrib, size int, normalized bool, stride, offset int) {
	if a < 0 {
		return
	}
	gl.VertexAttribPointerWithOffset(uint32(a), int32(size), gl.FLOAT, normalized, int32(stride), uintptr(offset))
}

// UniformMatrix4fv uploads a column-major 4x4 matrix.
func (d *Device) UniformMatrix4fv(u shapes.Uniform, m mgl32.Mat4) {
	gl.UniformMatrix4fv(int32(u), 1, false, &m[0])
}

// Viewport wraps glViewport.
func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// ClearColor wraps glClearColor.
func (d *Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

// Clear maps the mask onto GL buffer bits.
func (d *Device) Clear(mask shapes.ClearMask) {
	var bits uint32
	if mask&shapes.ColorBufferBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&shapes.DepthBufferBit != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// Enable turns on a capability.
func (d *Device) Enable(c shapes.Capability) {
	switch c {
	case shapes.DepthTest:
		gl.Enable(gl.DEPTH_TEST)
	}
}

// DrawArrays maps the primitive onto its GL mode.
func (d *Device) DrawArrays(mode shapes.Primitive, first, count int) {
	gl.DrawArrays(primitive(mode), int32(first), int32(count))
}

func primitive(p shapes.Primitive) uint32 {
	if p == shapes.TriangleStrip {
		return gl.TRIANGLE_STRIP
	}
	return gl.TRIANGLES
}

// trimLog drops the NUL terminator and trailing newlines of a driver log.
func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\r\n ")
}
