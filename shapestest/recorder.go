// Package shapestest provides a recording GL device for tests.
package shapestest

import (
	"errors"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/shapes"
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []any
}

// DrawCall is a snapshot of the state a DrawArrays call saw.
type DrawCall struct {
	Mode       shapes.Primitive
	First      int
	Count      int
	Buffer     shapes.Buffer
	Size       int // components per vertex of the bound attribute
	Projection mgl32.Mat4
	ModelView  mgl32.Mat4
}

// CompileCheck decides whether a shader compiles. A non-empty return value
// is the info log of a failed compile.
type CompileCheck func(kind shapes.ShaderKind, source string) string

// BasicCompileCheck accepts any source with a main function and balanced
// braces.
func BasicCompileCheck(_ shapes.ShaderKind, source string) string {
	if !strings.Contains(source, "void main") {
		return "ERROR: 0:1: 'main' : function not defined"
	}
	if strings.Count(source, "{") != strings.Count(source, "}") {
		return "ERROR: 0:1: '' : syntax error: unbalanced braces"
	}
	return ""
}

type shader struct {
	kind     shapes.ShaderKind
	source   string
	compiled bool
	log      string
	deleted  bool
}

type program struct {
	shaders []shapes.Shader
	linked  bool
	deleted bool
}

// Recorder implements shapes.GL in memory and records every call.
type Recorder struct {
	// Compile decides shader compile results. Nil means BasicCompileCheck.
	Compile CompileCheck

	// LinkLog, when non-empty, makes every link fail with this log.
	LinkLog string

	// Uniforms maps uniform names to locations. Names not present resolve
	// to -1. Nil means the standard names at locations 0 and 1.
	Uniforms map[string]shapes.Uniform

	Calls []Call
	Draws []DrawCall

	nextID   uint32
	shaders  map[shapes.Shader]*shader
	programs map[shapes.Program]*program
	buffers  map[shapes.Buffer][]float32

	current    shapes.Program
	bound      shapes.Buffer
	attribSize int
	enabled    map[shapes.Attrib]bool
	uniforms   map[shapes.Uniform]mgl32.Mat4
	named      map[string]shapes.Uniform
	caps       map[shapes.Capability]bool
	clearColor [4]float32
	viewport   [4]int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		shaders:  make(map[shapes.Shader]*shader),
		programs: make(map[shapes.Program]*program),
		buffers:  make(map[shapes.Buffer][]float32),
		enabled:  make(map[shapes.Attrib]bool),
		uniforms: make(map[shapes.Uniform]mgl32.Mat4),
		named:    make(map[string]shapes.Uniform),
		caps:     make(map[shapes.Capability]bool),
	}
}

var _ shapes.GL = (*Recorder)(nil)

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

// Count returns how many times the named call was made.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// BufferContents returns the data last uploaded to b.
func (r *Recorder) BufferContents(b shapes.Buffer) []float32 { return r.buffers[b] }

// LiveBuffers returns the number of buffers not yet deleted.
func (r *Recorder) LiveBuffers() int { return len(r.buffers) }

// ShaderDeleted reports whether DeleteShader was called on s.
func (r *Recorder) ShaderDeleted(s shapes.Shader) bool {
	sh, ok := r.shaders[s]
	return ok && sh.deleted
}

// CurrentProgram returns the program set by UseProgram.
func (r *Recorder) CurrentProgram() shapes.Program { return r.current }

// AttribEnabled reports whether a was enabled.
func (r *Recorder) AttribEnabled(a shapes.Attrib) bool { return r.enabled[a] }

// Enabled reports whether c was enabled.
func (r *Recorder) Enabled(c shapes.Capability) bool { return r.caps[c] }

// ClearColorValue returns the last clear color.
func (r *Recorder) ClearColorValue() [4]float32 { return r.clearColor }

// ViewportValue returns the last viewport rectangle.
func (r *Recorder) ViewportValue() [4]int { return r.viewport }

// CreateShader allocates a shader handle of the given kind.
func (r *Recorder) CreateShader(kind shapes.ShaderKind) shapes.Shader {
	s := shapes.Shader(r.id())
	r.shaders[s] = &shader{kind: kind}
	r.record("CreateShader", kind)
	return s
}

// ShaderSource stores the text that CompileShader will check.
func (r *Recorder) ShaderSource(s shapes.Shader, source string) {
	if sh := r.shaders[s]; sh != nil {
		sh.source = source
	}
	r.record("ShaderSource", s, source)
}

// CompileShader runs Compile, or BasicCompileCheck when Compile is nil, over
// the stored text.
func (r *Recorder) CompileShader(s shapes.Shader) {
	r.record("CompileShader", s)
	sh := r.shaders[s]
	if sh == nil {
		return
	}
	check := r.Compile
	if check == nil {
		check = BasicCompileCheck
	}
	sh.log = check(sh.kind, sh.source)
	sh.compiled = sh.log == ""
}

// ShaderCompiled reports the outcome of the last CompileShader.
func (r *Recorder) ShaderCompiled(s shapes.Shader) bool {
	sh := r.shaders[s]
	return sh != nil && sh.compiled
}

// ShaderInfoLog returns the message produced by the Compile check.
func (r *Recorder) ShaderInfoLog(s shapes.Shader) string {
	if sh := r.shaders[s]; sh != nil {
		return sh.log
	}
	return ""
}

// DeleteShader marks s deleted; the handle stays known to ShaderDeleted.
func (r *Recorder) DeleteShader(s shapes.Shader) {
	if sh := r.shaders[s]; sh != nil {
		sh.deleted = true
	}
	r.record("DeleteShader", s)
}

// CreateProgram allocates a program handle.
func (r *Recorder) CreateProgram() shapes.Program {
	p := shapes.Program(r.id())
	r.programs[p] = &program{}
	r.record("CreateProgram")
	return p
}

// AttachShader records s as part of p.
func (r *Recorder) AttachShader(p shapes.Program, s shapes.Shader) {
	if pr := r.programs[p]; pr != nil {
		pr.shaders = append(pr.shaders, s)
	}
	r.record("AttachShader", p, s)
}

// LinkProgram fails when LinkLog is set or p lacks a compiled vertex or
// fragment shader.
func (r *Recorder) LinkProgram(p shapes.Program) {
	r.record("LinkProgram", p)
	pr := r.programs[p]
	if pr == nil || r.LinkLog != "" {
		return
	}
	var vertex, fragment bool
	for _, s := range pr.shaders {
		sh := r.shaders[s]
		if sh == nil || !sh.compiled {
			return
		}
		vertex = vertex || sh.kind == shapes.VertexShader
		fragment = fragment || sh.kind == shapes.FragmentShader
	}
	pr.linked = vertex && fragment
}

// ProgramLinked reports the outcome of the last LinkProgram.
func (r *Recorder) ProgramLinked(p shapes.Program) bool {
	pr := r.programs[p]
	return pr != nil && pr.linked
}

// ProgramInfoLog returns the link failure message.
func (r *Recorder) ProgramInfoLog(p shapes.Program) string {
	if r.LinkLog != "" {
		return r.LinkLog
	}
	if pr := r.programs[p]; pr != nil && !pr.linked {
		return "error: program needs one compiled vertex and one compiled fragment shader"
	}
	return ""
}

// UseProgram sets the current program.
func (r *Recorder) UseProgram(p shapes.Program) {
	r.current = p
	r.record("UseProgram", p)
}

// DeleteProgram marks p deleted.
func (r *Recorder) DeleteProgram(p shapes.Program) {
	if pr := r.programs[p]; pr != nil {
		pr.deleted = true
	}
	r.record("DeleteProgram", p)
}

// GetAttribLocation returns 0 for the position attribute and -1 otherwise.
func (r *Recorder) GetAttribLocation(p shapes.Program, name string) shapes.Attrib {
	r.record("GetAttribLocation", p, name)
	if name == shapes.VertexPositionAttrib {
		return 0
	}
	return -1
}

// EnableVertexAttribArray records a as enabled.
func (r *Recorder) EnableVertexAttribArray(a shapes.Attrib) {
	r.enabled[a] = true
	r.record("EnableVertexAttribArray", a)
}

// GetUniformLocation resolves name through Uniforms, or a default table when
// Uniforms is nil. Unknown names get -1.
func (r *Recorder) GetUniformLocation(p shapes.Program, name string) shapes.Uniform {
	r.record("GetUniformLocation", p, name)
	locs := r.Uniforms
	if locs == nil {
		locs = map[string]shapes.Uniform{
			shapes.ProjectionUniform: 0,
			shapes.ModelViewUniform:  1,
		}
	}
	u, ok := locs[name]
	if !ok {
		u = -1
	}
	r.named[name] = u
	return u
}

// CreateBuffer allocates an empty buffer.
func (r *Recorder) CreateBuffer() shapes.Buffer {
	b := shapes.Buffer(r.id())
	r.buffers[b] = nil
	r.record("CreateBuffer")
	return b
}

// BindBuffer sets the target of later BufferData calls.
func (r *Recorder) BindBuffer(b shapes.Buffer) {
	r.bound = b
	r.record("BindBuffer", b)
}

// BufferData copies data into the bound buffer.
func (r *Recorder) BufferData(data []float32) {
	r.buffers[r.bound] = append([]float32(nil), data...)
	r.record("BufferData", r.bound, len(data))
}

// DeleteBuffer drops b and its contents.
func (r *Recorder) DeleteBuffer(b shapes.Buffer) {
	delete(r.buffers, b)
	r.record("DeleteBuffer", b)
}

// VertexAttribPointer records the layout used by the next draw.
func (r *Recorder) VertexAttribPointer(a shapes.Attrib, size int, normalized bool, stride, offset int) {
	r.attribSize = size
	r.record("VertexAttribPointer", a, size, normalized, stride, offset)
}

// UniformMatrix4fv stores m under u.
func (r *Recorder) UniformMatrix4fv(u shapes.Uniform, m mgl32.Mat4) {
	r.uniforms[u] = m
	r.record("UniformMatrix4fv", u, m)
}

// Viewport records the viewport rectangle.
func (r *Recorder) Viewport(x, y, width, height int) {
	r.viewport = [4]int{x, y, width, height}
	r.record("Viewport", x, y, width, height)
}

// ClearColor records the clear color.
func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.clearColor = [4]float32{red, green, blue, alpha}
	r.record("ClearColor", red, green, blue, alpha)
}

// Clear records the call and its mask.
func (r *Recorder) Clear(mask shapes.ClearMask) {
	r.record("Clear", mask)
}

// Enable records c as enabled.
func (r *Recorder) Enable(c shapes.Capability) {
	r.caps[c] = true
	r.record("Enable", c)
}

// DrawArrays appends a DrawCall with the bound buffer and current uniforms.
func (r *Recorder) DrawArrays(mode shapes.Primitive, first, count int) {
	r.record("DrawArrays", mode, first, count)
	r.Draws = append(r.Draws, DrawCall{
		Mode:       mode,
		First:      first,
		Count:      count,
		Buffer:     r.bound,
		Size:       r.attribSize,
		Projection: r.uniformValue(shapes.ProjectionUniform),
		ModelView:  r.uniformValue(shapes.ModelViewUniform),
	})
}

func (r *Recorder) uniformValue(name string) mgl32.Mat4 {
	u, ok := r.named[name]
	if !ok || u < 0 {
		return mgl32.Mat4{}
	}
	return r.uniforms[u]
}

// Surface is a fixed-size shapes.Surface.
type Surface struct {
	Width, Height int
}

// Size returns Width and Height.
func (s Surface) Size() (int, int) { return s.Width, s.Height }

// Sources is an in-memory shapes.SourceProvider keyed by element id.
type Sources map[string]shapes.ShaderSource

// ShaderSource returns ErrNoSource for an id not in the map.
func (s Sources) ShaderSource(id string) (shapes.ShaderSource, error) {
	src, ok := s[id]
	if !ok {
		return shapes.ShaderSource{}, ErrNoSource
	}
	return src, nil
}

// ErrNoSource is returned by Sources for an unknown id.
var ErrNoSource = errors.New("no shader source with that id")

// Standard shader pair in GLSL ES 1.00.
const (
	VertexSource = `attribute vec3 aVertexPosition;

uniform mat4 uMVMatrix;
uniform mat4 uPMatrix;

void main(void) {
    gl_Position = uPMatrix * uMVMatrix * vec4(aVertexPosition, 1.0);
}`

	FragmentSource = `precision mediump float;

void main(void) {
    gl_FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}`
)

// ValidSources returns the standard shader pair under the default ids.
func ValidSources() Sources {
	return Sources{
		shapes.DefaultVertexShaderID: {
			ID:   shapes.DefaultVertexShaderID,
			Type: shapes.VertexTag,
			Text: VertexSource,
		},
		shapes.DefaultFragmentShaderID: {
			ID:   shapes.DefaultFragmentShaderID,
			Type: shapes.FragmentTag,
			Text: FragmentSource,
		},
	}
}
