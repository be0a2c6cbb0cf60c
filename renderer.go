package shapes

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Default element ids of the shader scripts in the host page.
const (
	DefaultVertexShaderID   = "shader-vs"
	DefaultFragmentShaderID = "shader-fs"
)

// State is the lifecycle state of a Renderer.
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Renderer owns the device, the shader program, the uploaded meshes and the
// transform state of one drawing surface.
type Renderer struct {
	gl      GL
	surface Surface
	sources SourceProvider
	log     *slog.Logger

	vertexID   string
	fragmentID string
	clearColor [4]float32
	meshes     []Mesh

	state   State
	initErr error
	program *ShaderProgram
	buffers []VertexBuffer

	projection mgl32.Mat4
	modelView  mgl32.Mat4
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger for stage messages.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.log = l }
}

// WithClearColor sets the color the surface is cleared to.
func WithClearColor(red, green, blue, alpha float32) Option {
	return func(r *Renderer) { r.clearColor = [4]float32{red, green, blue, alpha} }
}

// WithShaderIDs sets the element ids of the vertex and fragment sources.
func WithShaderIDs(vertex, fragment string) Option {
	return func(r *Renderer) {
		r.vertexID = vertex
		r.fragmentID = fragment
	}
}

// WithMeshes replaces the built-in meshes. They are drawn in slice order.
// The meshes and their vertex data are copied; later edits by the caller
// have no effect.
func WithMeshes(meshes []Mesh) Option {
	return func(r *Renderer) {
		r.meshes = make([]Mesh, len(meshes))
		for i, m := range meshes {
			m.Vertices = slices.Clone(m.Vertices)
			r.meshes[i] = m
		}
	}
}

// New creates a renderer. Nothing touches the device until Init.
func New(gl GL, surface Surface, sources SourceProvider, opts ...Option) *Renderer {
	r := &Renderer{
		gl:         gl,
		surface:    surface,
		sources:    sources,
		log:        logger,
		vertexID:   DefaultVertexShaderID,
		fragmentID: DefaultFragmentShaderID,
		clearColor: [4]float32{0.3, 0.0, 0.5, 1.0},
		meshes:     DefaultMeshes(),
		modelView:  mgl32.Ident4(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// State returns the lifecycle state.
func (r *Renderer) State() State { return r.state }

// Program returns the linked program, or nil before a successful Init.
func (r *Renderer) Program() *ShaderProgram { return r.program }

// Buffers returns the uploaded vertex buffers in draw order.
func (r *Renderer) Buffers() []VertexBuffer { return r.buffers }

// Init compiles and links the shaders, uploads the meshes and sets the fixed
// render state. A failure is final: later calls return the same error.
func (r *Renderer) Init() error {
	switch r.state {
	case StateReady:
		return nil
	case StateFailed:
		return r.initErr
	}

	if err := r.init(); err != nil {
		r.release()
		r.state = StateFailed
		r.initErr = err
		return err
	}

	r.state = StateReady
	return nil
}

func (r *Renderer) init() error {
	width, height := r.surface.Size()
	r.log.Info("surface", "width", width, "height", height)

	fragment, err := loadShaderByID(r.gl, r.sources, r.fragmentID)
	if err != nil {
		return err
	}
	vertex, err := loadShaderByID(r.gl, r.sources, r.vertexID)
	if err != nil {
		r.gl.DeleteShader(fragment)
		return err
	}

	r.program, err = LinkProgram(r.gl, vertex, fragment)
	if err != nil {
		r.gl.DeleteShader(vertex)
		r.gl.DeleteShader(fragment)
		return err
	}
	r.log.Debug("program linked",
		"attrib", r.program.VertexPosition,
		"projection", r.program.Projection,
		"modelView", r.program.ModelView)

	r.buffers = make([]VertexBuffer, 0, len(r.meshes))
	for _, m := range r.meshes {
		buf, err := UploadMesh(r.gl, m)
		if err != nil {
			return fmt.Errorf("upload: %w", err)
		}
		r.log.Debug("buffer uploaded", "mesh", m.Name, "vertices", buf.VertexCount)
		r.buffers = append(r.buffers, buf)
	}

	c := r.clearColor
	r.gl.ClearColor(c[0], c[1], c[2], c[3])
	r.gl.Enable(DepthTest)

	return nil
}

// Draw clears the surface and draws every mesh once.
func (r *Renderer) Draw() error {
	if r.state != StateReady {
		return ErrNotReady
	}

	width, height := r.surface.Size()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptySurface, width, height)
	}

	r.gl.Viewport(0, 0, width, height)
	r.gl.Clear(ColorBufferBit | DepthBufferBit)

	r.projection = Projection(width, height)
	r.modelView = mgl32.Ident4()

	for i, m := range r.meshes {
		r.log.Info("drawing "+m.Name, "mesh", m.Name, "index", i)

		r.modelView = translate(r.modelView, m.Offset)

		buf := r.buffers[i]
		r.gl.BindBuffer(buf.Handle)
		r.gl.VertexAttribPointer(r.program.VertexPosition, buf.ComponentsPerVertex, false, 0, 0)
		r.setMatrixUniforms()
		r.gl.DrawArrays(m.Primitive, 0, buf.VertexCount)
	}

	r.log.Info("done")
	return nil
}

func (r *Renderer) setMatrixUniforms() {
	r.gl.UniformMatrix4fv(r.program.Projection, r.projection)
	r.gl.UniformMatrix4fv(r.program.ModelView, r.modelView)
}

// Delete releases the buffers and the program.
func (r *Renderer) Delete() {
	r.release()
	if r.state == StateReady {
		r.state = StateUninitialized
	}
}

// release frees whatever Init created so far.
func (r *Renderer) release() {
	for _, buf := range r.buffers {
		r.gl.DeleteBuffer(buf.Handle)
	}
	r.buffers = nil
	if r.program != nil {
		r.gl.DeleteProgram(r.program.Handle)
		r.program = nil
	}
}
