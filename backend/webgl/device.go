//go:build js && wasm

// Package webgl provides a WebGL device, a canvas surface and a DOM shader
// source provider for running the shapes renderer in a browser.
package webgl

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/shapes"
)

// ErrNoContext is returned when the canvas cannot provide a WebGL context.
var ErrNoContext = errors.New("webgl context unavailable")

type glConsts struct {
	arrayBuffer    int
	staticDraw     int
	floatType      int
	triangles      int
	triangleStrip  int
	colorBufferBit int
	depthBufferBit int
	depthTest      int
	compileStatus  int
	linkStatus     int
	vertexShader   int
	fragmentShader int
}

// Device implements shapes.GL on a WebGL rendering context.
// JavaScript objects are kept in handle tables so the renderer only sees
// integer handles.
type Device struct {
	gl     js.Value
	consts glConsts

	objects  map[uint32]js.Value
	uniforms map[shapes.Uniform]js.Value
	nextID   uint32
}

var _ shapes.GL = (*Device)(nil)

// NewDevice wraps a WebGL rendering context.
func NewDevice(gl js.Value) (*Device, error) {
	if gl.IsUndefined() || gl.IsNull() {
		return nil, ErrNoContext
	}
	d := &Device{
		gl:       gl,
		objects:  make(map[uint32]js.Value),
		uniforms: make(map[shapes.Uniform]js.Value),
	}
	d.initConsts()
	return d, nil
}

func (d *Device) initConsts() {
	d.consts = glConsts{
		arrayBuffer:    d.gl.Get("ARRAY_BUFFER").Int(),
		staticDraw:     d.gl.Get("STATIC_DRAW").Int(),
		floatType:      d.gl.Get("FLOAT").Int(),
		triangles:      d.gl.Get("TRIANGLES").Int(),
		triangleStrip:  d.gl.Get("TRIANGLE_STRIP").Int(),
		colorBufferBit: d.gl.Get("COLOR_BUFFER_BIT").Int(),
		depthBufferBit: d.gl.Get("DEPTH_BUFFER_BIT").Int(),
		depthTest:      d.gl.Get("DEPTH_TEST").Int(),
		compileStatus:  d.gl.Get("COMPILE_STATUS").Int(),
		linkStatus:     d.gl.Get("LINK_STATUS").Int(),
		vertexShader:   d.gl.Get("VERTEX_SHADER").Int(),
		fragmentShader: d.gl.Get("FRAGMENT_SHADER").Int(),
	}
}

func (d *Device) put(v js.Value) uint32 {
	if v.IsUndefined() || v.IsNull() {
		return 0
	}
	d.nextID++
	d.objects[d.nextID] = v
	return d.nextID
}

func (d *Device) get(id uint32) js.Value {
	if v, ok := d.objects[id]; ok {
		return v
	}
	return js.Null()
}

func (d *Device) release(id uint32) js.Value {
	v := d.get(id)
	delete(d.objects, id)
	return v
}

// CreateShader returns 0 if the context could not create the shader.
func (d *Device) CreateShader(kind shapes.ShaderKind) shapes.Shader {
	typ := d.consts.vertexShader
	if kind == shapes.FragmentShader {
		typ = d.consts.fragmentShader
	}
	return shapes.Shader(d.put(d.gl.Call("createShader", typ)))
}

// ShaderSource calls gl.shaderSource.
func (d *Device) ShaderSource(s shapes.Shader, source string) {
	d.gl.Call("shaderSource", d.get(uint32(s)), source)
}

// CompileShader calls gl.compileShader.
func (d *Device) CompileShader(s shapes.Shader) {
	d.gl.Call("compileShader", d.get(uint32(s)))
}

// ShaderCompiled queries COMPILE_STATUS.
func (d *Device) ShaderCompiled(s shapes.Shader) bool {
	return d.gl.Call("getShaderParameter", d.get(uint32(s)), d.consts.compileStatus).Truthy()
}

// ShaderInfoLog returns the compile log, or "" when there is none.
func (d *Device) ShaderInfoLog(s shapes.Shader) string {
	log := d.gl.Call("getShaderInfoLog", d.get(uint32(s)))
	if log.IsNull() {
		return ""
	}
	return log.String()
}

// DeleteShader deletes s and drops its handle.
func (d *Device) DeleteShader(s shapes.Shader) {
	d.gl.Call("deleteShader", d.release(uint32(s)))
}

// CreateProgram calls gl.createProgram.
func (d *Device) CreateProgram() shapes.Program {
	return shapes.Program(d.put(d.gl.Call("createProgram")))
}

// AttachShader calls gl.attachShader.
func (d *Device) AttachShader(p shapes.Program, s shapes.Shader) {
	d.gl.Call("attachShader", d.get(uint32(p)), d.get(uint32(s)))
}

// LinkProgram calls gl.linkProgram.
func (d *Device) LinkProgram(p shapes.Program) {
	d.gl.Call("linkProgram", d.get(uint32(p)))
}

// ProgramLinked queries LINK_STATUS.
func (d *Device) ProgramLinked(p shapes.Program) bool {
	return d.gl.Call("getProgramParameter", d.get(uint32(p)), d.consts.linkStatus).Truthy()
}

// ProgramInfoLog returns the link log, or "" when there is none.
func (d *Device) ProgramInfoLog(p shapes.Program) string {
	log := d.gl.Call("getProgramInfoLog", d.get(uint32(p)))
	if log.IsNull() {
		return ""
	}
	return log.String()
}

// UseProgram calls gl.useProgram.
func (d *Device) UseProgram(p shapes.Program) {
	d.gl.Call("useProgram", d.get(uint32(p)))
}

// DeleteProgram deletes p and drops its handle.
func (d *Device) DeleteProgram(p shapes.Program) {
	d.gl.Call("deleteProgram", d.release(uint32(p)))
}

// GetAttribLocation calls gl.getAttribLocation.
func (d *Device) GetAttribLocation(p shapes.Program, name string) shapes.Attrib {
	return shapes.Attrib(d.gl.Call("getAttribLocation", d.get(uint32(p)), name).Int())
}

// EnableVertexAttribArray is a no-op for negative locations.
func (d *Device) EnableVertexAttribArray(a shapes.Attrib) {
	if a < 0 {
		return
	}
	d.gl.Call("enableVertexAttribArray", int(a))
}

// GetUniformLocation returns -1 when the program has no such active uniform.
func (d *Device) GetUniformLocation(p shapes.Program, name string) shapes.Uniform {
	loc := d.gl.Call("getUniformLocation", d.get(uint32(p)), name)
	if loc.IsNull() {
		return -1
	}
	u := shapes.Uniform(len(d.uniforms))
	d.uniforms[u] = loc
	return u
}

// CreateBuffer calls gl.createBuffer.
func (d *Device) CreateBuffer() shapes.Buffer {
	return shapes.Buffer(d.put(d.gl.Call("createBuffer")))
}

// BindBuffer binds b as the ARRAY_BUFFER.
func (d *Device) BindBuffer(b shapes.Buffer) {
	d.gl.Call("bindBuffer", d.consts.arrayBuffer, d.get(uint32(b)))
}

// BufferData copies data into a Float32Array and uploads it.
func (d *Device) BufferData(data []float32) {
	d.gl.Call("bufferData", d.consts.arrayBuffer, float32Array(data), d.consts.staticDraw)
}

// DeleteBuffer deletes b and drops its handle.
func (d *Device) DeleteBuffer(b shapes.Buffer) {
	d.gl.Call("deleteBuffer", d.release(uint32(b)))
}

// VertexAttribPointer is a no-op for negative locations.
func (d *Device) VertexAttribPointer(a shapes.Attrib, size int, normalized bool, stride, offset int) {
	if a < 0 {
		return
	}
	d.gl.Call("vertexAttribPointer", int(a), size, d.consts.floatType, normalized, stride, offset)
}

// UniformMatrix4fv ignores locations it did not hand out.
func (d *Device) UniformMatrix4fv(u shapes.Uniform, m mgl32.Mat4) {
	loc, ok := d.uniforms[u]
	if !ok {
		return
	}
	d.gl.Call("uniformMatrix4fv", loc, false, float32Array(m[:]))
}

// Viewport calls gl.viewport.
func (d *Device) Viewport(x, y, width, height int) {
	d.gl.Call("viewport", x, y, width, height)
}

// ClearColor calls gl.clearColor.
func (d *Device) ClearColor(r, g, b, a float32) {
	d.gl.Call("clearColor", r, g, b, a)
}

// Clear translates the mask into WebGL buffer bits.
func (d *Device) Clear(mask shapes.ClearMask) {
	bits := 0
	if mask&shapes.ColorBufferBit != 0 {
		bits |= d.consts.colorBufferBit
	}
	if mask&shapes.DepthBufferBit != 0 {
		bits |= d.consts.depthBufferBit
	}
	d.gl.Call("clear", bits)
}

// Enable only knows DepthTest.
func (d *Device) Enable(c shapes.Capability) {
	switch c {
	case shapes.DepthTest:
		d.gl.Call("enable", d.consts.depthTest)
	}
}

// DrawArrays translates the primitive into a WebGL mode.
func (d *Device) DrawArrays(mode shapes.Primitive, first, count int) {
	m := d.consts.triangles
	if mode == shapes.TriangleStrip {
		m = d.consts.triangleStrip
	}
	d.gl.Call("drawArrays", m, first, count)
}

func float32Array(data []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}

func describe(v js.Value) string {
	if v.IsNull() || v.IsUndefined() {
		return v.Type().String()
	}
	return fmt.Sprint(v.Get("tagName"))
}
