package shapes_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shapes"
	"github.com/go-theft-auto/shapes/shapestest"
)

func TestShaderKindFromTag(t *testing.T) {
	tests := []struct {
		tag     string
		want    shapes.ShaderKind
		wantErr bool
	}{
		{tag: "x-shader/x-vertex", want: shapes.VertexShader},
		{tag: "x-shader/x-fragment", want: shapes.FragmentShader},
		{tag: "x-shader/x-geometry", wantErr: true},
		{tag: "text/javascript", wantErr: true},
		{tag: "x-vertex", wantErr: true},
		{tag: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := shapes.ShaderKindFromTag(tt.tag)
			if tt.wantErr {
				require.ErrorIs(t, err, shapes.ErrUnknownShaderKind)
				assert.Contains(t, err.Error(), tt.tag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadShader(t *testing.T) {
	gl := shapestest.NewRecorder()

	s, err := shapes.LoadShader(gl, shapes.ShaderSource{
		ID:   "shader-vs",
		Type: shapes.VertexTag,
		Text: shapestest.VertexSource,
	})
	require.NoError(t, err)
	assert.NotZero(t, s)
	assert.True(t, gl.ShaderCompiled(s))
	assert.Equal(t, 1, gl.Count("CompileShader"))
}

func TestLoadShaderCompileFailure(t *testing.T) {
	gl := shapestest.NewRecorder()
	gl.Compile = func(shapes.ShaderKind, string) string {
		return "ERROR: 0:3: 'gl_Posit' : undeclared identifier"
	}

	_, err := shapes.LoadShader(gl, shapes.ShaderSource{
		ID:   "shader-vs",
		Type: shapes.VertexTag,
		Text: "void main(void) { gl_Posit = vec4(0.0); }",
	})
	require.ErrorIs(t, err, shapes.ErrCompile)

	var se *shapes.ShaderError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "shader-vs", se.Source)
	assert.Contains(t, se.Log, "undeclared identifier")
	assert.Contains(t, err.Error(), "undeclared identifier")
	assert.Equal(t, 1, gl.Count("DeleteShader"), "failed shader should be deleted")
}

func TestLoadShaderUnknownKind(t *testing.T) {
	gl := shapestest.NewRecorder()

	_, err := shapes.LoadShader(gl, shapes.ShaderSource{
		ID:   "shader-gs",
		Type: "x-shader/x-geometry",
		Text: "void main(void) {}",
	})
	require.ErrorIs(t, err, shapes.ErrUnknownShaderKind)
	assert.Contains(t, err.Error(), "x-shader/x-geometry")
	assert.Zero(t, gl.Count("CreateShader"), "no shader object for an unknown kind")
}

func TestLinkProgram(t *testing.T) {
	gl := shapestest.NewRecorder()
	vs, err := shapes.LoadShader(gl, shapestest.ValidSources()[shapes.DefaultVertexShaderID])
	require.NoError(t, err)
	fs, err := shapes.LoadShader(gl, shapestest.ValidSources()[shapes.DefaultFragmentShaderID])
	require.NoError(t, err)

	sp, err := shapes.LinkProgram(gl, vs, fs)
	require.NoError(t, err)

	assert.Equal(t, sp.Handle, gl.CurrentProgram())
	assert.Equal(t, shapes.Attrib(0), sp.VertexPosition)
	assert.True(t, gl.AttribEnabled(sp.VertexPosition))
	assert.Equal(t, shapes.Uniform(0), sp.Projection)
	assert.Equal(t, shapes.Uniform(1), sp.ModelView)
	assert.True(t, gl.ShaderDeleted(vs))
	assert.True(t, gl.ShaderDeleted(fs))
}

func TestLinkProgramFailure(t *testing.T) {
	gl := shapestest.NewRecorder()
	gl.LinkLog = "error: varying vColor not written by vertex shader"
	vs, err := shapes.LoadShader(gl, shapestest.ValidSources()[shapes.DefaultVertexShaderID])
	require.NoError(t, err)
	fs, err := shapes.LoadShader(gl, shapestest.ValidSources()[shapes.DefaultFragmentShaderID])
	require.NoError(t, err)

	_, err = shapes.LinkProgram(gl, vs, fs)
	require.ErrorIs(t, err, shapes.ErrLink)
	assert.Contains(t, err.Error(), "vColor")
	assert.Zero(t, gl.Count("UseProgram"))
	assert.Equal(t, 1, gl.Count("DeleteProgram"))
}
