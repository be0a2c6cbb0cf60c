package document_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shapes"
	"github.com/go-theft-auto/shapes/assets"
	"github.com/go-theft-auto/shapes/document"
	"github.com/go-theft-auto/shapes/shapestest"
)

const page = `<!DOCTYPE html>
<html><head>
<script id="shader-vs" type="x-shader/x-vertex">
    void main(void) { gl_Position = vec4(0.0); }
</script>
<script id="shader-gs" type="x-shader/x-geometry">
    void main(void) {}
</script>
<script id="shader-vs" type="x-shader/x-fragment">shadowed</script>
</head><body>
<canvas id="wide" width="640" height="360"></canvas>
<canvas id="bare"></canvas>
<canvas id="broken" width="-2"></canvas>
<div id="not-a-script">text</div>
</body></html>`

func TestShaderSource(t *testing.T) {
	doc, err := document.ParseString(page)
	require.NoError(t, err)

	src, err := doc.ShaderSource("shader-vs")
	require.NoError(t, err)
	assert.Equal(t, "shader-vs", src.ID)
	assert.Equal(t, shapes.VertexTag, src.Type, "first element with an id wins")
	assert.Equal(t, "void main(void) { gl_Position = vec4(0.0); }", src.Text)
}

func TestShaderSourceErrors(t *testing.T) {
	doc, err := document.ParseString(page)
	require.NoError(t, err)

	_, err = doc.ShaderSource("missing")
	assert.ErrorIs(t, err, document.ErrNotFound)

	_, err = doc.ShaderSource("not-a-script")
	assert.ErrorIs(t, err, document.ErrNotScript)

	// Unknown tags are passed through for the loader to reject.
	src, err := doc.ShaderSource("shader-gs")
	require.NoError(t, err)
	_, err = shapes.ShaderKindFromTag(src.Type)
	assert.ErrorIs(t, err, shapes.ErrUnknownShaderKind)
}

func TestCanvasSize(t *testing.T) {
	doc, err := document.ParseString(page)
	require.NoError(t, err)

	w, h, err := doc.CanvasSize("wide")
	require.NoError(t, err)
	assert.Equal(t, 640, w)
	assert.Equal(t, 360, h)

	w, h, err = doc.CanvasSize("bare")
	require.NoError(t, err)
	assert.Equal(t, document.DefaultCanvasWidth, w)
	assert.Equal(t, document.DefaultCanvasHeight, h)

	_, _, err = doc.CanvasSize("broken")
	assert.ErrorIs(t, err, document.ErrCanvasSize)

	_, _, err = doc.CanvasSize("shader-vs")
	assert.ErrorIs(t, err, document.ErrNotCanvas)

	_, _, err = doc.CanvasSize("missing")
	assert.ErrorIs(t, err, document.ErrNotFound)
}

func TestEmbeddedPage(t *testing.T) {
	doc, err := document.Parse(bytes.NewReader(assets.Page))
	require.NoError(t, err)

	w, h, err := doc.CanvasSize(assets.Canvas)
	require.NoError(t, err)
	assert.Equal(t, 500, w)
	assert.Equal(t, 500, h)

	for _, id := range []string{shapes.DefaultVertexShaderID, shapes.DefaultFragmentShaderID} {
		src, err := doc.ShaderSource(id)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(src.Text, "#version 410 core"), "%s must start with #version", id)
	}
}

func TestEmbeddedPageRenders(t *testing.T) {
	doc, err := document.Parse(bytes.NewReader(assets.Page))
	require.NoError(t, err)

	gl := shapestest.NewRecorder()
	r := shapes.New(gl, shapestest.Surface{Width: 500, Height: 500}, doc)
	require.NoError(t, r.Init())
	require.NoError(t, r.Draw())
	assert.Len(t, gl.Draws, 3)
}
