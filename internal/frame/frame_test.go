package frame_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shapes/internal/frame"
)

// Two rows, bottom row red, top row blue, as glReadPixels returns them.
var glPixels = []byte{
	255, 0, 0, 255, 255, 0, 0, 255,
	0, 0, 255, 255, 0, 0, 255, 255,
}

func TestFromGLFlipsRows(t *testing.T) {
	img, err := frame.FromGL(glPixels, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 0), "top row comes from the last GL row")
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(1, 1))
}

func TestFromGLSizeMismatch(t *testing.T) {
	_, err := frame.FromGL(glPixels, 3, 2)
	assert.ErrorIs(t, err, frame.ErrSize)

	_, err = frame.FromGL(nil, 0, 0)
	assert.ErrorIs(t, err, frame.ErrSize)
}

func TestSavePNG(t *testing.T) {
	img, err := frame.FromGL(glPixels, 2, 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, frame.SavePNG(path, img))

	_, err = os.Stat(path)
	require.NoError(t, err)

	back, err := imgio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), back.Bounds())
}
