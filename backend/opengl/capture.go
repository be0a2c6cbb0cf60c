package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shapes/internal/frame"
)

// Capture reads back the current framebuffer of the given size.
// Call it after drawing and before swapping buffers.
func Capture(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return frame.FromGL(nil, width, height)
	}
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return frame.FromGL(pixels, width, height)
}
