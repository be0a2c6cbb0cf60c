// Package frame turns read-back framebuffer pixels into images.
package frame

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// ErrSize is returned when the pixel slice length is not width*height*4.
var ErrSize = errors.New("pixel data does not match frame size")

// FromGL wraps tightly packed RGBA rows read with glReadPixels. GL rows run
// bottom to top, so the result is flipped to image order.
func FromGL(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrSize, len(pixels), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return transform.FlipV(img), nil
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
