package shapes_test

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-theft-auto/shapes"
	"github.com/go-theft-auto/shapes/assets"
	"github.com/go-theft-auto/shapes/document"
	"github.com/go-theft-auto/shapes/shapestest"
)

func drawPage(gl shapes.GL, page []byte) error {
	doc, err := document.Parse(bytes.NewReader(page))
	if err != nil {
		return err
	}
	w, h, err := doc.CanvasSize(assets.Canvas)
	if err != nil {
		return err
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := shapes.New(gl, shapestest.Surface{Width: w, Height: h}, doc, shapes.WithLogger(quiet))
	defer r.Delete()
	if err := r.Init(); err != nil {
		return err
	}
	return r.Draw()
}

func Example() {
	gl := shapestest.NewRecorder()
	if err := drawPage(gl, assets.Page); err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range gl.Draws {
		fmt.Println(d.Mode, d.Count)
	}
	// Output:
	// triangles 3
	// triangle-strip 4
	// triangle-strip 4
}
