//go:build js && wasm

package webgl

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/go-theft-auto/shapes"
	"github.com/go-theft-auto/shapes/document"
)

// DOM reads shader sources from <script> elements of the live document.
type DOM struct {
	doc js.Value
}

var _ shapes.SourceProvider = DOM{}

// Document returns a provider over the global document.
func Document() DOM {
	return DOM{doc: js.Global().Get("document")}
}

func (d DOM) ShaderSource(id string) (shapes.ShaderSource, error) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() {
		return shapes.ShaderSource{}, fmt.Errorf("%w: #%s", document.ErrNotFound, id)
	}
	if tag := el.Get("tagName").String(); !strings.EqualFold(tag, "script") {
		return shapes.ShaderSource{}, fmt.Errorf("%w: #%s is <%s>", document.ErrNotScript, id, strings.ToLower(tag))
	}
	return shapes.ShaderSource{
		ID:   id,
		Type: el.Get("type").String(),
		Text: strings.TrimSpace(el.Get("textContent").String()),
	}, nil
}

// Canvas is a <canvas> element used as the drawing surface.
type Canvas struct {
	el js.Value
}

var _ shapes.Surface = Canvas{}

// FindCanvas looks up a canvas element by id.
func FindCanvas(id string) (Canvas, error) {
	el := js.Global().Get("document").Call("getElementById", id)
	if el.IsNull() {
		return Canvas{}, fmt.Errorf("%w: #%s", document.ErrNotFound, id)
	}
	if !strings.EqualFold(el.Get("tagName").String(), "canvas") {
		return Canvas{}, fmt.Errorf("%w: #%s is %s", document.ErrNotCanvas, id, describe(el))
	}
	return Canvas{el: el}, nil
}

// Size returns the canvas drawing-buffer size.
func (c Canvas) Size() (width, height int) {
	return c.el.Get("width").Int(), c.el.Get("height").Int()
}

// Context returns the canvas WebGL context.
func (c Canvas) Context() (js.Value, error) {
	gl := c.el.Call("getContext", "webgl")
	if gl.IsNull() {
		return js.Null(), fmt.Errorf("%w on #%s", ErrNoContext, c.el.Get("id").String())
	}
	return gl, nil
}
