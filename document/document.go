// Package document reads shader sources and canvas dimensions from an HTML
// page, the way a browser host exposes them to a WebGL script.
//
// Shader sources are <script> elements identified by id and tagged with a
// type of x-shader/x-vertex or x-shader/x-fragment:
//
//	<canvas id="very-gl" width="500" height="500"></canvas>
//	<script id="shader-vs" type="x-shader/x-vertex"> ... </script>
package document

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-theft-auto/shapes"
)

// Canvas size used by browsers when width or height is absent.
const (
	DefaultCanvasWidth  = 300
	DefaultCanvasHeight = 150
)

var (
	// ErrNotFound is returned when no element has the requested id.
	ErrNotFound = errors.New("element not found")

	// ErrNotScript is returned when a shader id names a non-script element.
	ErrNotScript = errors.New("element is not a script")

	// ErrNotCanvas is returned when a canvas id names a non-canvas element.
	ErrNotCanvas = errors.New("element is not a canvas")

	// ErrCanvasSize is returned for a width or height that is not a
	// positive integer.
	ErrCanvasSize = errors.New("invalid canvas size")
)

// Element is an element of the page that carries an id.
type Element struct {
	ID    string
	Tag   atom.Atom
	Attrs map[string]string
	Text  string // concatenated text content
}

// Document indexes a parsed page by element id.
type Document struct {
	byID map[string]*Element
}

var _ shapes.SourceProvider = (*Document)(nil)

// Parse reads an HTML page. The first element with a given id wins, as with
// getElementById.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	d := &Document{byID: make(map[string]*Element)}
	d.index(root)
	return d, nil
}

// ParseString is Parse over a string.
func ParseString(page string) (*Document, error) {
	return Parse(strings.NewReader(page))
}

func (d *Document) index(n *html.Node) {
	if n.Type == html.ElementNode {
		attrs := make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			attrs[a.Key] = a.Val
		}
		if id := attrs["id"]; id != "" {
			if _, dup := d.byID[id]; !dup {
				d.byID[id] = &Element{
					ID:    id,
					Tag:   n.DataAtom,
					Attrs: attrs,
					Text:  textContent(n),
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.index(c)
	}
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Element returns the element with the given id.
func (d *Document) Element(id string) (*Element, bool) {
	el, ok := d.byID[id]
	return el, ok
}

// ShaderSource returns the trimmed text and type tag of a script element.
// The tag is not checked here; shapes.LoadShader rejects unknown kinds.
func (d *Document) ShaderSource(id string) (shapes.ShaderSource, error) {
	el, ok := d.byID[id]
	if !ok {
		return shapes.ShaderSource{}, fmt.Errorf("%w: #%s", ErrNotFound, id)
	}
	if el.Tag != atom.Script {
		return shapes.ShaderSource{}, fmt.Errorf("%w: #%s is <%s>", ErrNotScript, id, el.Tag)
	}
	return shapes.ShaderSource{
		ID:   id,
		Type: el.Attrs["type"],
		Text: strings.TrimSpace(el.Text),
	}, nil
}

// CanvasSize returns the pixel size declared on a canvas element.
func (d *Document) CanvasSize(id string) (width, height int, err error) {
	el, ok := d.byID[id]
	if !ok {
		return 0, 0, fmt.Errorf("%w: #%s", ErrNotFound, id)
	}
	if el.Tag != atom.Canvas {
		return 0, 0, fmt.Errorf("%w: #%s is <%s>", ErrNotCanvas, id, el.Tag)
	}

	width, err = dimension(el, "width", DefaultCanvasWidth)
	if err != nil {
		return 0, 0, err
	}
	height, err = dimension(el, "height", DefaultCanvasHeight)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func dimension(el *Element, attr string, def int) (int, error) {
	v, ok := el.Attrs[attr]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: #%s %s=%q", ErrCanvasSize, el.ID, attr, v)
	}
	return n, nil
}
