// Package assets embeds the page the desktop command renders.
package assets

import _ "embed"

// Page is an HTML page with a canvas and a GLSL 4.10 core shader pair.
//
//go:embed index.html
var Page []byte

// Canvas is the id of the canvas element in Page.
const Canvas = "very-gl"
