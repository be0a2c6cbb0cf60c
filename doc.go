/*
Package shapes draws a triangle, a square and a custom shape once through a
minimal GL device, with a fixed perspective projection and a model-view
matrix that is translated from shape to shape.

# Overview

A Renderer is the render context. It owns a GL device, a Surface that
reports its pixel size, and a SourceProvider that hands out shader text by
element id. Nothing is global; every stage gets the device explicitly.

	doc, err := document.Parse(page)          // <script type="x-shader/...">
	if err != nil {
	    return err
	}
	r := shapes.New(device, window, doc)
	if err := r.Init(); err != nil {          // compile, link, upload
	    return err                            // ErrUnknownShaderKind, ErrCompile, ErrLink
	}
	return r.Draw()                           // three draw calls

# Lifecycle

Init moves the renderer from StateUninitialized to StateReady. A failed Init
moves it to StateFailed; the error is kept and returned by later Init calls
and nothing is drawn.

# Transforms

The projection is a 45° perspective with near 0.1 and far 100. The model-view
starts at identity for each Draw and every mesh offset is composed onto it,
so each shape is placed relative to the one before:

	triangle      (-1.5,  1.0, -7.0)
	square        ( 3.0,  0.0,  0.0)   -> ( 1.5,  1.0, -7.0)
	custom shape  (-1.5, -2.5,  0.0)   -> ( 0.0, -1.5, -7.0)

# Backends

backend/opengl implements GL with go-gl on a GLFW window; backend/webgl
implements it with syscall/js on a canvas. shapestest.Recorder implements it
in memory for tests.
*/
package shapes
