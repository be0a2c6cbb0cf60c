//go:build js && wasm

// Command shapes-wasm draws the shapes into the page's canvas with WebGL.
//
// Build and serve next to index.html:
//
//	GOOS=js GOARCH=wasm go build -o shapes.wasm ./cmd/shapes-wasm/
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" .
//
// Errors surface in the browser console.
package main

import (
	"fmt"
	"os"

	"github.com/go-theft-auto/shapes"
	"github.com/go-theft-auto/shapes/backend/webgl"
)

const canvasID = "very-gl"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	canvas, err := webgl.FindCanvas(canvasID)
	if err != nil {
		return err
	}
	ctx, err := canvas.Context()
	if err != nil {
		return err
	}
	device, err := webgl.NewDevice(ctx)
	if err != nil {
		return err
	}

	renderer := shapes.New(device, canvas, webgl.Document())
	if err := renderer.Init(); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	return renderer.Draw()
}
