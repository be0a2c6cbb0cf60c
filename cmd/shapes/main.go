// Command shapes opens a window and draws a triangle, a square and a custom
// shape once, using the shader scripts of an HTML page.
//
// Usage:
//
//	go run ./cmd/shapes/                          # embedded page, 500x500
//	go run ./cmd/shapes/ -page my.html -v         # shaders from a file
//	go run ./cmd/shapes/ -screenshot shapes.png   # draw, save and exit
//	go run ./cmd/shapes/ -config shapes.yaml
//
// The window stays open until closed; nothing is redrawn.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/shapes"
	"github.com/go-theft-auto/shapes/assets"
	"github.com/go-theft-auto/shapes/backend/opengl"
	"github.com/go-theft-auto/shapes/document"
	"github.com/go-theft-auto/shapes/internal/config"
	"github.com/go-theft-auto/shapes/internal/frame"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.FromArgs("shapes", args)
	if err != nil {
		return err
	}
	shapes.SetVerbose(cfg.Verbose)

	doc, err := loadPage(cfg.Page)
	if err != nil {
		return err
	}

	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width, height, err = doc.CanvasSize(cfg.Canvas)
		if err != nil {
			return fmt.Errorf("canvas: %w", err)
		}
	}

	window, err := opengl.OpenWindow(cfg.Title, width, height)
	if err != nil {
		return err
	}
	defer window.Close()

	device := opengl.NewDevice()
	defer device.Delete()

	c := cfg.ClearColor
	renderer := shapes.New(device, window, doc,
		shapes.WithShaderIDs(cfg.VertexShader, cfg.FragmentShader),
		shapes.WithClearColor(c[0], c[1], c[2], c[3]),
	)
	if err := renderer.Init(); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer renderer.Delete()

	if err := renderer.Draw(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	if cfg.Screenshot != "" {
		w, h := window.Size()
		img, err := opengl.Capture(w, h)
		if err != nil {
			return fmt.Errorf("capture: %w", err)
		}
		if err := frame.SavePNG(cfg.Screenshot, img); err != nil {
			return err
		}
		slog.Info("screenshot saved", "path", cfg.Screenshot)
		return nil
	}

	window.SwapBuffers()
	window.Wait()
	return nil
}

func loadPage(path string) (*document.Document, error) {
	var r io.Reader = bytes.NewReader(assets.Page)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open page: %w", err)
		}
		defer f.Close()
		r = f
	}
	return document.Parse(r)
}
