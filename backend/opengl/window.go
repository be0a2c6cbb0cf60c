package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window with a current OpenGL 4.1 core context.
// It implements shapes.Surface. GLFW must run on the main thread; lock it
// with runtime.LockOSThread before OpenWindow.
type Window struct {
	window *glfw.Window
}

// OpenWindow initializes GLFW and OpenGL and opens a window of the given
// size. The window is not resizable; the drawing is sized once.
func OpenWindow(title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DepthBits, 24)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return &Window{window: window}, nil
}

// Size returns the framebuffer size in pixels, which differs from the
// window size on high-DPI displays.
func (w *Window) Size() (width, height int) {
	return w.window.GetFramebufferSize()
}

// SwapBuffers presents the drawn frame.
func (w *Window) SwapBuffers() { w.window.SwapBuffers() }

// Wait blocks processing window events until the user closes the window.
func (w *Window) Wait() {
	for !w.window.ShouldClose() {
		glfw.WaitEvents()
	}
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.window.Destroy()
	glfw.Terminate()
}
