//go:build !js

package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjkrol/gomesh/pkg/gfx"
)

// Window wraps a GLFW window whose GL context is current on the calling thread.
type Window struct {
	win *glfw.Window
}

// NewWindow initializes GLFW, creates the window with the requested context
// and makes that context current. GLFW is terminated again on failure.
func NewWindow(conf WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init error: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, conf.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, conf.ContextMinor)
	if conf.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}
	win.MakeContextCurrent()
	return &Window{win: win}, nil
}

// Terminate releases the window and all remaining GLFW resources.
func Terminate() {
	glfw.Terminate()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.win.SetShouldClose(value)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) KeyPressed(key gfx.Key) bool {
	glfwKey, ok := convertKey(key)
	if !ok {
		return false
	}
	return w.win.GetKey(glfwKey) == glfw.Press
}

func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) {
	if fn == nil {
		w.win.SetFramebufferSizeCallback(nil)
		return
	}
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

var _ gfx.Window = (*Window)(nil)
