package gfxtest

import "github.com/kjkrol/gomesh/pkg/gfx"

// Window is a scripted gfx.Window. Frames are counted on SwapBuffers.
type Window struct {
	// PressAt maps a key to the 1-based iteration at which it reads as pressed.
	PressAt map[gfx.Key]int
	// CloseAfter requests close after that many presented frames; 0 disables it.
	CloseAfter int

	Presented   int
	Polls       int
	CloseChecks int
	// Trace receives "SwapBuffers" and "PollEvents" entries. Point it at a
	// Driver's Calls to interleave both traces.
	Trace *[]string

	shouldClose bool
	iteration   int
	onResize    func(width, height int)
}

func NewWindow() *Window {
	return &Window{PressAt: map[gfx.Key]int{}}
}

func (w *Window) ShouldClose() bool {
	w.CloseChecks++
	if !w.shouldClose {
		w.iteration++
	}
	return w.shouldClose
}

func (w *Window) SetShouldClose(value bool) { w.shouldClose = value }

func (w *Window) PollEvents() {
	w.Polls++
	w.trace("PollEvents")
}

func (w *Window) SwapBuffers() {
	w.Presented++
	w.trace("SwapBuffers")
	if w.CloseAfter > 0 && w.Presented >= w.CloseAfter {
		w.shouldClose = true
	}
}

func (w *Window) KeyPressed(key gfx.Key) bool {
	at, ok := w.PressAt[key]
	return ok && w.iteration >= at
}

func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) { w.onResize = fn }

// Resize simulates a framebuffer resize notification.
func (w *Window) Resize(width, height int) {
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

func (w *Window) trace(name string) {
	if w.Trace != nil {
		*w.Trace = append(*w.Trace, name)
	}
}

var _ gfx.Window = (*Window)(nil)
