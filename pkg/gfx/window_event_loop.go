package gfx

import (
	"log/slog"
	"runtime"
)

// RenderLoop repeatedly submits a single mesh dispatch until the window
// reports it should close.
type RenderLoop struct {
	window  Window
	driver  Driver
	program ProgramHandle
	conf    RendererConfig
	logger  *slog.Logger
}

// NewRenderLoop refuses to build a loop around the null program so that no
// dispatch can ever run without a successfully linked program bound.
func NewRenderLoop(window Window, driver Driver, program ProgramHandle, conf RendererConfig, logger *slog.Logger) (*RenderLoop, error) {
	if !program.Valid() {
		return nil, ErrNullProgram
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RenderLoop{
		window:  window,
		driver:  driver,
		program: program,
		conf:    conf,
		logger:  logger,
	}, nil
}

// Run drives frames until the close request is observed at the top of an
// iteration and returns the number of presented frames. A close request made
// while processing input still lets the current frame finish and present.
func (l *RenderLoop) Run() int {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	frames := 0
	for !l.window.ShouldClose() {
		l.processInput()
		l.renderFrame()

		l.window.SwapBuffers()
		l.window.PollEvents()
		frames++
	}
	l.logger.Debug("render loop terminated", "frames", frames)
	return frames
}

func (l *RenderLoop) processInput() {
	if l.conf.QuitKey == KeyUnknown {
		return
	}
	if l.window.KeyPressed(l.conf.QuitKey) {
		l.window.SetShouldClose(true)
	}
}

func (l *RenderLoop) renderFrame() {
	c := l.conf.ClearColor
	l.driver.ClearColor(c[0], c[1], c[2], c[3])
	l.driver.Clear()
	l.driver.UseProgram(uint32(l.program))
	l.driver.DrawMeshTasks(l.conf.DispatchFirst, l.conf.DispatchCount)
}
