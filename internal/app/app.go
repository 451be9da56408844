package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/kjkrol/gomesh/internal/assets"
	"github.com/kjkrol/gomesh/pkg/gfx"
)

// StartupError reports that the GPU program could not be built. The render
// loop is never entered after one.
type StartupError struct {
	Step string
	Err  error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup: %s: %v", e.Step, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// App owns the shader and program handles for the lifetime of the render loop.
type App struct {
	logger   *slog.Logger
	viewport *gfx.Viewport
	mesh     gfx.ShaderHandle
	fragment gfx.ShaderHandle
	program  gfx.ProgramHandle
	loop     *gfx.RenderLoop
}

// Shaders opens the configured asset directory, or the embedded shader set
// when none is configured.
func (c *Config) Shaders() fs.FS {
	if c.AssetsDir == "" {
		return assets.Embedded()
	}
	return os.DirFS(c.AssetsDir)
}

// Startup sizes the viewport, builds the mesh program from shaders and
// prepares the render loop. The window's context must be current and the
// driver bindings loaded.
func Startup(conf *Config, window gfx.Window, driver gfx.Driver, shaders fs.FS, logger *slog.Logger) (*App, error) {
	a := &App{logger: logger}

	a.viewport = gfx.NewViewport(driver, logger)
	a.viewport.Resize(conf.Width, conf.Height)
	a.viewport.Attach(window)
	size := a.viewport.Size()
	logger.Debug("initial viewport", "width", size.X, "height", size.Y)

	bundle, err := assets.Load(shaders)
	if err != nil {
		return nil, &StartupError{Step: "load shaders", Err: err}
	}
	logger.Debug("shader manifest loaded", "program", bundle.Manifest.Program, "entries", len(bundle.Manifest.Shaders))

	meshSrc, err := bundle.Source(gfx.StageMesh)
	if err != nil {
		return nil, &StartupError{Step: "load shaders", Err: err}
	}
	fragmentSrc, err := bundle.Source(gfx.StageFragment)
	if err != nil {
		return nil, &StartupError{Step: "load shaders", Err: err}
	}

	builder := gfx.NewShaderBuilder(driver, logger)
	if a.mesh, err = builder.Compile(meshSrc); err != nil {
		return nil, &StartupError{Step: "create mesh shader", Err: err}
	}
	if a.fragment, err = builder.Compile(fragmentSrc); err != nil {
		return nil, &StartupError{Step: "create fragment shader", Err: err}
	}
	if a.program, err = builder.Link(a.mesh, a.fragment); err != nil {
		return nil, &StartupError{Step: "create program", Err: err}
	}

	if a.loop, err = gfx.NewRenderLoop(window, driver, a.program, conf.rendererConfig(), logger); err != nil {
		return nil, &StartupError{Step: "create render loop", Err: err}
	}
	logger.Info("mesh program ready", "program", uint32(a.program))
	return a, nil
}

// Run blocks in the render loop until the window closes and returns the
// number of presented frames.
func (a *App) Run() int {
	frames := a.loop.Run()
	a.logger.Info("window closed", "frames", frames)
	return frames
}
