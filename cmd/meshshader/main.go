package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/kjkrol/gomesh/internal/app"
	"github.com/kjkrol/gomesh/internal/cli"
	"github.com/kjkrol/gomesh/internal/platform"
	"github.com/kjkrol/gomesh/internal/renderer"
)

const (
	exitPlatformFailure = -1
	exitStartupFailure  = 1
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error returned by run to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitStartupFailure
}

func run(outW, logW io.Writer, args []string) error {
	conf, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := app.NewLogger(conf.LogLevel, conf.LogFormat, logW)

	window, err := platform.NewWindow(platform.WindowConfig{
		Width:        conf.Width,
		Height:       conf.Height,
		Title:        conf.Title,
		ContextMajor: conf.ContextMajor,
		ContextMinor: conf.ContextMinor,
		CoreProfile:  true,
	})
	if err != nil {
		return &cli.ExitError{Code: exitPlatformFailure, Message: err.Error()}
	}
	defer platform.Terminate()

	driver, err := renderer.Load()
	if err != nil {
		return &cli.ExitError{Code: exitPlatformFailure, Message: "failed to initialize GL bindings: " + err.Error()}
	}
	logger.Info("context ready", "gl", renderer.Version())

	a, err := app.Startup(conf, window, driver, conf.Shaders(), logger)
	if err != nil {
		return err
	}
	a.Run()
	return nil
}
