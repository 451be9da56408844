package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/kjkrol/gomesh/internal/app"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. None are required; the bool result
// reports that help was printed and the program should exit cleanly.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("meshshader", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
meshshader - draws a procedurally generated triangle with a mesh shader.

Usage:
  meshshader [options]

Press Escape to close the window.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := app.DefaultConfig()
	assetsFlag := flagSet.String("assets", "", "Directory with manifest.yaml and shader sources. Empty uses the embedded set.")
	widthFlag := flagSet.Int("width", def.Width, "Initial window width in pixels.")
	heightFlag := flagSet.Int("height", def.Height, "Initial window height in pixels.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	if *widthFlag <= 0 || *heightFlag <= 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid window size %dx%d: width and height must be positive", *widthFlag, *heightFlag)}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	conf, err := app.NewConfig(app.Config{
		Width:     *widthFlag,
		Height:    *heightFlag,
		AssetsDir: *assetsFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return conf, false, nil
}
