package platform

import "errors"

// ErrWindowCreation is returned when the windowing library cannot open a window
// with the requested context.
var ErrWindowCreation = errors.New("failed to create GLFW window")

type WindowConfig struct {
	Width        int
	Height       int
	Title        string
	ContextMajor int
	ContextMinor int
	CoreProfile  bool
}
