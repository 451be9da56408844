package gfx

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySource     = errors.New("empty shader source")
	ErrShaderCreation  = errors.New("driver could not create shader object")
	ErrProgramCreation = errors.New("driver could not create program object")
	ErrNullShader      = errors.New("null shader handle")
	ErrNullProgram     = errors.New("null program handle")
)

// CompileError carries the driver's compile diagnostic for one stage.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("could not compile %s shader", e.Stage)
	}
	return fmt.Sprintf("could not compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the driver's link diagnostic.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return "could not link program"
	}
	return "could not link program: " + e.Log
}
