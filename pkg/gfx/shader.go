package gfx

import (
	"fmt"
	"log/slog"
)

// Stage identifies the pipeline stage a shader object is compiled for.
type Stage int

const (
	StageMesh Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageMesh:
		return "mesh"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// ParseStage maps a stage name used in asset manifests to a Stage.
func ParseStage(name string) (Stage, error) {
	switch name {
	case "mesh":
		return StageMesh, nil
	case "fragment":
		return StageFragment, nil
	default:
		return 0, fmt.Errorf("unknown shader stage %q", name)
	}
}

// ShaderSource is read-only shader text tagged with its stage.
type ShaderSource struct {
	Stage Stage
	Text  string
}

// ShaderHandle references a compiled shader object. The zero value means no shader.
type ShaderHandle uint32

// ProgramHandle references a linked program. The zero value means no program.
type ProgramHandle uint32

func (h ShaderHandle) Valid() bool  { return h != 0 }
func (h ProgramHandle) Valid() bool { return h != 0 }

// ShaderBuilder turns shader sources into compiled shaders and linked programs.
type ShaderBuilder struct {
	driver Driver
	logger *slog.Logger
}

func NewShaderBuilder(driver Driver, logger *slog.Logger) *ShaderBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShaderBuilder{driver: driver, logger: logger}
}

// Compile creates a shader object for src.Stage and compiles src.Text into it.
// On any failure the shader object is released and the zero handle is returned.
func (b *ShaderBuilder) Compile(src ShaderSource) (ShaderHandle, error) {
	if src.Text == "" {
		return 0, fmt.Errorf("%s shader: %w", src.Stage, ErrEmptySource)
	}
	shader := b.driver.CreateShader(src.Stage)
	if shader == 0 {
		return 0, fmt.Errorf("%s shader: %w", src.Stage, ErrShaderCreation)
	}
	b.driver.ShaderSource(shader, src.Text)
	b.driver.CompileShader(shader)

	if b.driver.GetShaderiv(shader, ParamCompileStatus) != StatusFalse {
		return ShaderHandle(shader), nil
	}

	var log string
	if logLength := b.driver.GetShaderiv(shader, ParamInfoLogLength); logLength > 0 {
		log = b.driver.GetShaderInfoLog(shader, logLength)
	}
	b.logger.Error("could not compile shader", "stage", src.Stage.String(), "log", log)
	b.driver.DeleteShader(shader)
	return 0, &CompileError{Stage: src.Stage, Log: log}
}

// Link builds a program from one mesh-stage and one fragment-stage shader.
// The shaders stay attached and alive for the lifetime of the program.
func (b *ShaderBuilder) Link(mesh, fragment ShaderHandle) (ProgramHandle, error) {
	if !mesh.Valid() || !fragment.Valid() {
		return 0, ErrNullShader
	}
	program := b.driver.CreateProgram()
	if program == 0 {
		return 0, ErrProgramCreation
	}
	b.driver.AttachShader(program, uint32(mesh))
	b.driver.AttachShader(program, uint32(fragment))
	b.driver.LinkProgram(program)

	if b.driver.GetProgramiv(program, ParamLinkStatus) == StatusTrue {
		return ProgramHandle(program), nil
	}

	var log string
	if logLength := b.driver.GetProgramiv(program, ParamInfoLogLength); logLength > 0 {
		log = b.driver.GetProgramInfoLog(program, logLength)
	}
	b.logger.Error("could not link program", "log", log)
	b.driver.DeleteProgram(program)
	return 0, &LinkError{Log: log}
}
