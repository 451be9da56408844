//go:build !js

package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/kjkrol/gomesh/pkg/gfx"
)

const meshShaderExtension = "GL_NV_mesh_shader"

// Driver implements gfx.Driver on top of OpenGL 4.6 core with GL_NV_mesh_shader.
// It must only be used from the thread that owns the current context.
type Driver struct{}

// Load resolves the GL entry points for the current context. It fails when the
// bindings cannot be loaded or the context lacks mesh shader support.
func Load() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init error: %w", err)
	}
	if !hasExtension(meshShaderExtension) {
		return nil, fmt.Errorf("%s not supported by %s", meshShaderExtension, Version())
	}
	return &Driver{}, nil
}

// Version reports the GL version and renderer strings of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION)) + " / " + gl.GoStr(gl.GetString(gl.RENDERER))
}

func hasExtension(name string) bool {
	var count int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &count)
	for i := int32(0); i < count; i++ {
		if gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))) == name {
			return true
		}
	}
	return false
}

func shaderType(stage gfx.Stage) uint32 {
	switch stage {
	case gfx.StageMesh:
		return gl.MESH_SHADER_NV
	case gfx.StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		return 0
	}
}

func param(pname gfx.Param) uint32 {
	switch pname {
	case gfx.ParamCompileStatus:
		return gl.COMPILE_STATUS
	case gfx.ParamLinkStatus:
		return gl.LINK_STATUS
	default:
		return gl.INFO_LOG_LENGTH
	}
}

func (*Driver) CreateShader(stage gfx.Stage) uint32 {
	xtype := shaderType(stage)
	if xtype == 0 {
		return 0
	}
	return gl.CreateShader(xtype)
}

func (*Driver) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (*Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*Driver) GetShaderiv(shader uint32, pname gfx.Param) int32 {
	var value int32
	gl.GetShaderiv(shader, param(pname), &value)
	return value
}

func (*Driver) GetShaderInfoLog(shader uint32, length int32) string {
	log := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*Driver) GetProgramiv(program uint32, pname gfx.Param) int32 {
	var value int32
	gl.GetProgramiv(program, param(pname), &value)
	return value
}

func (*Driver) GetProgramInfoLog(program uint32, length int32) string {
	log := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*Driver) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (*Driver) DrawMeshTasks(first, count uint32) {
	gl.DrawMeshTasksNV(first, count)
}

var _ gfx.Driver = (*Driver)(nil)
