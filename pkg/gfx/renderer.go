package gfx

// Param selects an integer parameter queried from a shader or program object.
type Param int

const (
	ParamCompileStatus Param = iota
	ParamLinkStatus
	ParamInfoLogLength
)

// Status encodings reported by the driver. Compile status is treated as a
// boolean (non-zero is success) while link status must equal StatusTrue.
const (
	StatusFalse int32 = 0
	StatusTrue  int32 = 1
)

// Driver is the subset of the graphics API the mesh pipeline talks to.
// Object names are driver-owned; zero is never a valid object.
type Driver interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname Param) int32
	GetShaderInfoLog(shader uint32, length int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname Param) int32
	GetProgramInfoLog(program uint32, length int32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	DrawMeshTasks(first, count uint32)
}
