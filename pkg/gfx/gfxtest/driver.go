// Package gfxtest provides in-memory stand-ins for the graphics driver and
// window used by the gfx package.
package gfxtest

import (
	"fmt"
	"strings"

	"github.com/kjkrol/gomesh/pkg/gfx"
)

// Driver records every call it receives and lets tests script object
// creation, compile status and link status.
type Driver struct {
	Calls []string

	// FailCreateShader makes CreateShader return 0 for the listed stages.
	FailCreateShader map[gfx.Stage]bool
	// FailCreateProgram makes CreateProgram return 0.
	FailCreateProgram bool
	// CompileLogs maps a stage to the diagnostic of a failing compilation.
	// A present key fails compilation for that stage, even with an empty log.
	CompileLogs map[gfx.Stage]string
	// LinkStatus is returned for ParamLinkStatus; nil means StatusTrue.
	LinkStatus *int32
	LinkLog    string

	Viewports   [][4]int32
	ClearColors [][4]float32
	Dispatches  [][2]uint32
	Bound       []uint32

	next     uint32
	shaders  map[uint32]gfx.Stage
	programs map[uint32]bool
	deleted  map[uint32]bool
}

func NewDriver() *Driver {
	return &Driver{
		FailCreateShader: map[gfx.Stage]bool{},
		CompileLogs:      map[gfx.Stage]string{},
		shaders:          map[uint32]gfx.Stage{},
		programs:         map[uint32]bool{},
		deleted:          map[uint32]bool{},
	}
}

func (d *Driver) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

// Count returns how many recorded calls were made to the method name.
func (d *Driver) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c == name || strings.HasPrefix(c, name+" ") {
			n++
		}
	}
	return n
}

// Live reports whether obj was created and not yet deleted.
func (d *Driver) Live(obj uint32) bool {
	_, shader := d.shaders[obj]
	return (shader || d.programs[obj]) && !d.deleted[obj]
}

func (d *Driver) CreateShader(stage gfx.Stage) uint32 {
	d.record("CreateShader %s", stage)
	if d.FailCreateShader[stage] {
		return 0
	}
	d.next++
	d.shaders[d.next] = stage
	return d.next
}

func (d *Driver) ShaderSource(shader uint32, _ string) { d.record("ShaderSource %d", shader) }
func (d *Driver) CompileShader(shader uint32) { d.record("CompileShader %d", shader) }

func (d *Driver) GetShaderiv(shader uint32, pname gfx.Param) int32 {
	d.record("GetShaderiv %d %d", shader, pname)
	log, failing := d.CompileLogs[d.shaders[shader]]
	switch pname {
	case gfx.ParamCompileStatus:
		if failing {
			return gfx.StatusFalse
		}
		return gfx.StatusTrue
	case gfx.ParamInfoLogLength:
		if failing && log != "" {
			return int32(len(log) + 1)
		}
	}
	return 0
}

func (d *Driver) GetShaderInfoLog(shader uint32, _ int32) string {
	d.record("GetShaderInfoLog %d", shader)
	return d.CompileLogs[d.shaders[shader]]
}

func (d *Driver) DeleteShader(shader uint32) {
	d.record("DeleteShader %d", shader)
	d.deleted[shader] = true
}

func (d *Driver) CreateProgram() uint32 {
	d.record("CreateProgram")
	if d.FailCreateProgram {
		return 0
	}
	d.next++
	d.programs[d.next] = true
	return d.next
}

func (d *Driver) AttachShader(program, shader uint32) {
	d.record("AttachShader %d %d", program, shader)
}

func (d *Driver) LinkProgram(program uint32) { d.record("LinkProgram %d", program) }

func (d *Driver) GetProgramiv(program uint32, pname gfx.Param) int32 {
	d.record("GetProgramiv %d %d", program, pname)
	switch pname {
	case gfx.ParamLinkStatus:
		if d.LinkStatus == nil {
			return gfx.StatusTrue
		}
		return *d.LinkStatus
	case gfx.ParamInfoLogLength:
		if d.LinkLog != "" {
			return int32(len(d.LinkLog) + 1)
		}
	}
	return 0
}

func (d *Driver) GetProgramInfoLog(program uint32, _ int32) string {
	d.record("GetProgramInfoLog %d", program)
	return d.LinkLog
}

func (d *Driver) DeleteProgram(program uint32) {
	d.record("DeleteProgram %d", program)
	d.deleted[program] = true
}

func (d *Driver) UseProgram(program uint32) {
	d.record("UseProgram %d", program)
	d.Bound = append(d.Bound, program)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.record("Viewport %d %d %d %d", x, y, width, height)
	d.Viewports = append(d.Viewports, [4]int32{x, y, width, height})
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.record("ClearColor")
	d.ClearColors = append(d.ClearColors, [4]float32{r, g, b, a})
}

func (d *Driver) Clear() { d.record("Clear") }

func (d *Driver) DrawMeshTasks(first, count uint32) {
	d.record("DrawMeshTasks %d %d", first, count)
	d.Dispatches = append(d.Dispatches, [2]uint32{first, count})
}

var _ gfx.Driver = (*Driver)(nil)
