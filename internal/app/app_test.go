package app

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/gomesh/internal/assets"
	"github.com/kjkrol/gomesh/pkg/gfx"
	"github.com/kjkrol/gomesh/pkg/gfx/gfxtest"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	conf, err := NewConfig(Config{})
	require.NoError(t, err)
	return conf
}

func TestStartup_RunsUntilQuitKey(t *testing.T) {
	var logs bytes.Buffer
	d := gfxtest.NewDriver()
	w := gfxtest.NewWindow()
	w.PressAt[gfx.KeyEscape] = 3

	a, err := Startup(testConfig(t), w, d, assets.Embedded(), NewLogger("info", "text", &logs))
	require.NoError(t, err)

	assert.Equal(t, [][4]int32{{0, 0, 800, 600}}, d.Viewports)
	assert.Zero(t, d.Count("DrawMeshTasks"))

	assert.Equal(t, 3, a.Run())
	assert.Equal(t, 3, d.Count("DrawMeshTasks"))
	assert.Contains(t, logs.String(), "frames=3")
}

func TestStartup_ResizeUpdatesViewport(t *testing.T) {
	d := gfxtest.NewDriver()
	w := gfxtest.NewWindow()

	_, err := Startup(testConfig(t), w, d, assets.Embedded(), NewLogger("error", "text", &bytes.Buffer{}))
	require.NoError(t, err)

	w.Resize(1920, 1080)
	assert.Equal(t, [4]int32{0, 0, 1920, 1080}, d.Viewports[len(d.Viewports)-1])
}

func TestStartup_LogsInitialViewport(t *testing.T) {
	var logs bytes.Buffer
	conf, err := NewConfig(Config{Width: 640, Height: 480})
	require.NoError(t, err)

	_, err = Startup(conf, gfxtest.NewWindow(), gfxtest.NewDriver(), assets.Embedded(), NewLogger("debug", "text", &logs))
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "initial viewport width=640 height=480")
}

func TestNewConfig_ContextVersionFilledAsPair(t *testing.T) {
	conf, err := NewConfig(Config{ContextMinor: 5})
	require.NoError(t, err)
	assert.Equal(t, 4, conf.ContextMajor)
	assert.Equal(t, 6, conf.ContextMinor)
}

func TestStartup_CompileFailureNeverDispatches(t *testing.T) {
	for _, stage := range []gfx.Stage{gfx.StageMesh, gfx.StageFragment} {
		t.Run(stage.String(), func(t *testing.T) {
			var logs bytes.Buffer
			d := gfxtest.NewDriver()
			d.CompileLogs[stage] = "0:3: error"
			w := gfxtest.NewWindow()

			a, err := Startup(testConfig(t), w, d, assets.Embedded(), NewLogger("info", "text", &logs))

			assert.Nil(t, a)
			var startupErr *StartupError
			require.ErrorAs(t, err, &startupErr)
			assert.Equal(t, "create "+stage.String()+" shader", startupErr.Step)
			var compileErr *gfx.CompileError
			assert.ErrorAs(t, err, &compileErr)
			assert.Zero(t, d.Count("UseProgram"))
			assert.Zero(t, d.Count("DrawMeshTasks"))
			assert.Contains(t, logs.String(), "could not compile shader")
		})
	}
}

func TestStartup_LinkFailure(t *testing.T) {
	d := gfxtest.NewDriver()
	status := gfx.StatusFalse
	d.LinkStatus = &status
	d.LinkLog = "link failed"

	a, err := Startup(testConfig(t), gfxtest.NewWindow(), d, assets.Embedded(), NewLogger("error", "text", &bytes.Buffer{}))

	assert.Nil(t, a)
	var linkErr *gfx.LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, "link failed", linkErr.Log)
	assert.Zero(t, d.Count("DrawMeshTasks"))
}

func TestStartup_MissingStage(t *testing.T) {
	shaders := fstest.MapFS{
		"manifest.yaml": {Data: []byte("schema: 1\nshaders:\n  - {name: m, stage: mesh, path: m.glsl}\n")},
		"m.glsl":        {Data: []byte("mesh")},
	}

	_, err := Startup(testConfig(t), gfxtest.NewWindow(), gfxtest.NewDriver(), shaders, NewLogger("error", "text", &bytes.Buffer{}))

	assert.ErrorIs(t, err, assets.ErrMissingStage)
}

func TestNewConfig(t *testing.T) {
	conf := testConfig(t)
	assert.Equal(t, 800, conf.Width)
	assert.Equal(t, 600, conf.Height)
	assert.Equal(t, "Hello Meshshader", conf.Title)
	assert.Equal(t, 4, conf.ContextMajor)
	assert.Equal(t, 6, conf.ContextMinor)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1.0}, conf.ClearColor)

	_, err := NewConfig(Config{Width: -1})
	assert.Error(t, err)
	_, err = NewConfig(Config{ContextMajor: 3, ContextMinor: 3})
	assert.Error(t, err)
	_, err = NewConfig(Config{QuitKey: "f13"})
	assert.Error(t, err)
}

func TestNewLogger_JSON(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger("debug", "json", &out)
	logger.Debug("hello", "k", 1)
	assert.Contains(t, out.String(), `"msg":"hello"`)
}
