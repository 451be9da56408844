package app

import (
	"fmt"

	"github.com/kjkrol/gomesh/pkg/gfx"
)

// Config holds the application's runtime configuration.
type Config struct {
	Width        int
	Height       int
	Title        string
	ContextMajor int
	ContextMinor int
	QuitKey      string
	ClearColor   [4]float32
	AssetsDir    string
	LogLevel     string
	LogFormat    string
}

// DefaultConfig matches the window and context the embedded shaders target.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		Title:        "Hello Meshshader",
		ContextMajor: 4,
		ContextMinor: 6,
		QuitKey:      "escape",
		ClearColor:   [4]float32{0.2, 0.3, 0.3, 1.0},
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// NewConfig fills zero fields of c from DefaultConfig and validates the result.
// The context version is filled as a pair: a zero ContextMajor selects the
// default major and minor, whatever ContextMinor holds. Callers that must
// reject explicit zeros, like the CLI, do so before calling NewConfig.
func NewConfig(c Config) (*Config, error) {
	def := DefaultConfig()
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.ContextMajor == 0 {
		c.ContextMajor = def.ContextMajor
		c.ContextMinor = def.ContextMinor
	}
	if c.QuitKey == "" {
		c.QuitKey = def.QuitKey
	}
	if c.ClearColor == ([4]float32{}) {
		c.ClearColor = def.ClearColor
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}

	if c.Width < 0 || c.Height < 0 {
		return nil, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.ContextMajor < 4 || (c.ContextMajor == 4 && c.ContextMinor < 5) {
		return nil, fmt.Errorf("mesh shaders need an OpenGL 4.5+ context, got %d.%d", c.ContextMajor, c.ContextMinor)
	}
	if gfx.ParseKey(c.QuitKey) == gfx.KeyUnknown {
		return nil, fmt.Errorf("unsupported quit key %q", c.QuitKey)
	}
	return &c, nil
}

func (c *Config) rendererConfig() gfx.RendererConfig {
	conf := gfx.DefaultRendererConfig()
	conf.ClearColor = c.ClearColor
	conf.QuitKey = gfx.ParseKey(c.QuitKey)
	return conf
}
