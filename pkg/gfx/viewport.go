package gfx

import (
	"log/slog"

	"github.com/kjkrol/gokg/pkg/geom"
)

// Viewport keeps the GPU viewport in sync with the framebuffer size.
type Viewport struct {
	driver Driver
	logger *slog.Logger
	size   geom.Vec[int]
}

func NewViewport(driver Driver, logger *slog.Logger) *Viewport {
	if logger == nil {
		logger = slog.Default()
	}
	return &Viewport{driver: driver, logger: logger, size: geom.NewVec(0, 0)}
}

// Resize maps the viewport to (0, 0, width, height) for every reported size,
// including the 0x0 framebuffer of a minimized window.
func (v *Viewport) Resize(width, height int) {
	prev := v.size
	v.size = geom.NewVec(width, height)
	v.driver.Viewport(0, 0, int32(width), int32(height))
	v.logger.Debug("viewport resized",
		"from_width", prev.X, "from_height", prev.Y,
		"width", v.size.X, "height", v.size.Y)
}

func (v *Viewport) Size() geom.Vec[int] {
	return v.size
}

// Attach subscribes the viewport to framebuffer resize notifications of w.
func (v *Viewport) Attach(w Window) {
	w.SetFramebufferSizeCallback(v.Resize)
}
