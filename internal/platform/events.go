//go:build !js

package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjkrol/gomesh/pkg/gfx"
)

func convertKey(key gfx.Key) (glfw.Key, bool) {
	switch key {
	case gfx.KeyEscape:
		return glfw.KeyEscape, true
	case gfx.KeyQ:
		return glfw.KeyQ, true
	default:
		return glfw.KeyUnknown, false
	}
}
