package gfx

// Key names the keyboard keys the render loop can react to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyQ
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyQ:
		return "q"
	default:
		return "unknown"
	}
}

// ParseKey maps a configured key name to a Key.
func ParseKey(name string) Key {
	switch name {
	case "escape", "esc":
		return KeyEscape
	case "q":
		return KeyQ
	default:
		return KeyUnknown
	}
}

// Window is the windowing/context collaborator driving the render loop.
// All methods must be called from the thread that owns the GL context.
type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	PollEvents()
	SwapBuffers()
	KeyPressed(key Key) bool
	SetFramebufferSizeCallback(fn func(width, height int))
}
