package gfx

// RendererConfig describes the per-frame state of the render loop.
// Dispatch launches DispatchCount mesh workgroups starting at DispatchFirst;
// the mesh shader emits all geometry so no vertex input is bound.
type RendererConfig struct {
	ClearColor    [4]float32
	QuitKey       Key
	DispatchFirst uint32
	DispatchCount uint32
}

func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		ClearColor:    [4]float32{0.2, 0.3, 0.3, 1.0},
		QuitKey:       KeyEscape,
		DispatchFirst: 0,
		DispatchCount: 1,
	}
}
