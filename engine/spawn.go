package engine

import (
	"github.com/lixenwraith/viewfit/component"
	"github.com/lixenwraith/viewfit/core"
)

// SpawnCamera creates a camera entity with a fixed-ratio viewport
// The camera detector observes the fresh viewport component on the next
// tick, so the initial fit happens without an explicit signal
func (w *World) SpawnCamera(aspectRatio float64, target component.RenderTarget) core.Entity {
	e := w.CreateEntity()
	w.Cameras.Set(e, component.CameraComponent{Target: target})
	w.Viewports.Set(e, component.FixedViewportComponent{AspectRatio: aspectRatio})
	return e
}

// SpawnSurface creates a surface entity with the given physical geometry
func (w *World) SpawnSurface(width, height int, scaleFactor float64, primary bool) core.Entity {
	e := w.CreateEntity()
	w.Surfaces.Set(e, component.SurfaceComponent{
		Width:       width,
		Height:      height,
		ScaleFactor: scaleFactor,
		Primary:     primary,
	})
	return e
}
