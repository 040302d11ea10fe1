package system

import (
	"github.com/lixenwraith/viewfit/component"
	"github.com/lixenwraith/viewfit/core"
	"github.com/lixenwraith/viewfit/engine"
	"github.com/lixenwraith/viewfit/event"
	"github.com/lixenwraith/viewfit/parameter"
)

// PrimaryStatus reports the outcome of scanning for the primary surface
type PrimaryStatus int

const (
	// PrimaryFound means exactly one surface carries the primary flag
	PrimaryFound PrimaryStatus = iota

	// PrimaryNone means no surface carries the primary flag
	PrimaryNone

	// PrimaryAmbiguous means two or more surfaces carry the primary flag
	PrimaryAmbiguous
)

// ViewportSyncSystem consumes sync signals, resolves each camera/surface
// association against current store state, and writes recomputed viewport
// rectangles back onto the cameras
//
// Every failure mode is a silent skip: missing entities, ambiguous primary
// flags, and degenerate surface sizes drop the affected signal or pair
// without touching the other signals in the tick
type ViewportSyncSystem struct {
	world *engine.World
}

// syncPair is one camera/surface association due for recomputation
type syncPair struct {
	camera  core.Entity
	surface core.Entity
}

// NewViewportSyncSystem creates the viewport resolver and applier
func NewViewportSyncSystem(world *engine.World) *ViewportSyncSystem {
	return &ViewportSyncSystem{world: world}
}

func (s *ViewportSyncSystem) Name() string {
	return "viewport-sync"
}

func (s *ViewportSyncSystem) Priority() int {
	return parameter.PriorityViewportSync
}

func (s *ViewportSyncSystem) Update() {
	for _, ev := range s.world.Signals.Consume() {
		for _, pair := range s.resolve(ev) {
			s.apply(pair)
		}
	}
}

// resolve maps one signal to the pairs needing recomputation, using the
// current state of all stores rather than a tick-start snapshot
func (s *ViewportSyncSystem) resolve(ev event.Event) []syncPair {
	switch ev.Type {
	case event.EventCameraChanged:
		if p, ok := ev.Payload.(*event.CameraChangedPayload); ok {
			return s.resolveCamera(p.Camera)
		}
	case event.EventSurfaceChanged:
		if p, ok := ev.Payload.(*event.SurfaceChangedPayload); ok {
			return s.resolveSurface(p.Surface)
		}
	}
	return nil
}

// resolveCamera finds the surface a changed camera renders to
// Produces exactly one pair, or none when the camera is gone, its target
// surface is gone, or the primary flag is not uniquely held
func (s *ViewportSyncSystem) resolveCamera(camera core.Entity) []syncPair {
	cam, ok := s.world.Cameras.Get(camera)
	if !ok || !s.world.Viewports.Has(camera) {
		return nil
	}

	switch cam.Target.Kind {
	case component.TargetPrimary:
		surface, status := s.primarySurface()
		if status != PrimaryFound {
			return nil
		}
		return []syncPair{{camera: camera, surface: surface}}

	case component.TargetSurface:
		if !s.world.Surfaces.Has(cam.Target.Surface) {
			return nil
		}
		return []syncPair{{camera: camera, surface: cam.Target.Surface}}
	}

	return nil
}

// resolveSurface finds every camera rendering to a changed surface:
// direct references, plus primary-target cameras while this surface is the
// sole holder of the primary flag
func (s *ViewportSyncSystem) resolveSurface(surface core.Entity) []syncPair {
	surf, ok := s.world.Surfaces.Get(surface)
	if !ok {
		return nil
	}

	servesPrimary := false
	if surf.Primary {
		if p, status := s.primarySurface(); status == PrimaryFound && p == surface {
			servesPrimary = true
		}
	}

	var pairs []syncPair
	for _, camera := range s.world.Cameras.Entities() {
		if !s.world.Viewports.Has(camera) {
			continue
		}
		cam, ok := s.world.Cameras.Get(camera)
		if !ok {
			continue
		}

		switch cam.Target.Kind {
		case component.TargetPrimary:
			if servesPrimary {
				pairs = append(pairs, syncPair{camera: camera, surface: surface})
			}
		case component.TargetSurface:
			if cam.Target.Surface == surface {
				pairs = append(pairs, syncPair{camera: camera, surface: surface})
			}
		}
	}

	return pairs
}

// primarySurface scans for the surface carrying the primary flag
// A second match aborts the scan: ambiguous is a distinct outcome from not
// found, so callers can skip without guessing
func (s *ViewportSyncSystem) primarySurface() (core.Entity, PrimaryStatus) {
	var found core.Entity
	status := PrimaryNone

	for _, e := range s.world.Surfaces.Entities() {
		surf, ok := s.world.Surfaces.Get(e)
		if !ok || !surf.Primary {
			continue
		}
		if status == PrimaryFound {
			return 0, PrimaryAmbiguous
		}
		found = e
		status = PrimaryFound
	}

	return found, status
}

// apply recomputes and writes the camera's viewport rectangle
// Pairs with non-positive surface dimensions or ratio are skipped so a
// degenerate rectangle is never written
func (s *ViewportSyncSystem) apply(p syncPair) {
	surf, ok := s.world.Surfaces.Get(p.surface)
	if !ok {
		return
	}
	vp, ok := s.world.Viewports.Get(p.camera)
	if !ok {
		return
	}
	cam, ok := s.world.Cameras.Get(p.camera)
	if !ok {
		return
	}

	if surf.Width <= 0 || surf.Height <= 0 || vp.AspectRatio <= 0 {
		return
	}

	x, y, w, h := core.Fit(float64(surf.Width), float64(surf.Height), vp.AspectRatio)

	// Truncate toward zero to address the physical pixel grid
	cam.Viewport = core.Area{
		X:      int(x),
		Y:      int(y),
		Width:  int(w),
		Height: int(h),
	}
	s.world.Cameras.Set(p.camera, cam)
}
