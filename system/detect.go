package system

import (
	"github.com/lixenwraith/viewfit/core"
	"github.com/lixenwraith/viewfit/engine"
	"github.com/lixenwraith/viewfit/event"
	"github.com/lixenwraith/viewfit/parameter"
)

// CameraDetectSystem emits one camera sync signal per fixed viewport mutated
// since the previous tick. Mutations collapse: any number of Set calls
// between two ticks yields a single signal
type CameraDetectSystem struct {
	world *engine.World
	seen  map[core.Entity]uint64 // Last observed store version per entity
}

// NewCameraDetectSystem creates the fixed-viewport change detector
func NewCameraDetectSystem(world *engine.World) *CameraDetectSystem {
	return &CameraDetectSystem{
		world: world,
		seen:  make(map[core.Entity]uint64),
	}
}

func (s *CameraDetectSystem) Name() string {
	return "camera-detect"
}

func (s *CameraDetectSystem) Priority() int {
	return parameter.PriorityCameraDetect
}

func (s *CameraDetectSystem) Update() {
	viewports := s.world.Viewports

	// Prune snapshot entries for entities that lost the component
	for e := range s.seen {
		if !viewports.Has(e) {
			delete(s.seen, e)
		}
	}

	for _, e := range viewports.Entities() {
		v, ok := viewports.Version(e)
		if !ok {
			continue
		}
		if s.seen[e] == v {
			continue
		}
		s.seen[e] = v
		s.world.PushSignal(event.EventCameraChanged, &event.CameraChangedPayload{Camera: e})
	}
}

// SurfaceDetectSystem translates host display notifications into surface
// sync signals. One signal per notification: redundant notifications for the
// same surface within a tick are passed through, not deduplicated
type SurfaceDetectSystem struct {
	world *engine.World
}

// NewSurfaceDetectSystem creates the surface notification detector
func NewSurfaceDetectSystem(world *engine.World) *SurfaceDetectSystem {
	return &SurfaceDetectSystem{world: world}
}

func (s *SurfaceDetectSystem) Name() string {
	return "surface-detect"
}

func (s *SurfaceDetectSystem) Priority() int {
	return parameter.PrioritySurfaceDetect
}

func (s *SurfaceDetectSystem) Update() {
	for _, ev := range s.world.Notifications.Consume() {
		switch ev.Type {
		case event.EventSurfaceResized:
			if p, ok := ev.Payload.(*event.SurfaceResizedPayload); ok {
				s.world.PushSignal(event.EventSurfaceChanged, &event.SurfaceChangedPayload{Surface: p.Surface})
			}
		case event.EventScaleFactorChanged:
			if p, ok := ev.Payload.(*event.ScaleFactorChangedPayload); ok {
				s.world.PushSignal(event.EventSurfaceChanged, &event.SurfaceChangedPayload{Surface: p.Surface})
			}
		}
	}
}
