package event

import (
	"github.com/lixenwraith/viewfit/core"
)

// SurfaceResizedPayload carries the new physical size of a surface
// The host updates the surface component before pushing this notification;
// the size here is informational for consumers that do not read the store
type SurfaceResizedPayload struct {
	Surface core.Entity
	Width   int
	Height  int
}

// ScaleFactorChangedPayload carries a surface's new scale factor
type ScaleFactorChangedPayload struct {
	Surface     core.Entity
	ScaleFactor float64
}

// CameraChangedPayload identifies a camera whose fixed viewport was mutated
// since the detector's previous observation
type CameraChangedPayload struct {
	Camera core.Entity
}

// SurfaceChangedPayload identifies a surface whose size or scale changed
// One signal per host notification; redundant signals for the same surface
// are not deduplicated
type SurfaceChangedPayload struct {
	Surface core.Entity
}
