package component

import (
	"github.com/lixenwraith/viewfit/core"
)

// TargetKind selects how a camera resolves its output surface
type TargetKind int

const (
	// TargetPrimary renders to whichever surface carries the primary flag
	TargetPrimary TargetKind = iota

	// TargetSurface renders to a specific surface entity
	TargetSurface
)

// RenderTarget references the surface a camera renders to
type RenderTarget struct {
	Kind    TargetKind
	Surface core.Entity // Valid only when Kind == TargetSurface
}

// CameraComponent binds a camera to its output surface and holds the
// computed viewport rectangle
// Viewport is written exclusively by the viewport sync system
type CameraComponent struct {
	Target   RenderTarget
	Viewport core.Area
}
