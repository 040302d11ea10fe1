package component

// SurfaceComponent describes a resizable display surface
type SurfaceComponent struct {
	Width  int // Physical width in pixels
	Height int // Physical height in pixels

	// ScaleFactor maps logical to physical pixels (1.0 on standard displays)
	ScaleFactor float64

	// Primary marks the default render target
	// At most one surface should carry this flag; cameras targeting the
	// primary surface are skipped while the flag is ambiguous
	Primary bool
}
