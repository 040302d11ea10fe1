package component

// FixedViewportComponent requests a viewport with a fixed aspect ratio
// Attach to a camera entity to keep its viewport letterboxed or pillarboxed
// within the available surface space
type FixedViewportComponent struct {
	// AspectRatio is width/height, must be positive
	AspectRatio float64
}
