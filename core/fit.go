package core

// Fit computes the largest rectangle with the given aspect ratio
// (width/height) inscribed in a surface of the given dimensions, centered on
// the constrained axis. All inputs must be positive; callers guard zero-sized
// surfaces upstream.
//
// Equal ratios take the letterbox branch and yield the full surface exactly.
func Fit(surfaceW, surfaceH, aspectRatio float64) (x, y, w, h float64) {
	w = surfaceW
	h = surfaceH

	if surfaceW/surfaceH > aspectRatio {
		// Surface wider than target: pillarbox, height fills
		w = h * aspectRatio
		x = surfaceW/2 - w/2
	} else {
		// Surface taller than target: letterbox, width fills
		h = w / aspectRatio
		y = surfaceH/2 - h/2
	}

	return x, y, w, h
}
