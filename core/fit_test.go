package core

import (
	"math"
	"testing"
)

// TestFitMatchingRatio verifies an equal surface/target ratio yields the
// full surface with zero offsets
func TestFitMatchingRatio(t *testing.T) {
	x, y, w, h := Fit(1920, 1080, 16.0/9.0)

	if x != 0 || y != 0 {
		t.Errorf("Expected zero offsets, got (%v, %v)", x, y)
	}
	if w != 1920 || h != 1080 {
		t.Errorf("Expected full surface 1920x1080, got %vx%v", w, h)
	}
}

// TestFitLetterbox verifies a target wider than the surface fills the width
// and centers vertically
func TestFitLetterbox(t *testing.T) {
	x, y, w, h := Fit(1000, 1000, 2.0)

	if x != 0 {
		t.Errorf("Expected x=0, got %v", x)
	}
	if y != 250 {
		t.Errorf("Expected y=250, got %v", y)
	}
	if w != 1000 || h != 500 {
		t.Errorf("Expected 1000x500, got %vx%v", w, h)
	}
}

// TestFitPillarbox verifies a target narrower than the surface fills the
// height and centers horizontally
func TestFitPillarbox(t *testing.T) {
	x, y, w, h := Fit(1000, 500, 1.0)

	if y != 0 {
		t.Errorf("Expected y=0, got %v", y)
	}
	if x != 250 {
		t.Errorf("Expected x=250, got %v", x)
	}
	if w != 500 || h != 500 {
		t.Errorf("Expected 500x500, got %vx%v", w, h)
	}
}

// TestFitProperties verifies containment, centering, and ratio preservation
// across a spread of surface sizes and ratios
func TestFitProperties(t *testing.T) {
	surfaces := [][2]float64{
		{1920, 1080}, {1080, 1920}, {800, 600}, {600, 800},
		{1000, 1000}, {333, 777}, {2560, 1080}, {1, 1}, {7, 3},
	}
	ratios := []float64{16.0 / 9.0, 4.0 / 3.0, 1.0, 2.0, 0.5, 21.0 / 9.0, 0.1}

	const eps = 1e-9

	for _, s := range surfaces {
		for _, ratio := range ratios {
			sw, sh := s[0], s[1]
			x, y, w, h := Fit(sw, sh, ratio)

			if x < 0 || y < 0 {
				t.Errorf("Fit(%v, %v, %v): negative offset (%v, %v)", sw, sh, ratio, x, y)
			}
			if x+w > sw+eps || y+h > sh+eps {
				t.Errorf("Fit(%v, %v, %v): rectangle exceeds surface: (%v,%v,%v,%v)", sw, sh, ratio, x, y, w, h)
			}
			if x != 0 && y != 0 {
				t.Errorf("Fit(%v, %v, %v): expected at least one zero offset, got (%v, %v)", sw, sh, ratio, x, y)
			}
			if math.Abs(w/h-ratio) > eps*ratio {
				t.Errorf("Fit(%v, %v, %v): ratio not preserved, got %v", sw, sh, ratio, w/h)
			}

			// Centering on the constrained axis
			if x == 0 {
				if math.Abs(y-(sh-h)/2) > eps {
					t.Errorf("Fit(%v, %v, %v): y=%v not centered, expected %v", sw, sh, ratio, y, (sh-h)/2)
				}
			} else {
				if math.Abs(x-(sw-w)/2) > eps {
					t.Errorf("Fit(%v, %v, %v): x=%v not centered, expected %v", sw, sh, ratio, x, (sw-w)/2)
				}
			}
		}
	}
}
