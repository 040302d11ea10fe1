package core

// Area represents a rectangular region of a surface in physical pixels
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}
