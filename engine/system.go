package engine

// System is implemented by all engine systems
type System interface {
	// Name returns the registry name of the system
	Name() string

	// Priority orders system execution within a tick; lower values run first
	Priority() int

	// Update runs the system once per tick
	Update()
}
