package parameter

import "time"

// Event Queues
const (
	// EventQueueSize is the fixed capacity of each event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System Priorities (lower runs first)
const (
	// PriorityCameraDetect runs the fixed-viewport change detector
	PriorityCameraDetect = 10

	// PrioritySurfaceDetect runs the surface notification detector
	PrioritySurfaceDetect = 20

	// PriorityViewportSync runs signal resolution and viewport application
	// Must stay above both detectors so every signal emitted in a tick is
	// consumed in the same tick
	PriorityViewportSync = 100
)

// Demo Timing
const (
	// FrameUpdateInterval is the demo render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)
