package event

// EventType represents the type of engine event
type EventType int

const (
	// === Host Notifications ===

	// EventSurfaceResized signals a surface physical size change
	// Trigger: Host display backend
	// Consumer: SurfaceDetectSystem | Payload: *SurfaceResizedPayload
	EventSurfaceResized EventType = iota

	// EventScaleFactorChanged signals a surface scale factor change
	// Trigger: Host display backend
	// Consumer: SurfaceDetectSystem | Payload: *ScaleFactorChangedPayload
	EventScaleFactorChanged

	// === Sync Signals ===

	// EventCameraChanged signals a mutated fixed-viewport aspect ratio
	// Trigger: CameraDetectSystem
	// Consumer: ViewportSyncSystem | Payload: *CameraChangedPayload
	EventCameraChanged

	// EventSurfaceChanged signals a surface whose geometry changed
	// Trigger: SurfaceDetectSystem
	// Consumer: ViewportSyncSystem | Payload: *SurfaceChangedPayload
	EventSurfaceChanged
)

// Event is a single queued engine event
// Events are ephemeral: produced between or during ticks and fully consumed
// within the tick that drains their queue
type Event struct {
	Type    EventType
	Payload any
	Tick    int64 // World tick at push time
}
