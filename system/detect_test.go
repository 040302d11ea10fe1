package system

import (
	"testing"

	"github.com/lixenwraith/viewfit/component"
	"github.com/lixenwraith/viewfit/engine"
	"github.com/lixenwraith/viewfit/event"
)

// signalsOf drains the signal queue and returns the drained events
func signalsOf(w *engine.World) []event.Event {
	return w.Signals.Consume()
}

// TestCameraDetectorEmitsOnSpawn verifies a fresh fixed viewport emits one
// signal on the first observation
func TestCameraDetectorEmitsOnSpawn(t *testing.T) {
	w := engine.NewWorld()
	detector := NewCameraDetectSystem(w)
	camera := w.SpawnCamera(1.5, component.RenderTarget{Kind: component.TargetPrimary})

	detector.Update()

	signals := signalsOf(w)
	if len(signals) != 1 {
		t.Fatalf("Expected 1 signal, got %d", len(signals))
	}
	if signals[0].Type != event.EventCameraChanged {
		t.Errorf("Expected camera signal, got type %v", signals[0].Type)
	}
	if p := signals[0].Payload.(*event.CameraChangedPayload); p.Camera != camera {
		t.Errorf("Expected camera %d, got %d", camera, p.Camera)
	}
}

// TestCameraDetectorCollapsesMutations verifies multiple Sets between two
// observations produce a single signal, and no signal when unchanged
func TestCameraDetectorCollapsesMutations(t *testing.T) {
	w := engine.NewWorld()
	detector := NewCameraDetectSystem(w)
	camera := w.SpawnCamera(1.0, component.RenderTarget{Kind: component.TargetPrimary})

	detector.Update()
	signalsOf(w) // Drain the spawn signal

	w.Viewports.Set(camera, component.FixedViewportComponent{AspectRatio: 2.0})
	w.Viewports.Set(camera, component.FixedViewportComponent{AspectRatio: 3.0})
	detector.Update()

	if signals := signalsOf(w); len(signals) != 1 {
		t.Errorf("Expected 1 collapsed signal, got %d", len(signals))
	}

	// No mutation since last observation
	detector.Update()
	if signals := signalsOf(w); len(signals) != 0 {
		t.Errorf("Expected 0 signals without mutation, got %d", len(signals))
	}
}

// TestCameraDetectorPrunesRemoved verifies removed viewports stop signaling
// and a re-added viewport signals again
func TestCameraDetectorPrunesRemoved(t *testing.T) {
	w := engine.NewWorld()
	detector := NewCameraDetectSystem(w)
	camera := w.SpawnCamera(1.0, component.RenderTarget{Kind: component.TargetPrimary})

	detector.Update()
	signalsOf(w)

	w.Viewports.Remove(camera)
	detector.Update()
	if signals := signalsOf(w); len(signals) != 0 {
		t.Errorf("Expected 0 signals after removal, got %d", len(signals))
	}

	w.Viewports.Set(camera, component.FixedViewportComponent{AspectRatio: 1.0})
	detector.Update()
	if signals := signalsOf(w); len(signals) != 1 {
		t.Errorf("Expected 1 signal after re-add, got %d", len(signals))
	}
}

// TestSurfaceDetectorTranslation verifies resize and scale notifications
// each become one surface signal, without deduplication
func TestSurfaceDetectorTranslation(t *testing.T) {
	w := engine.NewWorld()
	detector := NewSurfaceDetectSystem(w)
	surface := w.SpawnSurface(100, 100, 1.0, true)

	w.PushNotification(event.EventSurfaceResized, &event.SurfaceResizedPayload{Surface: surface, Width: 200, Height: 100})
	w.PushNotification(event.EventSurfaceResized, &event.SurfaceResizedPayload{Surface: surface, Width: 300, Height: 100})
	w.PushNotification(event.EventScaleFactorChanged, &event.ScaleFactorChangedPayload{Surface: surface, ScaleFactor: 2.0})

	detector.Update()

	signals := signalsOf(w)
	if len(signals) != 3 {
		t.Fatalf("Expected 3 signals (no dedup), got %d", len(signals))
	}
	for i, sig := range signals {
		if sig.Type != event.EventSurfaceChanged {
			t.Errorf("Signal %d: expected surface signal, got type %v", i, sig.Type)
		}
		if p := sig.Payload.(*event.SurfaceChangedPayload); p.Surface != surface {
			t.Errorf("Signal %d: expected surface %d, got %d", i, surface, p.Surface)
		}
	}

	// Notifications fully consumed
	if notes := w.Notifications.Consume(); len(notes) != 0 {
		t.Errorf("Expected notification queue drained, got %d left", len(notes))
	}
}

// TestSurfaceDetectorIgnoresSignalTypes verifies sync signals accidentally
// pushed onto the notification queue are dropped, not forwarded
func TestSurfaceDetectorIgnoresSignalTypes(t *testing.T) {
	w := engine.NewWorld()
	detector := NewSurfaceDetectSystem(w)

	w.PushNotification(event.EventCameraChanged, &event.CameraChangedPayload{Camera: 1})
	detector.Update()

	if signals := signalsOf(w); len(signals) != 0 {
		t.Errorf("Expected 0 signals for foreign event type, got %d", len(signals))
	}
}
