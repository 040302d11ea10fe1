package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/viewfit/component"
	"github.com/lixenwraith/viewfit/core"
	"github.com/lixenwraith/viewfit/event"
)

// World contains all entities and their components using typed stores,
// plus the two event queues the sync pipeline runs on
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Component Stores (Public for direct system access)
	Cameras   *Store[component.CameraComponent]
	Viewports *Store[component.FixedViewportComponent]
	Surfaces  *Store[component.SurfaceComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	// Notifications carries host display events (resize, scale factor)
	// May be pushed from the host's input/display goroutine at any time
	Notifications *event.Queue

	// Signals carries internal sync signals emitted by the detectors
	// Produced and consumed within a single tick
	Signals *event.Queue

	tick atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID:  1,
		Cameras:       NewStore[component.CameraComponent](),
		Viewports:     NewStore[component.FixedViewportComponent](),
		Surfaces:      NewStore[component.SurfaceComponent](),
		Notifications: event.NewQueue(),
		Signals:       event.NewQueue(),
		systems:       make([]System, 0),
	}

	w.allStores = []AnyStore{
		w.Cameras,
		w.Viewports,
		w.Surfaces,
	}

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs one tick: all systems sequentially in priority order
// Detectors run before the sync system, so every signal emitted this tick is
// consumed this tick. Safe to call with zero pending events
func (w *World) Update() {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.tick.Add(1)

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

// Tick returns the current tick index
// Optimized for hot-path access by event producers
func (w *World) Tick() int64 {
	return w.tick.Load()
}

// PushNotification enqueues a host display notification (resize, scale)
// Safe to call from the host's input/display goroutine
func (w *World) PushNotification(eventType event.EventType, payload any) {
	w.Notifications.Push(event.Event{
		Type:    eventType,
		Payload: payload,
		Tick:    w.tick.Load(),
	})
}

// PushSignal enqueues an internal sync signal
// Called by the detector systems during the tick
func (w *World) PushSignal(eventType event.EventType, payload any) {
	w.Signals.Push(event.Event{
		Type:    eventType,
		Payload: payload,
		Tick:    w.tick.Load(),
	})
}
