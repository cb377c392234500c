package blaze

import (
	"reflect"
	"sort"
)

// System is a behavior that operates on entities with specific components.
// Systems run in ascending priority order within their pass; state that must
// persist between frames lives on the system value itself.
type System interface {
	Update(w *World, dt float64)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(w *World, dt float64)

// Update implements System.
func (f SystemFunc) Update(w *World, dt float64) {
	f(w, dt)
}

type systemEntry struct {
	system   System
	priority int
	order    int // registration order, tie-breaker for equal priorities
}

// WorldConfig configures a World. Zero values select the defaults.
type WorldConfig struct {
	// TargetFPS is the fixed-update rate. Defaults to 60, clamps to [1, 120].
	TargetFPS int
	// MaxAccumulator is the scheduler backlog cap in seconds. Defaults to
	// 0.2, floored at one fixed step.
	MaxAccumulator float64
}

// World is the explicit context object tying the engine together: it owns
// the entities, the systems, the Clock/Loop pair, the collision Space, and
// the cameras. Nothing in blaze is process-wide — two Worlds are fully
// independent, so tests and concurrent game instances never interfere.
//
// Per host tick the Loop drives the World as follows: zero or more fixed
// passes (fixed systems in priority order, then Space.Step), then exactly
// one frame pass (frame systems in priority order, camera updates, frame
// subscribers).
type World struct {
	loop  *Loop
	space *Space

	entities   []*Entity
	entityByID map[uint32]*Entity
	nextID     uint32

	fixedSystems []systemEntry
	frameSystems []systemEntry
	systemSeq    int
	fixedSorted  bool
	frameSorted  bool

	cameras []*Camera

	frameSubs []subscriber
	fixedSubs []subscriber
	subSeq    int
}

// subscriber is one fan-out registration. Kept in a slice so subscribers
// run in registration order.
type subscriber struct {
	id int
	cb func(dt float64)
}

// removeSubscriber drops the subscriber with the given id. It builds a fresh
// slice rather than shifting in place: an unsubscribe can fire from inside
// the fan-out, which is still ranging over the old backing array.
func removeSubscriber(subs []subscriber, id int) []subscriber {
	for i, s := range subs {
		if s.id == id {
			out := make([]subscriber, 0, len(subs)-1)
			out = append(out, subs[:i]...)
			return append(out, subs[i+1:]...)
		}
	}
	return subs
}

// NewWorld creates a World with its own Loop, Clock, and Space, wired so
// that starting the loop drives the world's passes.
func NewWorld(cfg WorldConfig) *World {
	w := &World{
		loop:       NewLoop(LoopConfig{TargetFPS: cfg.TargetFPS, MaxAccumulator: cfg.MaxAccumulator}),
		space:      NewSpace(),
		entityByID: make(map[uint32]*Entity),
	}
	w.loop.OnFixedUpdate(w.fixedUpdate)
	w.loop.OnFrame(w.frameUpdate)
	return w
}

// Loop returns the world's scheduler.
func (w *World) Loop() *Loop {
	return w.loop
}

// Clock returns the world's clock.
func (w *World) Clock() *Clock {
	return w.loop.Clock()
}

// Space returns the world's collision space.
func (w *World) Space() *Space {
	return w.space
}

// --- Entities ---

// NewEntity creates an active entity registered with the world.
func (w *World) NewEntity(name string) *Entity {
	w.nextID++
	e := &Entity{
		id:         w.nextID,
		Name:       name,
		Active:     true,
		components: make(map[reflect.Type]any),
		world:      w,
	}
	w.entities = append(w.entities, e)
	w.entityByID[e.id] = e
	return e
}

// Entity returns the entity with the given id, or nil if it does not exist
// or has been destroyed.
func (w *World) Entity(id uint32) *Entity {
	return w.entityByID[id]
}

// Each calls fn for every active, non-destroyed entity. fn may destroy
// entities, including the one it was called with; every other entity is
// still visited exactly once.
func (w *World) Each(fn func(e *Entity)) {
	for _, e := range w.entities {
		if e.Active && !e.destroyed {
			fn(e)
		}
	}
}

// removeEntity unregisters a destroyed entity. Called from Entity.Destroy,
// possibly from inside a system pass that is ranging over the entity list,
// so the removal builds a fresh slice instead of shifting in place — the
// in-flight range keeps walking the old array and the destroyed-entity
// check in Each skips the removed one.
func (w *World) removeEntity(e *Entity) {
	delete(w.entityByID, e.id)
	for i, existing := range w.entities {
		if existing == e {
			entities := make([]*Entity, 0, len(w.entities)-1)
			entities = append(entities, w.entities[:i]...)
			w.entities = append(entities, w.entities[i+1:]...)
			return
		}
	}
}

// Each1 calls fn for every active entity that has a component of type T.
func Each1[T any](w *World, fn func(e *Entity, c *T)) {
	w.Each(func(e *Entity) {
		if c, ok := GetComponent[T](e); ok {
			fn(e, c)
		}
	})
}

// Each2 calls fn for every active entity that has components of both types.
func Each2[A, B any](w *World, fn func(e *Entity, a *A, b *B)) {
	w.Each(func(e *Entity) {
		a, ok := GetComponent[A](e)
		if !ok {
			return
		}
		b, ok := GetComponent[B](e)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

// --- Systems ---

// AddSystem registers a system for the variable-rate frame pass. Lower
// priority runs first; equal priorities run in registration order.
func (w *World) AddSystem(s System, priority int) {
	w.systemSeq++
	w.frameSystems = append(w.frameSystems, systemEntry{system: s, priority: priority, order: w.systemSeq})
	w.frameSorted = false
}

// AddFixedSystem registers a system for the fixed-rate pass. Physics and
// collision belong here: every invocation receives exactly the fixed step.
func (w *World) AddFixedSystem(s System, priority int) {
	w.systemSeq++
	w.fixedSystems = append(w.fixedSystems, systemEntry{system: s, priority: priority, order: w.systemSeq})
	w.fixedSorted = false
}

func sortSystems(entries []systemEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority < entries[j].priority
		}
		return entries[i].order < entries[j].order
	})
}

// fixedUpdate is the Loop's fixed callback: fixed systems in priority order,
// then the collision pass.
func (w *World) fixedUpdate(dt float64) {
	if !w.fixedSorted {
		sortSystems(w.fixedSystems)
		w.fixedSorted = true
	}
	for _, entry := range w.fixedSystems {
		entry.system.Update(w, dt)
	}
	w.space.Step()
	for _, sub := range w.fixedSubs {
		sub.cb(dt)
	}
}

// frameUpdate is the Loop's variable callback: frame systems, cameras, then
// frame subscribers.
func (w *World) frameUpdate(dt float64) {
	if !w.frameSorted {
		sortSystems(w.frameSystems)
		w.frameSorted = true
	}
	for _, entry := range w.frameSystems {
		entry.system.Update(w, dt)
	}
	for _, cam := range w.cameras {
		cam.update(dt)
	}
	for _, sub := range w.frameSubs {
		sub.cb(dt)
	}
}

// --- Subscriber fan-out ---

// OnFrame subscribes cb to the variable-rate pass and returns an
// unsubscribe function. Subscribers run after frame systems and cameras.
func (w *World) OnFrame(cb func(dt float64)) func() {
	w.subSeq++
	id := w.subSeq
	w.frameSubs = append(w.frameSubs, subscriber{id: id, cb: cb})
	return func() { w.frameSubs = removeSubscriber(w.frameSubs, id) }
}

// OnFixedUpdate subscribes cb to the fixed-rate pass and returns an
// unsubscribe function. Subscribers run after fixed systems and the
// collision pass.
func (w *World) OnFixedUpdate(cb func(dt float64)) func() {
	w.subSeq++
	id := w.subSeq
	w.fixedSubs = append(w.fixedSubs, subscriber{id: id, cb: cb})
	return func() { w.fixedSubs = removeSubscriber(w.fixedSubs, id) }
}

// --- Cameras ---

// NewCamera creates a camera with the given viewport and adds it to the
// world. Cameras update once per frame pass, after frame systems.
func (w *World) NewCamera(viewport Rect) *Camera {
	cam := newCamera(viewport)
	w.cameras = append(w.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the world. Safe to call during a frame
// pass: the camera list is rebuilt, not shifted under the pass's range.
func (w *World) RemoveCamera(cam *Camera) {
	for i, c := range w.cameras {
		if c == cam {
			cams := make([]*Camera, 0, len(w.cameras)-1)
			cams = append(cams, w.cameras[:i]...)
			w.cameras = append(cams, w.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the world's camera list. The returned slice MUST NOT be
// mutated.
func (w *World) Cameras() []*Camera {
	return w.cameras
}
