package blaze

import "reflect"

// Entity is a plain aggregate of component data. Behavior lives in systems
// that operate over component sets; entities carry no virtual methods.
//
// An entity holds at most one component per type. Components are owned by
// the entity (ownership runs entity→component only) and are detached when
// the entity is destroyed.
type Entity struct {
	id     uint32
	Name   string
	Tag    string
	Active bool

	components map[reflect.Type]any
	parent     *Entity
	children   []*Entity

	world     *World
	destroyed bool
}

// ID returns the entity's world-unique id.
func (e *Entity) ID() uint32 {
	return e.id
}

// Parent returns the entity's parent, or nil at the top level.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// Children returns the entity's children in insertion order. The returned
// slice MUST NOT be mutated.
func (e *Entity) Children() []*Entity {
	return e.children
}

// Destroyed reports whether Destroy has run on this entity.
func (e *Entity) Destroyed() bool {
	return e.destroyed
}

// AddChild links child under e. A child already under another parent is
// reparented.
func (e *Entity) AddChild(child *Entity) {
	if child == nil || child == e {
		return
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild unlinks child from e without destroying it.
func (e *Entity) RemoveChild(child *Entity) {
	if child.parent != e {
		return
	}
	e.removeChildByPtr(child)
	child.parent = nil
}

func (e *Entity) removeChildByPtr(child *Entity) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// Destroy tears the entity down: children are destroyed first (recursively),
// then all components detach, then the entity unlinks from its parent and
// leaves the world. Destroying twice is a no-op.
func (e *Entity) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.Active = false

	// Children first. Iterate over a copy: each child's Destroy mutates
	// e.children through the parent unlink.
	children := append([]*Entity(nil), e.children...)
	for _, child := range children {
		child.Destroy()
	}
	e.children = nil

	clear(e.components)

	if e.parent != nil {
		e.parent.removeChildByPtr(e)
		e.parent = nil
	}
	if e.world != nil {
		e.world.removeEntity(e)
	}
}

// SetComponent attaches a component of type T to the entity. If a component
// of that type is already present it is replaced — the old instance detaches
// first, the two never coexist.
func SetComponent[T any](e *Entity, component T) *T {
	if e.destroyed {
		warnf("SetComponent on destroyed entity %q; ignored", e.Name)
		return nil
	}
	c := &component
	e.components[reflect.TypeFor[T]()] = c
	return c
}

// GetComponent returns the entity's component of type T, or nil and false
// when absent. The returned pointer is the live component; systems mutate
// it in place.
func GetComponent[T any](e *Entity) (*T, bool) {
	c, ok := e.components[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return c.(*T), true
}

// HasComponent reports whether the entity has a component of type T.
func HasComponent[T any](e *Entity) bool {
	_, ok := e.components[reflect.TypeFor[T]()]
	return ok
}

// RemoveComponent detaches the entity's component of type T, if present.
func RemoveComponent[T any](e *Entity) {
	delete(e.components, reflect.TypeFor[T]())
}
