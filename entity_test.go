package blaze

import "testing"

type health struct {
	Current, Max int
}

func TestEntityComponentLifecycle(t *testing.T) {
	w := NewWorld(WorldConfig{})
	e := w.NewEntity("player")

	if HasComponent[health](e) {
		t.Error("new entity should have no components")
	}

	SetComponent(e, health{Current: 10, Max: 10})
	h, ok := GetComponent[health](e)
	if !ok {
		t.Fatal("component not found after SetComponent")
	}
	if h.Current != 10 {
		t.Errorf("Current = %d, want 10", h.Current)
	}

	// The returned pointer is live: mutations stick.
	h.Current = 5
	h2, _ := GetComponent[health](e)
	if h2.Current != 5 {
		t.Errorf("mutation lost: Current = %d, want 5", h2.Current)
	}

	RemoveComponent[health](e)
	if HasComponent[health](e) {
		t.Error("component still present after RemoveComponent")
	}
}

func TestEntityComponentReplaceOnAdd(t *testing.T) {
	w := NewWorld(WorldConfig{})
	e := w.NewEntity("e")

	first := SetComponent(e, health{Current: 1})
	second := SetComponent(e, health{Current: 2})

	got, _ := GetComponent[health](e)
	if got != second {
		t.Error("GetComponent should return the replacement instance")
	}
	if got == first {
		t.Error("old instance must not survive a replace")
	}
	if got.Current != 2 {
		t.Errorf("Current = %d, want 2 (replaced)", got.Current)
	}
}

func TestEntityAtMostOneComponentPerType(t *testing.T) {
	w := NewWorld(WorldConfig{})
	e := w.NewEntity("e")

	SetComponent(e, health{Current: 1})
	SetComponent(e, health{Current: 2})
	SetComponent(e, NewTransform(3, 4))

	if len(e.components) != 2 {
		t.Errorf("component count = %d, want 2 (one health, one transform)", len(e.components))
	}
}

func TestEntityHierarchy(t *testing.T) {
	w := NewWorld(WorldConfig{})
	parent := w.NewEntity("parent")
	child := w.NewEntity("child")

	parent.AddChild(child)
	if child.Parent() != parent {
		t.Error("child's parent not set")
	}
	if len(parent.Children()) != 1 {
		t.Fatalf("parent has %d children, want 1", len(parent.Children()))
	}

	// Reparenting moves, never duplicates.
	other := w.NewEntity("other")
	other.AddChild(child)
	if len(parent.Children()) != 0 {
		t.Error("child still under the old parent after reparenting")
	}
	if child.Parent() != other {
		t.Error("child's parent not updated")
	}

	other.RemoveChild(child)
	if child.Parent() != nil {
		t.Error("removed child still has a parent")
	}
}

func TestEntityDestroyRecursive(t *testing.T) {
	w := NewWorld(WorldConfig{})
	root := w.NewEntity("root")
	mid := w.NewEntity("mid")
	leaf := w.NewEntity("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	SetComponent(leaf, health{Current: 1})

	root.Destroy()

	if !root.Destroyed() || !mid.Destroyed() || !leaf.Destroyed() {
		t.Error("Destroy must cascade through all descendants")
	}
	if HasComponent[health](leaf) {
		t.Error("components must detach on destroy")
	}
	if w.Entity(root.ID()) != nil || w.Entity(leaf.ID()) != nil {
		t.Error("destroyed entities must leave the world registry")
	}
}

func TestEntityDestroyUnlinksParent(t *testing.T) {
	w := NewWorld(WorldConfig{})
	parent := w.NewEntity("parent")
	child := w.NewEntity("child")
	parent.AddChild(child)

	child.Destroy()

	if len(parent.Children()) != 0 {
		t.Error("destroyed child still listed under its parent")
	}
	if parent.Destroyed() {
		t.Error("destroying a child must not destroy the parent")
	}
}

func TestEntityDestroyIdempotent(t *testing.T) {
	w := NewWorld(WorldConfig{})
	e := w.NewEntity("e")
	e.Destroy()
	e.Destroy() // must not panic or double-unlink
	if w.Entity(e.ID()) != nil {
		t.Error("destroyed entity still registered")
	}
}

func TestEntitySetComponentAfterDestroy(t *testing.T) {
	w := NewWorld(WorldConfig{})
	e := w.NewEntity("e")
	e.Destroy()
	if c := SetComponent(e, health{Current: 1}); c != nil {
		t.Error("SetComponent on a destroyed entity must be refused")
	}
}

func TestWorldEachSkipsInactive(t *testing.T) {
	w := NewWorld(WorldConfig{})
	a := w.NewEntity("a")
	b := w.NewEntity("b")
	b.Active = false
	_ = a

	visited := 0
	w.Each(func(e *Entity) { visited++ })
	if visited != 1 {
		t.Errorf("Each visited %d entities, want 1 (inactive skipped)", visited)
	}
}

func TestWorldEachDestroyDuringIteration(t *testing.T) {
	// Destroying an entity from inside the visit callback must not disturb
	// the iteration: every live entity is still visited exactly once.
	w := NewWorld(WorldConfig{})
	a := w.NewEntity("a")
	w.NewEntity("b")
	w.NewEntity("c")

	visits := map[string]int{}
	w.Each(func(e *Entity) {
		visits[e.Name]++
		if e == a {
			a.Destroy()
		}
	})

	for _, name := range []string{"a", "b", "c"} {
		if visits[name] != 1 {
			t.Errorf("entity %q visited %d times, want 1", name, visits[name])
		}
	}
	if w.Entity(a.ID()) != nil {
		t.Error("destroyed entity still registered after the pass")
	}
}

func TestWorldEachDestroyLaterEntitySkipsIt(t *testing.T) {
	// Destroying an entity that has not been visited yet removes it from
	// the rest of the pass.
	w := NewWorld(WorldConfig{})
	w.NewEntity("first")
	last := w.NewEntity("last")

	visits := map[string]int{}
	w.Each(func(e *Entity) {
		visits[e.Name]++
		last.Destroy()
	})

	if visits["first"] != 1 {
		t.Errorf("entity %q visited %d times, want 1", "first", visits["first"])
	}
	if visits["last"] != 0 {
		t.Errorf("destroyed entity visited %d times, want 0", visits["last"])
	}
}

func TestWorldEach2Filter(t *testing.T) {
	w := NewWorld(WorldConfig{})

	both := w.NewEntity("both")
	SetComponent(both, NewTransform(0, 0))
	SetComponent(both, Velocity{Linear: Vec2{1, 0}})

	onlyTransform := w.NewEntity("only-transform")
	SetComponent(onlyTransform, NewTransform(0, 0))

	matched := 0
	Each2(w, func(e *Entity, tr *Transform, v *Velocity) { matched++ })
	if matched != 1 {
		t.Errorf("Each2 matched %d entities, want 1", matched)
	}
}

func TestWorldsAreIndependent(t *testing.T) {
	// Two worlds share nothing: entity ids, spaces, and clocks are all
	// per-world state.
	w1 := NewWorld(WorldConfig{})
	w2 := NewWorld(WorldConfig{})

	e1 := w1.NewEntity("one")
	if w2.Entity(e1.ID()) != nil {
		t.Error("entity leaked across worlds")
	}

	c := NewBoxCollider(10, 10)
	w1.Space().Add(c)
	if w2.Space().Len() != 0 {
		t.Error("collider leaked across worlds")
	}
}
