package ecs

import "github.com/kwheeler/ballpit/ecs/component"

// System updates a world once per simulation step.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, and system order. It is not
// safe for concurrent use; the simulation runs on a single stepping
// goroutine and all inputs are marshaled onto it.
type World struct {
	entities entityStore
	stores   map[component.ID]*sparseSet
	systems  []System
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ID]*sparseSet)}
}

// CreateEntity allocates a new entity handle.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components. Returns
// false if the handle was already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(int(e.id()))
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, in registration order.
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update(w)
	}
}

// Query returns every live entity that has all of the given component
// kinds. Iteration is driven by the first kind's storage.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if len(kinds) == 0 {
		return nil
	}
	first := w.stores[kinds[0].ID()]
	if first == nil {
		return nil
	}
	var out []Entity
	for _, id := range first.denseIDs {
		e := w.entityForID(id)
		if !e.Valid() {
			continue
		}
		match := true
		for _, k := range kinds[1:] {
			s := w.stores[k.ID()]
			if s == nil || !s.has(id) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns an arbitrary live entity holding the kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	s := w.stores[kind.ID()]
	if s == nil {
		return 0, false
	}
	for _, id := range s.denseIDs {
		if e := w.entityForID(id); e.Valid() {
			return e, true
		}
	}
	return 0, false
}

func (w *World) entityForID(id int) Entity {
	if id <= 0 || id > len(w.entities.gens) {
		return 0
	}
	e := makeEntity(entityID(id), w.entities.gens[id-1])
	if !w.entities.isAlive(e) {
		return 0
	}
	return e
}

func (w *World) store(id component.ID, create bool) *sparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}
