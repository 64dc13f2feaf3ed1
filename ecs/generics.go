package ecs

import "github.com/kwheeler/ballpit/ecs/component"

// Add attaches a component to a live entity. Components are stored by
// pointer so callers can mutate them in place after lookup.
func Add[T any](w *World, e Entity, k component.Kind[T], v *T) error {
	if !k.Valid() {
		return component.ErrInvalidKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID(), true).set(int(e.id()), v)
	return nil
}

// Get returns the entity's component of the given kind, or (nil, false).
func Get[T any](w *World, e Entity, k component.Kind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := w.store(k.ID(), false)
	if s == nil {
		return nil, false
	}
	v, ok := s.get(int(e.id())).(*T)
	if !ok {
		return nil, false
	}
	return v, true
}

// Has reports whether the entity carries the kind.
func Has[T any](w *World, e Entity, k component.Kind[T]) bool {
	_, ok := Get(w, e, k)
	return ok
}

// Remove detaches the component, reporting whether it was present.
func Remove[T any](w *World, e Entity, k component.Kind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := w.store(k.ID(), false)
	if s == nil {
		return false
	}
	return s.remove(int(e.id()))
}

// ForEach visits every live entity holding the kind.
func ForEach[T any](w *World, k component.Kind[T], fn func(Entity, *T)) {
	s := w.store(k.ID(), false)
	if s == nil {
		return
	}
	// Snapshot ids so fn may add or remove components while iterating.
	ids := make([]int, len(s.denseIDs))
	copy(ids, s.denseIDs)
	for _, id := range ids {
		e := w.entityForID(id)
		if !e.Valid() {
			continue
		}
		if v, ok := s.get(id).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity holding both kinds.
func ForEach2[A, B any](w *World, ka component.Kind[A], kb component.Kind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}
