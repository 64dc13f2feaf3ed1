package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
	ErrInvalidKind    = errors.New("ecs: invalid component kind")
)

// ID uniquely identifies a registered component type.
type ID uint32

var nextID atomic.Uint32

// Kind ties a component ID to its Go type.
type Kind[T any] struct {
	id ID
}

// NewKind registers a new component kind. Call once per type, at package
// init, and share the value.
func NewKind[T any]() Kind[T] {
	return Kind[T]{id: ID(nextID.Add(1))}
}

func (k Kind[T]) ID() ID {
	return k.id
}

func (k Kind[T]) Valid() bool {
	return k.id != 0
}

// AnyKind is the type-erased view of a Kind, used for multi-kind queries.
type AnyKind interface {
	ID() ID
}
