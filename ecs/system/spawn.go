package system

import (
	"github.com/jakecoffman/cp"

	"github.com/kwheeler/ballpit/common"
	"github.com/kwheeler/ballpit/config"
	"github.com/kwheeler/ballpit/ecs"
	"github.com/kwheeler/ballpit/ecs/component"
)

// BallPool owns the insertion-ordered collection of live dynamic balls
// and enforces the capacity limit by evicting the oldest ball first.
// Preview balls are never tracked here.
type BallPool struct {
	capacity int
	physics  *PhysicsSystem
	order    []ecs.Entity
}

// NewBallPool creates a pool bounded at capacity; non-positive values
// fall back to the default capacity.
func NewBallPool(capacity int, physics *PhysicsSystem) *BallPool {
	if capacity <= 0 {
		capacity = common.PoolCapacity
	}
	return &BallPool{capacity: capacity, physics: physics}
}

// Spawn creates a fully dynamic ball at pos and inserts it as the newest
// pool member, evicting the oldest first when the pool is full. A
// non-positive size multiplier is clamped to a small positive floor so
// the physics body always has a real radius.
func (p *BallPool) Spawn(w *ecs.World, pos cp.Vector, material string, sizeMultiplier float64, cfg config.Config) ecs.Entity {
	if sizeMultiplier < common.MinSizeMultiplier {
		sizeMultiplier = common.MinSizeMultiplier
	}

	e := w.CreateEntity()
	mustAdd(ecs.Add(w, e, component.TransformKind, &component.Transform{
		X:     pos.X,
		Y:     pos.Y,
		Scale: sizeMultiplier,
	}))
	mustAdd(ecs.Add(w, e, component.BallKind, &component.Ball{
		Material: material,
		Dynamic:  true,
	}))
	mustAdd(ecs.Add(w, e, component.PhysicsBodyKind, &component.PhysicsBody{
		Radius:     common.BallDiameter * sizeMultiplier / 2,
		Mass:       common.BallMass,
		Friction:   common.BallFriction,
		Elasticity: cfg.Restitution,
	}))

	p.Insert(w, e)
	return e
}

// Insert registers an already-built dynamic ball as the newest pool
// member, applying the same eviction rule as Spawn. The sizing system
// routes committed balls through here.
func (p *BallPool) Insert(w *ecs.World, e ecs.Entity) {
	p.prune(w)
	for len(p.order) >= p.capacity {
		p.EvictOldest(w)
	}
	p.order = append(p.order, e)
	if p.physics != nil {
		p.physics.Realize(w, e)
	}
}

// EvictOldest destroys the oldest pool member. No-op when empty.
func (p *BallPool) EvictOldest(w *ecs.World) {
	p.prune(w)
	if len(p.order) == 0 {
		return
	}
	oldest := p.order[0]
	p.order = p.order[1:]
	w.DestroyEntity(oldest)
}

// ClearAll destroys every dynamic ball. Previews are untouched.
func (p *BallPool) ClearAll(w *ecs.World) {
	for _, e := range p.order {
		w.DestroyEntity(e)
	}
	p.order = p.order[:0]
}

// Count returns the number of live pool members.
func (p *BallPool) Count(w *ecs.World) int {
	p.prune(w)
	return len(p.order)
}

func (p *BallPool) Capacity() int {
	return p.capacity
}

// Entities returns the pool members oldest-first.
func (p *BallPool) Entities(w *ecs.World) []ecs.Entity {
	p.prune(w)
	out := make([]ecs.Entity, len(p.order))
	copy(out, p.order)
	return out
}

// prune drops members destroyed outside the pool's control.
func (p *BallPool) prune(w *ecs.World) {
	alive := p.order[:0]
	for _, e := range p.order {
		if w.IsAlive(e) {
			alive = append(alive, e)
		}
	}
	p.order = alive
}

func mustAdd(err error) {
	if err != nil {
		panic("ballpit: add component: " + err.Error())
	}
}
