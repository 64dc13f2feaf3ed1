package system

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/kwheeler/ballpit/common"
	"github.com/kwheeler/ballpit/config"
	"github.com/kwheeler/ballpit/ecs"
	"github.com/kwheeler/ballpit/ecs/component"
)

// minGrowDuration guards the progress division against zero or negative
// configured durations.
const minGrowDuration = 100 * time.Millisecond

// SizingSystem runs the press-and-hold grow gesture: at most one preview
// ball exists at a time, it scales linearly from the minimum to the
// maximum preview scale over the configured duration, and it stays
// physically inert until Commit promotes it into the pool.
type SizingSystem struct {
	pool *BallPool
	now  func() time.Time

	active    ecs.Entity
	hasActive bool
	startedAt time.Time
	duration  time.Duration
}

func NewSizingSystem(pool *BallPool) *SizingSystem {
	return &SizingSystem{pool: pool, now: time.Now}
}

// SetClock replaces the time source. Tests use this for determinism.
func (s *SizingSystem) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Begin opens a sizing transaction at pos, discarding any previous
// uncommitted preview first.
func (s *SizingSystem) Begin(w *ecs.World, pos cp.Vector, material string, duration time.Duration) ecs.Entity {
	s.Discard(w)

	if duration < minGrowDuration {
		duration = minGrowDuration
	}

	e := w.CreateEntity()
	mustAdd(ecs.Add(w, e, component.TransformKind, &component.Transform{
		X:     pos.X,
		Y:     pos.Y,
		Scale: common.MinPreviewScale,
	}))
	mustAdd(ecs.Add(w, e, component.BallKind, &component.Ball{Material: material}))
	mustAdd(ecs.Add(w, e, component.PreviewKind, &component.Preview{}))

	s.active = e
	s.hasActive = true
	s.startedAt = s.now()
	s.duration = duration
	return e
}

// Update advances the preview's scale. Part of the world system order.
func (s *SizingSystem) Update(w *ecs.World) {
	if !s.hasActive {
		return
	}
	if !w.IsAlive(s.active) {
		s.reset()
		return
	}
	transform, ok := ecs.Get(w, s.active, component.TransformKind)
	if !ok {
		return
	}
	transform.Scale = s.scaleAtTime(s.now())
}

// Commit freezes the preview at its current scale, attaches a physics
// body sized to it, and inserts the ball into the pool as the newest
// member. With no open transaction it is a no-op.
func (s *SizingSystem) Commit(w *ecs.World, cfg config.Config) (ecs.Entity, bool) {
	if !s.hasActive || !w.IsAlive(s.active) {
		s.reset()
		return 0, false
	}

	e := s.active
	scale := s.scaleAtTime(s.now())

	transform, ok := ecs.Get(w, e, component.TransformKind)
	if ok {
		transform.Scale = scale
	}
	if ball, ok := ecs.Get(w, e, component.BallKind); ok {
		ball.Dynamic = true
	}
	ecs.Remove(w, e, component.PreviewKind)
	mustAdd(ecs.Add(w, e, component.PhysicsBodyKind, &component.PhysicsBody{
		Radius:     common.BallDiameter * scale / 2,
		Mass:       common.BallMass,
		Friction:   common.BallFriction,
		Elasticity: cfg.Restitution,
	}))

	s.pool.Insert(w, e)
	s.reset()
	return e, true
}

// Discard drops the open preview, if any, without spawning anything.
func (s *SizingSystem) Discard(w *ecs.World) {
	if s.hasActive && w.IsAlive(s.active) {
		w.DestroyEntity(s.active)
	}
	s.reset()
}

// Active returns the open preview entity, if one exists.
func (s *SizingSystem) Active() (ecs.Entity, bool) {
	return s.active, s.hasActive
}

// Scale reports the preview's scale at time now without mutating state.
func (s *SizingSystem) Scale(now time.Time) float64 {
	if !s.hasActive {
		return 0
	}
	return s.scaleAtTime(now)
}

func (s *SizingSystem) scaleAtTime(now time.Time) float64 {
	frac := float64(now.Sub(s.startedAt)) / float64(s.duration)
	frac = common.Clamp(frac, 0, 1)
	return common.Lerp(common.MinPreviewScale, common.MaxPreviewScale, frac)
}

func (s *SizingSystem) reset() {
	s.active = 0
	s.hasActive = false
}
