package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/kwheeler/ballpit/common"
	"github.com/kwheeler/ballpit/config"
	"github.com/kwheeler/ballpit/ecs"
	"github.com/kwheeler/ballpit/ecs/component"
)

const (
	collisionTypeBall cp.CollisionType = iota + 1
	collisionTypeFloor
	collisionTypeWall
)

const (
	categoryBall     = 1 << 0
	categoryBoundary = 1 << 1
)

const stepDT = 1.0 / 60.0

// PhysicsSystem owns the chipmunk space: the arena boundary segments,
// one circle body per dynamic ball, gravity, and the contact handlers
// that feed the sound router. Arena space is Y-up with the floor at y=0.
type PhysicsSystem struct {
	space  *cp.Space
	arenaW float64
	arenaH float64

	gravity      cp.Vector
	gravityScale float64
	restitution  float64
	wallsEnabled bool
	motionActive bool

	floor  *cp.Shape
	walls  []*cp.Shape
	balls  map[ecs.Entity]*ballBody
	shapes map[*cp.Shape]ecs.Entity

	router *Router
	// world is the ECS world of the current step; contact handlers fire
	// inside space.Step and need it. Single stepping thread only.
	world *ecs.World
}

type ballBody struct {
	body  *cp.Body
	shape *cp.Shape
}

// NewPhysicsSystem builds a space bounded by a floor and three walls
// (left, right, ceiling). The router may be nil when no audio is wired.
func NewPhysicsSystem(arenaW, arenaH float64, router *Router) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetDamping(common.SpaceDamping)

	ps := &PhysicsSystem{
		space:        space,
		arenaW:       arenaW,
		arenaH:       arenaH,
		gravityScale: 1.0,
		wallsEnabled: true,
		balls:        make(map[ecs.Entity]*ballBody),
		shapes:       make(map[*cp.Shape]ecs.Entity),
		router:       router,
	}
	ps.gravity = cp.Vector{X: 0, Y: -common.BaseG}
	space.SetGravity(ps.gravity)

	ps.buildBounds()
	ps.installHandlers()
	return ps
}

func (ps *PhysicsSystem) buildBounds() {
	const thickness = 2.0

	floor := cp.NewSegment(ps.space.StaticBody, cp.Vector{X: 0, Y: 0}, cp.Vector{X: ps.arenaW, Y: 0}, thickness)
	floor.SetFriction(common.BallFriction)
	floor.SetElasticity(1.0)
	floor.SetCollisionType(collisionTypeFloor)
	floor.Filter = cp.NewShapeFilter(cp.NO_GROUP, categoryBoundary, categoryBall)
	ps.space.AddShape(floor)
	ps.floor = floor

	segments := []struct{ a, b cp.Vector }{
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: ps.arenaH}},                   // left
		{cp.Vector{X: ps.arenaW, Y: 0}, cp.Vector{X: ps.arenaW, Y: ps.arenaH}},   // right
		{cp.Vector{X: 0, Y: ps.arenaH}, cp.Vector{X: ps.arenaW, Y: ps.arenaH}},   // ceiling
	}
	for _, seg := range segments {
		wall := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, thickness)
		wall.SetFriction(common.BallFriction)
		wall.SetElasticity(1.0)
		wall.SetCollisionType(collisionTypeWall)
		wall.Filter = cp.NewShapeFilter(cp.NO_GROUP, categoryBoundary, categoryBall)
		ps.space.AddShape(wall)
		ps.walls = append(ps.walls, wall)
	}
}

func (ps *PhysicsSystem) installHandlers() {
	floorHandler := ps.space.NewCollisionHandler(collisionTypeBall, collisionTypeFloor)
	floorHandler.UserData = ps
	floorHandler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if ok {
			sys.dispatchSurfaceContact(arb, SurfaceFloor)
		}
		return true
	}

	wallHandler := ps.space.NewCollisionHandler(collisionTypeBall, collisionTypeWall)
	wallHandler.UserData = ps
	wallHandler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if ok {
			sys.dispatchSurfaceContact(arb, SurfaceWall)
		}
		return true
	}

	ballHandler := ps.space.NewCollisionHandler(collisionTypeBall, collisionTypeBall)
	ballHandler.UserData = ps
	ballHandler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if ok {
			sys.dispatchBallContact(arb)
		}
		return true
	}
}

func (ps *PhysicsSystem) dispatchSurfaceContact(arb *cp.Arbiter, surface Surface) {
	if ps.router == nil || ps.world == nil {
		return
	}
	shapeA, shapeB := arb.Shapes()
	entity, ok := ps.shapes[shapeA]
	if !ok {
		entity, ok = ps.shapes[shapeB]
		if !ok {
			return
		}
	}
	bb := ps.balls[entity]
	if bb == nil {
		return
	}

	speed := math.Abs(bb.body.Velocity().Dot(arb.Normal()))
	ps.router.OnContact(ps.world, ContactEvent{Ball: entity, Surface: surface, Speed: speed})
}

func (ps *PhysicsSystem) dispatchBallContact(arb *cp.Arbiter) {
	if ps.router == nil || ps.world == nil {
		return
	}
	shapeA, shapeB := arb.Shapes()
	ea, okA := ps.shapes[shapeA]
	eb, okB := ps.shapes[shapeB]
	if !okA || !okB {
		return
	}
	ba, bb := ps.balls[ea], ps.balls[eb]
	if ba == nil || bb == nil {
		return
	}
	speed := math.Abs(ba.body.Velocity().Sub(bb.body.Velocity()).Dot(arb.Normal()))
	ps.router.OnBallContact(ps.world, ea, eb, speed)
}

// ApplyConfig maps a settings snapshot onto the space and every live
// ball: gravity (unless tilt-driven gravity is active), wall collision
// filters, and per-ball restitution. Positions and velocities are left
// alone.
func (ps *PhysicsSystem) ApplyConfig(w *ecs.World, cfg config.Config) {
	ps.gravityScale = cfg.GravityScale
	ps.restitution = cfg.Restitution

	if !ps.motionActive {
		ps.setGravity(cp.Vector{X: 0, Y: -common.BaseG * cfg.GravityScale})
	}

	ps.setWallsEnabled(cfg.WallsEnabled)

	ecs.ForEach(w, component.PhysicsBodyKind, func(_ ecs.Entity, body *component.PhysicsBody) {
		body.Elasticity = cfg.Restitution
		if body.Shape != nil {
			body.Shape.SetElasticity(cfg.Restitution)
		}
	})
}

func (ps *PhysicsSystem) setWallsEnabled(enabled bool) {
	ps.wallsEnabled = enabled
	filter := cp.NewShapeFilter(cp.NO_GROUP, categoryBoundary, categoryBall)
	if !enabled {
		// Mask cleared: the walls stop colliding but stay positioned
		// for instant re-enable.
		filter = cp.NewShapeFilter(cp.NO_GROUP, 0, 0)
	}
	for _, wall := range ps.walls {
		wall.Filter = filter
	}
}

func (ps *PhysicsSystem) setGravity(g cp.Vector) {
	ps.gravity = g
	ps.space.SetGravity(g)
}

// SetTiltGravity overrides gravity with a resolved tilt vector. Only the
// motion system calls this, and only while tilt mode is active.
func (ps *PhysicsSystem) SetTiltGravity(g cp.Vector) {
	if !ps.motionActive {
		return
	}
	ps.setGravity(g)
}

// SetMotionActive switches between tilt-driven and settings-driven
// gravity. Deactivating restores the default downward vector at once.
func (ps *PhysicsSystem) SetMotionActive(active bool) {
	ps.motionActive = active
	if !active {
		ps.setGravity(cp.Vector{X: 0, Y: -common.BaseG * ps.gravityScale})
	}
}

func (ps *PhysicsSystem) MotionActive() bool {
	return ps.motionActive
}

// Gravity returns the current world gravity vector.
func (ps *PhysicsSystem) Gravity() cp.Vector {
	return ps.gravity
}

// GravityScale returns the scale from the last applied settings snapshot.
func (ps *PhysicsSystem) GravityScale() float64 {
	return ps.gravityScale
}

// Restitution returns the restitution from the last applied snapshot.
func (ps *PhysicsSystem) Restitution() float64 {
	return ps.restitution
}

func (ps *PhysicsSystem) WallsEnabled() bool {
	return ps.wallsEnabled
}

// WallFilterOpen reports whether the wall shapes currently collide with
// balls. Used by tests and the debug overlay.
func (ps *PhysicsSystem) WallFilterOpen() bool {
	if len(ps.walls) == 0 {
		return false
	}
	return ps.walls[0].Filter.Categories != 0
}

// Realize attaches a chipmunk body and circle shape to an entity whose
// PhysicsBody component has none yet. Safe to call twice; the second
// call is a no-op.
func (ps *PhysicsSystem) Realize(w *ecs.World, e ecs.Entity) {
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyKind)
	if !ok || bodyComp.Body != nil {
		return
	}
	transform, ok := ecs.Get(w, e, component.TransformKind)
	if !ok {
		return
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = common.BallMass
	}
	radius := bodyComp.Radius
	if radius <= 0 {
		radius = common.BallDiameter / 2
	}

	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeBall)
	shape.Filter = cp.NewShapeFilter(cp.NO_GROUP, categoryBall, categoryBall|categoryBoundary)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	ps.balls[e] = &ballBody{body: body, shape: shape}
	ps.shapes[shape] = e
	bodyComp.Body = body
	bodyComp.Shape = shape
}

// Update realizes pending bodies, steps the space one tick, and writes
// body positions back to transforms.
func (ps *PhysicsSystem) Update(w *ecs.World) {
	ps.world = w

	ps.cleanup(w)

	for _, e := range w.Query(component.PhysicsBodyKind, component.TransformKind) {
		ps.Realize(w, e)
	}

	ps.space.Step(stepDT)

	ecs.ForEach2(w, component.PhysicsBodyKind, component.TransformKind,
		func(_ ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
			if body.Body == nil {
				return
			}
			pos := body.Body.Position()
			transform.X = pos.X
			transform.Y = pos.Y
			transform.Rotation = body.Body.Angle()
		})
}

func (ps *PhysicsSystem) cleanup(w *ecs.World) {
	for e, bb := range ps.balls {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyKind) {
			continue
		}
		ps.space.RemoveShape(bb.shape)
		ps.space.RemoveBody(bb.body)
		delete(ps.shapes, bb.shape)
		delete(ps.balls, e)
	}
}
