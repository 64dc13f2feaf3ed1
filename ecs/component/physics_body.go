package component

import "github.com/jakecoffman/cp"

// PhysicsBody describes the chipmunk body backing a dynamic ball. Body and
// Shape are nil until the physics system realizes the entity in its space.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
}

var PhysicsBodyKind = NewKind[PhysicsBody]()
