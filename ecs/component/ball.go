package component

// Ball marks an entity as a simulated ball.
//
// SoundPlayed is the one-shot impact guard: it flips false -> true exactly
// once, on the ball's first contact with the floor or a wall, and never
// resets for the entity's lifetime.
type Ball struct {
	Material    string
	Dynamic     bool
	SoundPlayed bool
}

var BallKind = NewKind[Ball]()

// Preview tags a ball that is still growing under a press-and-hold
// gesture. Preview balls carry no physics body and never collide.
type Preview struct{}

var PreviewKind = NewKind[Preview]()
