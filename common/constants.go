package common

// Arena and simulation constants. The feel-related values (friction,
// damping, mass) are tuned, not physically derived.
const (
	ArenaWidth  = 1280.0
	ArenaHeight = 720.0

	// BaseG is the gravity magnitude at gravity scale 1.0, in arena
	// units per second squared.
	BaseG = 9.8

	// BallDiameter is the base ball size at scale 1.0.
	BallDiameter = 40.0

	BallFriction = 0.3
	BallMass     = 0.5

	// SpaceDamping is the fraction of velocity a body retains per
	// second (chipmunk-style damping; 0.9 matches a 0.1 linear
	// damping coefficient).
	SpaceDamping = 0.9

	// PoolCapacity bounds the number of live dynamic balls.
	PoolCapacity = 50

	// MinSizeMultiplier floors degenerate spawn sizes so a physics
	// body always has a positive radius.
	MinSizeMultiplier = 0.1

	// Press-and-hold sizing bounds.
	MinPreviewScale = 0.5
	MaxPreviewScale = 5.0

	// ImpactFullVolumeSpeed is the impact speed that produces a
	// full-volume collision sound.
	ImpactFullVolumeSpeed = 500.0
)
