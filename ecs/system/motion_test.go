package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/kwheeler/ballpit/common"
)

func vecNear(a, b cp.Vector) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestResolveGravity(t *testing.T) {
	cases := []struct {
		name        string
		orientation Orientation
		ax, ay      float64
		scale       float64
		want        cp.Vector
	}{
		{
			name:        "portrait_passes_axes_through",
			orientation: OrientationPortrait,
			ax:          0.5, ay: -0.5,
			scale: 1.0,
			want:  cp.Vector{X: 0.5 * common.BaseG, Y: -0.5 * common.BaseG},
		},
		{
			name:        "portrait_upside_down_negates",
			orientation: OrientationPortraitUpsideDown,
			ax:          0.5, ay: -0.5,
			scale: 1.0,
			want:  cp.Vector{X: -0.5 * common.BaseG, Y: 0.5 * common.BaseG},
		},
		{
			name:        "landscape_left_rotates",
			orientation: OrientationLandscapeLeft,
			ax:          1, ay: 0,
			scale: 1.0,
			want:  cp.Vector{X: 0, Y: -common.BaseG},
		},
		{
			name:        "landscape_right_rotates_opposite",
			orientation: OrientationLandscapeRight,
			ax:          1, ay: 0,
			scale: 1.0,
			want:  cp.Vector{X: 0, Y: common.BaseG},
		},
		{
			name:        "unknown_falls_back_to_landscape_left",
			orientation: OrientationUnknown,
			ax:          1, ay: 0,
			scale: 1.0,
			want:  cp.Vector{X: 0, Y: -common.BaseG},
		},
		{
			name:        "gravity_scale_multiplies",
			orientation: OrientationLandscapeLeft,
			ax:          1, ay: 0,
			scale: 2.0,
			want:  cp.Vector{X: 0, Y: -2 * common.BaseG},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ResolveGravity(MotionSample{AX: c.ax, AY: c.ay, Orientation: c.orientation}, c.scale)
			if !vecNear(got, c.want) {
				t.Fatalf("gravity = %v, want %v", got, c.want)
			}
		})
	}
}

func TestMotionFeedDrivesWorldGravity(t *testing.T) {
	physics := NewPhysicsSystem(common.ArenaWidth, common.ArenaHeight, nil)
	motion := NewMotionSystem(physics)

	motion.SetEnabled(true)
	motion.Feed(MotionSample{AX: 1, AY: 0, Orientation: OrientationLandscapeRight})

	want := cp.Vector{X: 0, Y: common.BaseG}
	if got := physics.Gravity(); !vecNear(got, want) {
		t.Fatalf("gravity = %v, want %v", got, want)
	}
}

func TestMotionFeedIgnoredWhileDisabled(t *testing.T) {
	physics := NewPhysicsSystem(common.ArenaWidth, common.ArenaHeight, nil)
	motion := NewMotionSystem(physics)

	before := physics.Gravity()
	motion.Feed(MotionSample{AX: 1, AY: 1, Orientation: OrientationPortrait})
	if got := physics.Gravity(); !vecNear(got, before) {
		t.Fatalf("gravity changed to %v while tilt mode was off", got)
	}
}

func TestMotionDisableRestoresDefaultGravity(t *testing.T) {
	physics := NewPhysicsSystem(common.ArenaWidth, common.ArenaHeight, nil)
	motion := NewMotionSystem(physics)

	motion.SetEnabled(true)
	motion.Feed(MotionSample{AX: 1, AY: 1, Orientation: OrientationPortrait})

	motion.SetEnabled(false)
	want := cp.Vector{X: 0, Y: -common.BaseG * physics.GravityScale()}
	if got := physics.Gravity(); !vecNear(got, want) {
		t.Fatalf("gravity after disable = %v, want %v", got, want)
	}

	// Disabling again changes nothing.
	motion.SetEnabled(false)
	if got := physics.Gravity(); !vecNear(got, want) {
		t.Fatalf("gravity after second disable = %v, want %v", got, want)
	}
}
