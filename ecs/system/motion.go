package system

import (
	"github.com/jakecoffman/cp"

	"github.com/kwheeler/ballpit/common"
)

// Orientation is the displayed screen orientation of the device.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	OrientationPortrait
	OrientationPortraitUpsideDown
	OrientationLandscapeLeft
	OrientationLandscapeRight
)

// MotionSample is one raw accelerometer reading: the two device axes
// orthogonal to the screen normal, plus the current orientation.
type MotionSample struct {
	AX, AY      float64
	Orientation Orientation
}

// ResolveGravity rotates a device-space acceleration into arena space
// and scales it to a gravity vector. Accelerometer axes are fixed to the
// physical device, so each displayed orientation needs its own rotation;
// an unknown orientation uses the landscape-left mapping, the app's
// default locked orientation.
func ResolveGravity(sample MotionSample, gravityScale float64) cp.Vector {
	var x, y float64
	switch sample.Orientation {
	case OrientationPortrait:
		x, y = sample.AX, sample.AY
	case OrientationPortraitUpsideDown:
		x, y = -sample.AX, -sample.AY
	case OrientationLandscapeRight:
		x, y = -sample.AY, sample.AX
	default: // landscape left
		x, y = sample.AY, -sample.AX
	}
	g := common.BaseG * gravityScale
	return cp.Vector{X: x * g, Y: y * g}
}

// MotionSystem feeds tilt samples into world gravity. Samples arrive at
// sensor rate; only the latest matters, so each one is applied directly
// with no buffering.
type MotionSystem struct {
	physics *PhysicsSystem
	enabled bool
}

func NewMotionSystem(physics *PhysicsSystem) *MotionSystem {
	return &MotionSystem{physics: physics}
}

// SetEnabled toggles tilt mode. Disabling restores the default downward
// gravity immediately, regardless of the last sample received.
func (m *MotionSystem) SetEnabled(enabled bool) {
	if m.enabled == enabled {
		return
	}
	m.enabled = enabled
	m.physics.SetMotionActive(enabled)
}

func (m *MotionSystem) Enabled() bool {
	return m.enabled
}

// Feed applies one accelerometer sample. Ignored while tilt mode is off.
func (m *MotionSystem) Feed(sample MotionSample) {
	if !m.enabled {
		return
	}
	m.physics.SetTiltGravity(ResolveGravity(sample, m.physics.GravityScale()))
}
