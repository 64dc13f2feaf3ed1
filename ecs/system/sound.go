package system

import (
	"github.com/kwheeler/ballpit/common"
	"github.com/kwheeler/ballpit/ecs"
	"github.com/kwheeler/ballpit/ecs/component"
)

// Sound is a collision sound category.
type Sound string

const (
	SoundBounce Sound = "bounce"
	SoundKnock  Sound = "knock"
	SoundClang  Sound = "clang"
	SoundClink  Sound = "clink"
)

// DefaultSound is used for unknown or empty material tags.
const DefaultSound = SoundBounce

// Surface identifies the solid side of a contact.
type Surface int

const (
	SurfaceFloor Surface = iota
	SurfaceWall
)

// ContactEvent is one new ball-vs-surface contact reported by the physics
// solver. Consumed once and discarded.
type ContactEvent struct {
	Ball    ecs.Entity
	Surface Surface
	// Speed is the relative impact speed along the contact normal, in
	// arena units per second.
	Speed float64
}

// SoundSink receives play requests. Implementations must not block the
// stepping thread.
type SoundSink interface {
	Play(s Sound, intensity float64)
}

// Router turns raw contact events into at-most-one sound per ball. The
// first contact with any solid surface plays the ball's material sound at
// a volume proportional to impact speed; later contacts are ignored.
type Router struct {
	sink  SoundSink
	table map[string]Sound
}

// NewRouter builds a router over the given material -> sound table.
// Materials absent from the table fall back to DefaultSound.
func NewRouter(sink SoundSink, table map[string]Sound) *Router {
	if table == nil {
		table = map[string]Sound{}
	}
	return &Router{sink: sink, table: table}
}

// OnContact handles one ball-vs-floor or ball-vs-wall contact.
func (r *Router) OnContact(w *ecs.World, ev ContactEvent) {
	if r == nil || w == nil {
		return
	}
	ball, ok := ecs.Get(w, ev.Ball, component.BallKind)
	if !ok || ball.SoundPlayed {
		return
	}
	ball.SoundPlayed = true

	sound, ok := r.table[ball.Material]
	if !ok {
		sound = DefaultSound
	}

	// A resting contact still fires once, at zero intensity; the audio
	// layer owns any minimum-volume floor.
	intensity := common.Clamp(ev.Speed/common.ImpactFullVolumeSpeed, 0, 1)
	if r.sink != nil {
		r.sink.Play(sound, intensity)
	}
}

// OnBallContact handles ball-vs-ball contacts. Intentionally silent;
// kept as the extension point for material-pair sounds.
func (r *Router) OnBallContact(w *ecs.World, a, b ecs.Entity, speed float64) {
}
