package system

import (
	"testing"

	"github.com/kwheeler/ballpit/ecs"
	"github.com/kwheeler/ballpit/ecs/component"
)

type recordedPlay struct {
	sound     Sound
	intensity float64
}

type recordingSink struct {
	plays []recordedPlay
}

func (r *recordingSink) Play(s Sound, intensity float64) {
	r.plays = append(r.plays, recordedPlay{sound: s, intensity: intensity})
}

func newSoundFixture(t *testing.T, material string) (*ecs.World, ecs.Entity, *Router, *recordingSink) {
	t.Helper()
	w := ecs.NewWorld()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.BallKind, &component.Ball{Material: material, Dynamic: true}); err != nil {
		t.Fatal(err)
	}
	sink := &recordingSink{}
	router := NewRouter(sink, map[string]Sound{
		"rubber": SoundBounce,
		"metal":  SoundClang,
	})
	return w, e, router, sink
}

func TestFirstContactPlaysMaterialSound(t *testing.T) {
	w, e, router, sink := newSoundFixture(t, "metal")

	router.OnContact(w, ContactEvent{Ball: e, Surface: SurfaceFloor, Speed: 250})

	if len(sink.plays) != 1 {
		t.Fatalf("got %d plays, want 1", len(sink.plays))
	}
	if sink.plays[0].sound != SoundClang {
		t.Fatalf("sound = %q, want %q", sink.plays[0].sound, SoundClang)
	}
	if sink.plays[0].intensity != 0.5 {
		t.Fatalf("intensity = %v, want 0.5", sink.plays[0].intensity)
	}
}

func TestSoundPlaysAtMostOncePerBall(t *testing.T) {
	w, e, router, sink := newSoundFixture(t, "rubber")

	router.OnContact(w, ContactEvent{Ball: e, Surface: SurfaceFloor, Speed: 300})
	router.OnContact(w, ContactEvent{Ball: e, Surface: SurfaceWall, Speed: 900})
	router.OnContact(w, ContactEvent{Ball: e, Surface: SurfaceFloor, Speed: 100})

	if len(sink.plays) != 1 {
		t.Fatalf("got %d plays across three contacts, want 1", len(sink.plays))
	}
}

func TestUnknownMaterialFallsBack(t *testing.T) {
	w, e, router, sink := newSoundFixture(t, "jelly")

	router.OnContact(w, ContactEvent{Ball: e, Surface: SurfaceWall, Speed: 100})

	if len(sink.plays) != 1 {
		t.Fatalf("got %d plays, want 1", len(sink.plays))
	}
	if sink.plays[0].sound != DefaultSound {
		t.Fatalf("sound = %q, want %q", sink.plays[0].sound, DefaultSound)
	}
}

func TestIntensityClampsAtFullVolume(t *testing.T) {
	w, e, router, sink := newSoundFixture(t, "rubber")

	router.OnContact(w, ContactEvent{Ball: e, Surface: SurfaceFloor, Speed: 5000})

	if sink.plays[0].intensity != 1 {
		t.Fatalf("intensity = %v, want 1", sink.plays[0].intensity)
	}
}

func TestRestingContactFiresOnceAtZeroIntensity(t *testing.T) {
	w, e, router, sink := newSoundFixture(t, "rubber")

	router.OnContact(w, ContactEvent{Ball: e, Surface: SurfaceFloor, Speed: 0})

	if len(sink.plays) != 1 {
		t.Fatalf("got %d plays, want 1", len(sink.plays))
	}
	if sink.plays[0].intensity != 0 {
		t.Fatalf("intensity = %v, want 0", sink.plays[0].intensity)
	}

	ball, _ := ecs.Get(w, e, component.BallKind)
	if !ball.SoundPlayed {
		t.Fatalf("zero-speed contact must still consume the one-shot")
	}
}

func TestContactOnDeadBallIsIgnored(t *testing.T) {
	w, e, router, sink := newSoundFixture(t, "rubber")
	w.DestroyEntity(e)

	router.OnContact(w, ContactEvent{Ball: e, Surface: SurfaceFloor, Speed: 400})

	if len(sink.plays) != 0 {
		t.Fatalf("got %d plays for a dead ball, want 0", len(sink.plays))
	}
}

func TestBallBallContactIsSilent(t *testing.T) {
	w, a, router, sink := newSoundFixture(t, "rubber")
	b := w.CreateEntity()
	if err := ecs.Add(w, b, component.BallKind, &component.Ball{Material: "metal", Dynamic: true}); err != nil {
		t.Fatal(err)
	}

	router.OnBallContact(w, a, b, 600)

	if len(sink.plays) != 0 {
		t.Fatalf("got %d plays for a ball-ball contact, want 0", len(sink.plays))
	}
}
