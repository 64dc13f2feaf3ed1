package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/kwheeler/ballpit/common"
	"github.com/kwheeler/ballpit/ecs/system"
)

// holdThreshold separates a quick tap (spawn at the material's default
// size) from a press-and-hold (open a sizing transaction).
const holdThreshold = 200 * time.Millisecond

// Input translates mouse and keyboard state into pool, sizing, and
// settings actions once per tick.
type Input struct {
	pressed   bool
	pressedAt time.Time
	pressPos  cp.Vector
	sizing    bool
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Update(g *Game) {
	in.handleKeys(g)
	if g.overlay.Visible() {
		// Clicks belong to the overlay; an open preview is abandoned.
		if in.sizing {
			g.sizing.Discard(g.world)
		}
		in.pressed = false
		in.sizing = false
		return
	}
	in.handleMouse(g)
}

func (in *Input) handleMouse(g *Game) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.pressed = true
		in.pressedAt = time.Now()
		in.pressPos = cursorArenaPosition()
	}

	if in.pressed && !in.sizing && time.Since(in.pressedAt) >= holdThreshold {
		in.sizing = true
		g.sizing.Begin(g.world, in.pressPos, g.currentMaterial().Name, g.holdGrowDuration())
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && in.pressed {
		if in.sizing {
			g.sizing.Commit(g.world, g.cfg)
		} else {
			spec := g.currentMaterial()
			g.pool.Spawn(g.world, cursorArenaPosition(), spec.Name, spec.SizeMultiplier, g.cfg)
		}
		in.pressed = false
		in.sizing = false
	}
}

func (in *Input) handleKeys(g *Game) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.pool.ClearAll(g.world)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		cfg := g.cfg
		cfg.WallsEnabled = !cfg.WallsEnabled
		g.applyConfig(cfg)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		cfg := g.cfg
		cfg.GravityScale += 0.1
		g.applyConfig(cfg)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		cfg := g.cfg
		cfg.GravityScale -= 0.1
		g.applyConfig(cfg)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.motion.SetEnabled(!g.motion.Enabled())
	}

	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4} {
		if inpututil.IsKeyJustPressed(key) && i < len(g.specs) {
			g.material = i
		}
	}

	if g.motion.Enabled() {
		in.feedTiltFromArrows(g)
	}
}

// feedTiltFromArrows synthesizes accelerometer samples from the arrow
// keys so tilt mode is testable without a sensor. Samples are in device
// axes for the app's locked landscape-left orientation.
func (in *Input) feedTiltFromArrows(g *Game) {
	var ax, ay float64
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		ay = -1
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		ay = 1
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		ax = -1
	default:
		ax = 1 // rest: gravity points down
	}
	g.motion.Feed(system.MotionSample{AX: ax, AY: ay, Orientation: system.OrientationLandscapeLeft})
}

// cursorArenaPosition converts the Y-down screen cursor into Y-up arena
// coordinates.
func cursorArenaPosition() cp.Vector {
	x, y := ebiten.CursorPosition()
	return cp.Vector{X: float64(x), Y: common.ArenaHeight - float64(y)}
}
