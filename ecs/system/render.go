package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/kwheeler/ballpit/common"
	"github.com/kwheeler/ballpit/ecs"
	"github.com/kwheeler/ballpit/ecs/component"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	boundsColor     = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	fallbackColor   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// RenderSystem draws the arena bounds and every ball as a filled circle.
// Previews render translucent so the grow gesture reads as "not yet
// real". Arena space is Y-up; the screen is Y-down, so Y flips here.
type RenderSystem struct {
	arenaW  float64
	arenaH  float64
	physics *PhysicsSystem
	colors  map[string]color.Color
}

func NewRenderSystem(arenaW, arenaH float64, physics *PhysicsSystem, colors map[string]color.Color) *RenderSystem {
	if colors == nil {
		colors = map[string]color.Color{}
	}
	return &RenderSystem{arenaW: arenaW, arenaH: arenaH, physics: physics, colors: colors}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	r.drawBounds(screen)

	ecs.ForEach2(w, component.BallKind, component.TransformKind,
		func(e ecs.Entity, ball *component.Ball, transform *component.Transform) {
			c, ok := r.colors[ball.Material]
			if !ok {
				c = fallbackColor
			}
			if ecs.Has(w, e, component.PreviewKind) {
				c = translucent(c)
			}

			radius := common.BallDiameter * transform.Scale / 2
			x := float32(transform.X)
			y := float32(r.arenaH - transform.Y)
			vector.DrawFilledCircle(screen, x, y, float32(radius), c, true)
		})
}

func (r *RenderSystem) drawBounds(screen *ebiten.Image) {
	w := float32(r.arenaW)
	h := float32(r.arenaH)
	const t = 2.0

	// Floor.
	vector.StrokeLine(screen, 0, h, w, h, t, boundsColor, false)
	if r.physics == nil || r.physics.WallsEnabled() {
		vector.StrokeLine(screen, 0, 0, 0, h, t, boundsColor, false)
		vector.StrokeLine(screen, w, 0, w, h, t, boundsColor, false)
		vector.StrokeLine(screen, 0, 0, w, 0, t, boundsColor, false)
	}
}

func translucent(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA{
		R: uint8((r >> 8) / 2),
		G: uint8((g >> 8) / 2),
		B: uint8((b >> 8) / 2),
		A: 128,
	}
}
