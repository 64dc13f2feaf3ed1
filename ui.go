package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/kwheeler/ballpit/config"
)

// Overlay is the in-game settings panel. It edits the live config only;
// the settings file on disk stays untouched and still wins on reload.
type Overlay struct {
	ui      *ebitenui.UI
	visible bool

	gravityText *widget.Text
	bounceText  *widget.Text
	wallsBtn    *widget.Button
}

func NewOverlay(g *Game) *Overlay {
	o := &Overlay{}

	s, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("load font: %v", err)
	}
	var face ebtext.Face = &ebtext.GoTextFace{Source: s, Size: 14}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}),
		Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255}),
		Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}),
	}
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}
	newRow := func() *widget.Container {
		return widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
		)
	}

	title := widget.NewText(
		widget.TextOpts.Text("Settings", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	o.gravityText = widget.NewText(widget.TextOpts.Text("", &face, white))
	o.bounceText = widget.NewText(widget.TextOpts.Text("", &face, white))

	gravityRow := newRow()
	gravityRow.AddChild(newButton("-", func() {
		cfg := g.cfg
		cfg.GravityScale -= 0.1
		g.applyConfig(cfg)
	}))
	gravityRow.AddChild(o.gravityText)
	gravityRow.AddChild(newButton("+", func() {
		cfg := g.cfg
		cfg.GravityScale += 0.1
		g.applyConfig(cfg)
	}))

	bounceRow := newRow()
	bounceRow.AddChild(newButton("-", func() {
		cfg := g.cfg
		cfg.Restitution -= 0.1
		g.applyConfig(cfg)
	}))
	bounceRow.AddChild(o.bounceText)
	bounceRow.AddChild(newButton("+", func() {
		cfg := g.cfg
		cfg.Restitution += 0.1
		g.applyConfig(cfg)
	}))

	o.wallsBtn = newButton("", func() {
		cfg := g.cfg
		cfg.WallsEnabled = !cfg.WallsEnabled
		g.applyConfig(cfg)
	})
	clearBtn := newButton("Clear Balls", func() {
		g.pool.ClearAll(g.world)
	})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(gravityRow)
	panel.AddChild(bounceRow)
	panel.AddChild(o.wallsBtn)
	panel.AddChild(clearBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	o.ui = &ebitenui.UI{Container: root}
	o.Refresh(g.cfg)
	return o
}

func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

func (o *Overlay) Visible() bool {
	return o.visible
}

// Refresh syncs the overlay labels with a settings snapshot.
func (o *Overlay) Refresh(cfg config.Config) {
	if o == nil || o.ui == nil {
		return
	}
	o.gravityText.Label = fmt.Sprintf("Gravity x%.1f", cfg.GravityScale)
	o.bounceText.Label = fmt.Sprintf("Bounce %.1f", cfg.Restitution)
	walls := "Walls: Off"
	if cfg.WallsEnabled {
		walls = "Walls: On"
	}
	if text := o.wallsBtn.Text(); text != nil {
		text.Label = walls
	}
}
