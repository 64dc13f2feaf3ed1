package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/kwheeler/ballpit/assets"
	"github.com/kwheeler/ballpit/common"
	"github.com/kwheeler/ballpit/config"
	"github.com/kwheeler/ballpit/ecs"
	"github.com/kwheeler/ballpit/ecs/system"
	"github.com/kwheeler/ballpit/prefabs"
)

type Game struct {
	frames int
	debug  bool

	world   *ecs.World
	physics *system.PhysicsSystem
	pool    *system.BallPool
	sizing  *system.SizingSystem
	motion  *system.MotionSystem
	render  *system.RenderSystem

	cfg        config.Config
	configPath string
	watcher    *config.Watcher

	specs    []prefabs.BallSpec
	material int

	input   *Input
	overlay *Overlay
}

func NewGame(configPath string, debug bool) (*Game, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	specs, err := prefabs.LoadBallSpecs()
	if err != nil {
		return nil, fmt.Errorf("load ball materials: %w", err)
	}

	sounds := make(map[string]struct{})
	table := make(map[string]system.Sound, len(specs))
	colors := make(map[string]color.Color, len(specs))
	var names []string
	for _, spec := range specs {
		table[spec.Name] = system.Sound(spec.Sound)
		if spec.Color != nil {
			colors[spec.Name] = spec.Color
		}
		if _, ok := sounds[spec.Sound]; !ok {
			sounds[spec.Sound] = struct{}{}
			names = append(names, spec.Sound)
		}
	}

	players, err := assets.ImpactPlayers(names)
	if err != nil {
		return nil, err
	}
	byName := make(map[system.Sound]*audio.Player, len(players))
	for name, player := range players {
		byName[system.Sound(name)] = player
	}

	router := system.NewRouter(system.NewAudioSink(byName), table)
	physics := system.NewPhysicsSystem(common.ArenaWidth, common.ArenaHeight, router)
	pool := system.NewBallPool(common.PoolCapacity, physics)
	sizing := system.NewSizingSystem(pool)

	world := ecs.NewWorld()
	world.AddSystem(sizing)
	world.AddSystem(physics)

	g := &Game{
		debug:      debug,
		world:      world,
		physics:    physics,
		pool:       pool,
		sizing:     sizing,
		motion:     system.NewMotionSystem(physics),
		render:     system.NewRenderSystem(common.ArenaWidth, common.ArenaHeight, physics, colors),
		cfg:        cfg,
		configPath: configPath,
		specs:      specs,
		input:      NewInput(),
	}
	physics.ApplyConfig(world, cfg)
	g.overlay = NewOverlay(g)

	watcher, err := config.NewWatcher(filepath.Dir(configPath))
	if err != nil {
		log.Printf("settings watcher disabled: %v", err)
	} else {
		g.watcher = watcher
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.drainWatcher()
	g.input.Update(g)
	g.world.Update()
	if g.overlay.Visible() {
		g.overlay.ui.Update()
	}
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Clean(path) == filepath.Clean(g.configPath) {
				g.reloadConfig()
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("settings watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadConfig() {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		log.Printf("settings reload: %v", err)
		return
	}
	g.applyConfig(cfg)
}

// applyConfig pushes a settings snapshot into the simulation. Live balls
// keep their positions and velocities.
func (g *Game) applyConfig(cfg config.Config) {
	g.cfg = cfg.Clamp()
	g.physics.ApplyConfig(g.world, g.cfg)
	g.overlay.Refresh(g.cfg)
}

func (g *Game) currentMaterial() prefabs.BallSpec {
	return g.specs[g.material]
}

func (g *Game) holdGrowDuration() time.Duration {
	return time.Duration(g.cfg.HoldGrowSeconds * float64(time.Second))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		mode := "gravity"
		if g.motion.Enabled() {
			mode = "tilt"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f  balls: %d/%d  material: %s  mode: %s",
			ebiten.ActualFPS(), g.pool.Count(g.world), g.pool.Capacity(),
			g.currentMaterial().Name, mode))
	}

	if g.overlay.Visible() {
		g.overlay.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ArenaWidth, common.ArenaHeight
}
