package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mover/app"
	"github.com/milk9111/mover/common"
	"github.com/milk9111/mover/ecs"
	"github.com/milk9111/mover/ecs/component"
	"github.com/milk9111/mover/ecs/system"
	"github.com/milk9111/mover/params"
)

var clearColor = color.RGBA{R: 0x18, G: 0x18, B: 0x1c, A: 0xff}

type GameOptions struct {
	Debug      bool
	Watch      bool
	ParamsPath string
}

type Game struct {
	frames int

	app     *app.App
	opts    GameOptions
	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	watcher *params.Watcher
}

func NewGame(p params.GameParameters, opts GameOptions) (*Game, error) {
	a := app.Create(p)
	a.AddSystems(ecs.Startup, system.NewSpawnCameraSystem())
	a.AddPlugins(app.DefaultPlugins{})

	g := &Game{app: a, opts: opts}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		dir := paramsDir(opts.ParamsPath)
		w, err := params.NewWatcher(dir)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		g.watcher = w
		log.Printf("watching %s for parameter changes", dir)
	}

	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if g.paused {
			g.app.ReleaseInput()
		}
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++
	g.reloadParams()

	return g.app.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	g.app.Draw(screen)

	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) debugText() string {
	text := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())

	w := g.app.World()
	player, err := ecs.Single(w, component.PlayerTagComponent.Kind())
	if err != nil {
		return text
	}
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		text += fmt.Sprintf("\nPosition: (%.1f, %.1f, %.1f)", t.X, t.Y, t.Z)
	}
	if v, ok := ecs.Get(w, player, component.VelocityComponent.Kind()); ok {
		text += fmt.Sprintf("\nVelocity: (%.1f, %.1f)", v.X, v.Y)
	}
	return text
}

// reloadParams drains the watcher and respawns the player once if the
// parameters file changed.
func (g *Game) reloadParams() {
	if g.watcher == nil {
		return
	}

	paths, errs := g.watcher.Drain()
	for _, err := range errs {
		log.Printf("watch parameters: %v", err)
	}

	changed := false
	for _, name := range paths {
		if filepath.Base(name) == paramsFile(g.opts.ParamsPath) {
			changed = true
		}
	}
	if !changed {
		return
	}

	p, err := params.LoadParameters(g.opts.ParamsPath)
	if err != nil {
		log.Printf("reload parameters: %v", err)
		return
	}
	if _, err := g.app.Respawn(p); err != nil {
		log.Printf("reload parameters: %v", err)
	}
}

func paramsDir(path string) string {
	if path != "" {
		return filepath.Dir(path)
	}
	if info, err := os.Stat("params"); err == nil && info.IsDir() {
		return "params"
	}
	return "."
}

func paramsFile(path string) string {
	if path != "" {
		return filepath.Base(path)
	}
	return params.DefaultFile
}
