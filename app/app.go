// Package app wires the world, the staged scheduler and plugins into a
// runnable game.
package app

import (
	"fmt"
	"log"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mover/ecs"
	"github.com/milk9111/mover/ecs/entity"
	"github.com/milk9111/mover/ecs/system"
	"github.com/milk9111/mover/input"
	"github.com/milk9111/mover/params"
)

// stageOrder is the per-frame order. Startup runs once before the first frame.
var stageOrder = []ecs.Stage{ecs.PreUpdate, ecs.Update, ecs.Last}

// Plugin adds systems and resources to an app.
type Plugin interface {
	Build(a *App)
}

type App struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	renderers []ecs.RenderSystem
	plugins   map[reflect.Type]struct{}
	started   bool
}

// New returns an app with an empty world and no systems.
func New() *App {
	return &App{
		world:     ecs.NewWorld(),
		scheduler: ecs.NewScheduler(),
		plugins:   make(map[reflect.Type]struct{}),
	}
}

// Create returns the game app: the player is spawned at startup from p, and
// every frame the input step runs before the movement step. Input and
// rendering come from plugins so the app also runs headless.
func Create(p params.GameParameters) *App {
	a := New()
	ecs.InsertResource(a.world, &p)
	a.AddSystems(ecs.Startup, system.NewSpawnPlayerSystem())
	a.AddSystems(ecs.Update, ecs.Chain(
		system.NewPlayerControllerSystem(),
		system.NewMovementSystem(),
	))
	return a
}

func (a *App) World() *ecs.World {
	return a.world
}

func (a *App) AddSystems(stage ecs.Stage, systems ...ecs.System) *App {
	a.scheduler.Add(stage, systems...)
	return a
}

func (a *App) AddRenderSystems(systems ...ecs.RenderSystem) *App {
	for _, s := range systems {
		if s != nil {
			a.renderers = append(a.renderers, s)
		}
	}
	return a
}

// AddPlugins builds each plugin once; adding the same plugin type again is a
// no-op.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		if p == nil {
			continue
		}
		key := reflect.TypeOf(p)
		if _, ok := a.plugins[key]; ok {
			continue
		}
		a.plugins[key] = struct{}{}
		p.Build(a)
	}
	return a
}

// IsPluginAdded reports whether a plugin of type P was added.
func IsPluginAdded[P Plugin](a *App) bool {
	_, ok := a.plugins[reflect.TypeFor[P]()]
	return ok
}

// Update advances the app by one frame. The first call also runs Startup.
func (a *App) Update() error {
	if !a.started {
		a.started = true
		if err := a.scheduler.Run(ecs.Startup, a.world); err != nil {
			return err
		}
	}
	for _, stage := range stageOrder {
		if err := a.scheduler.Run(stage, a.world); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	for _, r := range a.renderers {
		r.Draw(a.world, screen)
	}
}

// ReleaseInput marks every held key as released. Call it when updates stop
// for a while (pause) since releases in that window are never observed.
func (a *App) ReleaseInput() {
	if kb, ok := ecs.Resource[input.Keyboard](a.world); ok {
		kb.ReleaseAll()
	}
}

// Parameters returns the parameters the app was created with.
func (a *App) Parameters() (params.GameParameters, bool) {
	p, ok := ecs.Resource[params.GameParameters](a.world)
	if !ok {
		return params.GameParameters{}, false
	}
	return *p, true
}

// Respawn replaces the current player with one built from p. It is used when
// the parameter file changes while the game runs.
func (a *App) Respawn(p params.GameParameters) (ecs.Entity, error) {
	ecs.InsertResource(a.world, &p)
	if !a.started {
		return 0, nil
	}

	removed := entity.DestroyPlayers(a.world)
	player, err := entity.NewPlayer(a.world, p)
	if err != nil {
		return 0, fmt.Errorf("respawn: %w", err)
	}
	log.Printf("respawned player %s (removed %d)", player, removed)
	return player, nil
}
