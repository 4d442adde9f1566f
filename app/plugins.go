package app

import (
	"github.com/milk9111/mover/ecs"
	"github.com/milk9111/mover/ecs/system"
	"github.com/milk9111/mover/input"
)

// InputPlugin provides the keyboard resource and ends its frame in Last.
// Without it the app behaves as if no keyboard exists.
type InputPlugin struct{}

func (InputPlugin) Build(a *App) {
	if _, ok := ecs.Resource[input.Keyboard](a.world); !ok {
		ecs.InsertResource(a.world, input.NewKeyboard())
	}
	a.AddSystems(ecs.Last, system.NewClearInputSystem())
}

// KeyboardPlugin feeds real Ebitengine key events into the keyboard resource.
type KeyboardPlugin struct{}

func (KeyboardPlugin) Build(a *App) {
	a.AddPlugins(InputPlugin{})
	a.AddSystems(ecs.PreUpdate, system.NewKeyboardSystem())
}

type RenderPlugin struct{}

func (RenderPlugin) Build(a *App) {
	a.AddRenderSystems(system.NewRenderSystem())
}

// DefaultPlugins is everything a windowed game needs.
type DefaultPlugins struct{}

func (DefaultPlugins) Build(a *App) {
	a.AddPlugins(InputPlugin{}, KeyboardPlugin{}, RenderPlugin{})
}
