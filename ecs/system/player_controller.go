package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mover/ecs"
	"github.com/milk9111/mover/ecs/component"
	"github.com/milk9111/mover/input"
)

// velocityStep is the velocity change per arrow key press.
const velocityStep = 1.0

// PlayerControllerSystem nudges the player's horizontal velocity by one step
// per arrow key press. Holding a key does not repeat.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) error {
	kb, ok := ecs.Resource[input.Keyboard](w)
	if !ok {
		return nil
	}

	player, err := ecs.Single(w, component.PlayerTagComponent.Kind(), component.VelocityComponent.Kind())
	if err != nil {
		return fmt.Errorf("find player: %w", err)
	}
	vel, ok := ecs.Get(w, player, component.VelocityComponent.Kind())
	if !ok {
		return nil
	}

	if kb.JustPressed(ebiten.KeyArrowRight) {
		vel.X += velocityStep
	}
	if kb.JustPressed(ebiten.KeyArrowLeft) {
		vel.X -= velocityStep
	}

	return nil
}

func (p *PlayerControllerSystem) Name() string {
	return "player_controller"
}
