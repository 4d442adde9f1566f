package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mover/ecs"
	"github.com/milk9111/mover/ecs/component"
)

// MovementSystem adds the player's velocity to its position once per update.
// There is no delta time: velocity is in units per frame.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) error {
	player, err := ecs.Single(w,
		component.PlayerTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
	)
	if err != nil {
		return fmt.Errorf("find player: %w", err)
	}

	t, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	vel, _ := ecs.Get(w, player, component.VelocityComponent.Kind())

	pos := cp.Vector{X: t.X, Y: t.Y}.Add(vel.Vector)
	t.X = pos.X
	t.Y = pos.Y

	return nil
}

func (m *MovementSystem) Name() string {
	return "movement"
}
