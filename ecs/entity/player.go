package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mover/ecs"
	"github.com/milk9111/mover/ecs/component"
	"github.com/milk9111/mover/params"
	"golang.org/x/image/colornames"
)

const playerRenderLayer = 1

// NewPlayer spawns the player at the position, scale and velocity in p.
func NewPlayer(w *ecs.World, p params.GameParameters) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("player: world is nil")
	}
	player := ecs.CreateEntity(w)
	if err := addPlayerComponents(w, player, p); err != nil {
		ecs.DestroyEntity(w, player)
		return 0, err
	}
	return player, nil
}

func addPlayerComponents(w *ecs.World, e ecs.Entity, p params.GameParameters) error {
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return fmt.Errorf("player: add player tag: %w", err)
	}

	pos, scale := p.InitialPlayerPosition, p.InitialPlayerScale
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      pos.X,
		Y:      pos.Y,
		Z:      pos.Z,
		ScaleX: scale.X,
		ScaleY: scale.Y,
		ScaleZ: scale.Z,
	}); err != nil {
		return fmt.Errorf("player: add transform: %w", err)
	}

	vel := p.InitialPlayerVelocity
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{
		Vector: cp.Vector{X: vel.X, Y: vel.Y},
	}); err != nil {
		return fmt.Errorf("player: add velocity: %w", err)
	}

	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  colornames.Lightskyblue,
		Width:  1,
		Height: 1,
	}); err != nil {
		return fmt.Errorf("player: add sprite: %w", err)
	}

	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: playerRenderLayer}); err != nil {
		return fmt.Errorf("player: add render layer: %w", err)
	}

	return nil
}

// Players returns every live player entity.
func Players(w *ecs.World) []ecs.Entity {
	return w.Query(component.PlayerTagComponent.Kind())
}

// DestroyPlayers removes every player and returns how many were removed.
func DestroyPlayers(w *ecs.World) int {
	n := 0
	for _, e := range Players(w) {
		if ecs.DestroyEntity(w, e) {
			n++
		}
	}
	return n
}
