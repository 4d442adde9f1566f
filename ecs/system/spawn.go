package system

import (
	"log"

	"github.com/milk9111/mover/ecs"
	"github.com/milk9111/mover/ecs/entity"
	"github.com/milk9111/mover/params"
)

// SpawnPlayerSystem creates the player from the GameParameters resource, or
// from the defaults when none was inserted.
type SpawnPlayerSystem struct{}

func NewSpawnPlayerSystem() *SpawnPlayerSystem {
	return &SpawnPlayerSystem{}
}

func (s *SpawnPlayerSystem) Update(w *ecs.World) error {
	p := params.Default()
	if res, ok := ecs.Resource[params.GameParameters](w); ok {
		p = *res
	}

	player, err := entity.NewPlayer(w, p)
	if err != nil {
		return err
	}
	log.Printf("spawned player %s at (%g, %g, %g)", player,
		p.InitialPlayerPosition.X, p.InitialPlayerPosition.Y, p.InitialPlayerPosition.Z)
	return nil
}

func (s *SpawnPlayerSystem) Name() string {
	return "spawn_player"
}

type SpawnCameraSystem struct{}

func NewSpawnCameraSystem() *SpawnCameraSystem {
	return &SpawnCameraSystem{}
}

func (s *SpawnCameraSystem) Update(w *ecs.World) error {
	_, err := entity.NewCamera(w)
	return err
}

func (s *SpawnCameraSystem) Name() string {
	return "spawn_camera"
}
