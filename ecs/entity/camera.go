package entity

import (
	"fmt"

	"github.com/milk9111/mover/ecs"
	"github.com/milk9111/mover/ecs/component"
)

// NewCamera spawns a camera at the world origin.
func NewCamera(w *ecs.World) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("camera: world is nil")
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), component.NewTransform(0, 0, 0)); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{Zoom: 1}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}

	return camera, nil
}
