package scene

import (
	"github.com/Carmen-Shannon/arena-go/engine/camera"
	"github.com/Carmen-Shannon/arena-go/engine/game_object"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithCamera attaches a camera to the scene.
//
// Parameters:
//   - cam: the camera to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.cam = cam
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs; wall and boss colliders are
// wired into the collision registry the same way Add wires them.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.addLocked(obj)
		}
	}
}

// WithTransformWorkers sets the number of worker goroutines used for the
// parallel model matrix refresh. Defaults to runtime.NumCPU()-1.
// Higher values may improve throughput with many objects; lower values reduce
// scheduling overhead for simple scenes.
//
// Parameters:
//   - n: the number of transform workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTransformWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.transformWorkers = n
	}
}
