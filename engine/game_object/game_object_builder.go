package game_object

import (
	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/engine/collision"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the human-readable name of the GameObject.
//
// Parameters:
//   - name: the object name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithRole tags the GameObject with the combat role it plays.
//
// Parameters:
//   - role: the role tag
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the role
func WithRole(role Role) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.role = role
	}
}

// WithPosition sets the initial world-space position of the GameObject.
//
// Parameters:
//   - p: the position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(p common.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = p
	}
}

// WithRotation sets the initial Euler rotation of the GameObject in radians.
//
// Parameters:
//   - r: the rotation angles
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(r common.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = r
	}
}

// WithScale sets the initial per-axis scale of the GameObject.
//
// Parameters:
//   - s: the scale factors
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(s common.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = s
	}
}

// WithCollider attaches a collider to the GameObject. Objects tagged RoleWall
// or RoleBoss feed their colliders into the scene's collision registry.
//
// Parameters:
//   - c: the collider to attach
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the collider
func WithCollider(c collision.Collider) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.collider = c
	}
}
