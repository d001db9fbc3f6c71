package camera

import (
	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/engine/input"
	"github.com/Carmen-Shannon/arena-go/engine/player"
)

// Mode identifies the camera state machine's current state.
type Mode uint8

const (
	// ModeThirdPerson orbits behind the player and smooths toward the orbit
	// target each tick.
	ModeThirdPerson Mode = iota
	// ModeFirstPersonAim pins the camera to the player's head and takes its
	// rotation directly from the player's yaw/pitch.
	ModeFirstPersonAim
)

// Pose is a camera placement: world position plus Euler rotation. Roll is
// carried for completeness but stays zero in both modes.
type Pose struct {
	Position         common.Vec3
	Yaw, Pitch, Roll float32
}

// Controller is the two-state camera machine. It owns the camera pose and
// updates it once per tick from the input snapshot and the player state.
// Mode transitions trigger on the aim button's press/release edges and are
// idempotent: repeated press edges while already aiming are no-ops.
type Controller interface {
	// Update advances the camera one tick.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous tick
	//   - in: this tick's input snapshot
	//   - st: the player state after movement integration
	Update(dt float32, in input.Snapshot, st player.State)

	// Mode returns the current state machine mode.
	//
	// Returns:
	//   - Mode: the current mode
	Mode() Mode

	// Pose returns the current camera pose.
	//
	// Returns:
	//   - Pose: the camera position and rotation
	Pose() Pose

	// LookTarget returns the point the camera is looking at: the player
	// position in third person, a point ahead of the camera while aiming.
	//
	// Returns:
	//   - common.Vec3: the world-space look target
	LookTarget() common.Vec3

	// Forward returns the camera's unit look direction.
	//
	// Returns:
	//   - common.Vec3: the look direction
	Forward() common.Vec3

	// Distance returns the current third-person orbit distance.
	//
	// Returns:
	//   - float32: the orbit distance
	Distance() float32

	// SetDistance sets the orbit distance directly, clamped to the
	// configured bounds.
	//
	// Parameters:
	//   - distance: the new orbit distance
	SetDistance(distance float32)

	// MinDistance returns the closest allowed orbit distance.
	//
	// Returns:
	//   - float32: the minimum distance
	MinDistance() float32

	// MaxDistance returns the farthest allowed orbit distance.
	//
	// Returns:
	//   - float32: the maximum distance
	MaxDistance() float32

	// PlayerVisible reports whether the third-person player mesh should be
	// drawn. False while aiming.
	//
	// Returns:
	//   - bool: true when the player mesh is visible
	PlayerVisible() bool
}
