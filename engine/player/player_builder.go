package player

import "github.com/Carmen-Shannon/arena-go/common"

// IntegratorOption is a functional option for configuring an Integrator.
type IntegratorOption func(*integrator)

// WithBaseSpeed sets the walk speed in world units per second.
//
// Parameters:
//   - speed: the base speed (values <= 0 keep the default)
//
// Returns:
//   - IntegratorOption: functional option to set the base speed
func WithBaseSpeed(speed float32) IntegratorOption {
	return func(it *integrator) {
		if speed > 0 {
			it.baseSpeed = speed
		}
	}
}

// WithCrouchMultiplier sets the crouched speed multiplier.
//
// Parameters:
//   - multiplier: the multiplier, expected in (0, 1)
//
// Returns:
//   - IntegratorOption: functional option to set the multiplier
func WithCrouchMultiplier(multiplier float32) IntegratorOption {
	return func(it *integrator) {
		if multiplier > 0 && multiplier < 1 {
			it.crouchMultiplier = multiplier
		}
	}
}

// WithJumpForce sets the initial vertical velocity applied on a jump.
//
// Parameters:
//   - force: the jump impulse (values <= 0 keep the default)
//
// Returns:
//   - IntegratorOption: functional option to set the jump force
func WithJumpForce(force float32) IntegratorOption {
	return func(it *integrator) {
		if force > 0 {
			it.jumpForce = force
		}
	}
}

// WithGravity sets the downward acceleration.
//
// Parameters:
//   - gravity: the gravity magnitude (values <= 0 keep the default)
//
// Returns:
//   - IntegratorOption: functional option to set the gravity
func WithGravity(gravity float32) IntegratorOption {
	return func(it *integrator) {
		if gravity > 0 {
			it.gravity = gravity
		}
	}
}

// WithGroundLevel sets the Y coordinate the player stands on.
//
// Parameters:
//   - level: the ground Y coordinate
//
// Returns:
//   - IntegratorOption: functional option to set the ground level
func WithGroundLevel(level float32) IntegratorOption {
	return func(it *integrator) {
		it.groundLevel = level
	}
}

// WithMouseSensitivity sets the mouse-delta-to-radians conversion factor.
//
// Parameters:
//   - sensitivity: radians per pixel of mouse movement
//
// Returns:
//   - IntegratorOption: functional option to set the sensitivity
func WithMouseSensitivity(sensitivity float32) IntegratorOption {
	return func(it *integrator) {
		if sensitivity > 0 {
			it.mouseSensitivity = sensitivity
		}
	}
}

// WithSpawnPosition sets the horizontal spawn position. The vertical
// component is always snapped to the ground level.
//
// Parameters:
//   - position: the spawn position
//
// Returns:
//   - IntegratorOption: functional option to set the spawn position
func WithSpawnPosition(position common.Vec3) IntegratorOption {
	return func(it *integrator) {
		it.spawnPosition = position
	}
}
