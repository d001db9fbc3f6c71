package game

import (
	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/engine/input"
	"github.com/Carmen-Shannon/arena-go/engine/projectile"
	"github.com/Carmen-Shannon/arena-go/engine/scene"
)

// ControllerOption is a functional option for configuring a game Controller.
type ControllerOption func(*controllerImpl)

// WithCollector supplies an input collector instead of the default one built
// from the configuration.
//
// Parameters:
//   - collector: the input collector
//
// Returns:
//   - ControllerOption: a function that sets the collector
func WithCollector(collector input.Collector) ControllerOption {
	return func(c *controllerImpl) {
		c.collector = collector
	}
}

// WithScene attaches the scene the controller synchronizes each tick. The
// scene's collision registry becomes the projectile system's hit source, and
// the first player-tagged object tracks the integrator's state.
//
// Parameters:
//   - scn: the scene to attach
//
// Returns:
//   - ControllerOption: a function that attaches the scene
func WithScene(scn scene.Scene) ControllerOption {
	return func(c *controllerImpl) {
		c.scn = scn
	}
}

// WithBossHitCallback registers the function invoked when a bullet strikes
// the boss.
//
// Parameters:
//   - fn: the callback
//
// Returns:
//   - ControllerOption: a function that registers the callback
func WithBossHitCallback(fn projectile.BossHitFunc) ControllerOption {
	return func(c *controllerImpl) {
		c.onBossHit = fn
	}
}

// WithClock swaps the time source used for fire-rate gating.
//
// Parameters:
//   - clock: the time source
//
// Returns:
//   - ControllerOption: a function that sets the clock
func WithClock(clock projectile.Clock) ControllerOption {
	return func(c *controllerImpl) {
		c.clock = clock
	}
}

// WithSpawnPosition sets the player's spawn position.
//
// Parameters:
//   - position: the world-space spawn position
//
// Returns:
//   - ControllerOption: a function that sets the spawn position
func WithSpawnPosition(position common.Vec3) ControllerOption {
	return func(c *controllerImpl) {
		c.spawnPosition = position
	}
}

// WithWeaponSocket sets the hip-fire muzzle offset in the player's local
// frame: X along right, Y up, Z along forward.
//
// Parameters:
//   - socket: the local-frame offset
//
// Returns:
//   - ControllerOption: a function that sets the weapon socket
func WithWeaponSocket(socket common.Vec3) ControllerOption {
	return func(c *controllerImpl) {
		c.weaponSocket = socket
	}
}
