package projectile

import (
	"time"

	"github.com/Carmen-Shannon/arena-go/engine/collision"
)

// SystemOption is a functional option for configuring a System.
type SystemOption func(*systemImpl)

// WithRegistry attaches the collision registry bullets are tested against.
// Without one, bullets fly until their lifespan expires.
//
// Parameters:
//   - registry: the collision registry
//
// Returns:
//   - SystemOption: a function that attaches the registry
func WithRegistry(registry collision.Registry) SystemOption {
	return func(s *systemImpl) {
		s.registry = registry
	}
}

// WithBossHitCallback registers the function invoked once per bullet that
// strikes the boss.
//
// Parameters:
//   - fn: the callback
//
// Returns:
//   - SystemOption: a function that registers the callback
func WithBossHitCallback(fn BossHitFunc) SystemOption {
	return func(s *systemImpl) {
		s.onBossHit = fn
	}
}

// WithFireInterval sets the minimum wall-clock gap between successful shots.
//
// Parameters:
//   - interval: the fire-rate window
//
// Returns:
//   - SystemOption: a function that sets the fire interval
func WithFireInterval(interval time.Duration) SystemOption {
	return func(s *systemImpl) {
		if interval > 0 {
			s.fireInterval = interval
		}
	}
}

// WithBulletSpeed sets the travel speed of spawned bullets.
//
// Parameters:
//   - speed: world units per tick unit
//
// Returns:
//   - SystemOption: a function that sets the bullet speed
func WithBulletSpeed(speed float32) SystemOption {
	return func(s *systemImpl) {
		if speed > 0 {
			s.bulletSpeed = speed
		}
	}
}

// WithBulletLifespan sets the lifetime of spawned bullets in tick units.
//
// Parameters:
//   - lifespan: the bullet lifetime
//
// Returns:
//   - SystemOption: a function that sets the bullet lifespan
func WithBulletLifespan(lifespan float32) SystemOption {
	return func(s *systemImpl) {
		if lifespan > 0 {
			s.bulletLifespan = lifespan
		}
	}
}

// WithClock swaps the time source used for fire-rate gating.
//
// Parameters:
//   - clock: the time source
//
// Returns:
//   - SystemOption: a function that sets the clock
func WithClock(clock Clock) SystemOption {
	return func(s *systemImpl) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithRayEpsilon sets the short-range ray length used to catch impacts that
// point containment misses on thin colliders.
//
// Parameters:
//   - epsilon: the ray reach in world units
//
// Returns:
//   - SystemOption: a function that sets the ray reach
func WithRayEpsilon(epsilon float32) SystemOption {
	return func(s *systemImpl) {
		if epsilon > 0 {
			s.rayEpsilon = epsilon
		}
	}
}
