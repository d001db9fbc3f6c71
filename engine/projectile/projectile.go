// package projectile owns the bullet pool: rate-gated spawning, per-tick
// stepping, impact resolution against the collision registry, and lifespan
// expiry.
package projectile

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/engine/collision"
)

// Bullet is a live projectile. Bullets are value snapshots when returned from
// the system; mutating a returned Bullet has no effect on the pool.
type Bullet struct {
	// ID is unique for the lifetime of the system, assigned at fire time.
	ID uint64
	// Position is the bullet's current world-space position.
	Position common.Vec3
	// Direction is the unit travel direction, fixed at fire time.
	Direction common.Vec3
	// Speed is the travel speed in world units per tick unit.
	Speed float32
	// Lifespan is the remaining lifetime in tick units. The bullet is removed
	// when it reaches zero.
	Lifespan float32
}

// BossHitFunc is invoked exactly once per bullet that strikes the boss
// collider. It runs on the tick goroutine; keep it cheap.
type BossHitFunc func(b Bullet)

// System owns all live bullets and advances them once per tick. Wall impacts
// remove the bullet silently; boss impacts remove it and fire the registered
// callback. A system with no collision registry steps bullets through empty
// space until their lifespan expires.
type System interface {
	// Fire attempts to spawn a bullet. The spawn is rejected while the
	// fire-rate window from the previous successful shot is still open.
	//
	// Parameters:
	//   - origin: the muzzle position
	//   - dir: the travel direction (normalized internally)
	//
	// Returns:
	//   - bool: true if a bullet was spawned
	Fire(origin, dir common.Vec3) bool

	// Update advances every live bullet by one tick: impact test at the
	// current position, advance, impact test at the new position, then
	// lifespan decrement.
	//
	// Parameters:
	//   - dt: elapsed tick units since the previous update
	Update(dt float32)

	// Bullets returns a snapshot of all live bullets.
	//
	// Returns:
	//   - []Bullet: copies of the live bullets in spawn order
	Bullets() []Bullet

	// Count returns the number of live bullets.
	//
	// Returns:
	//   - int: the live bullet count
	Count() int

	// Clear removes all live bullets without firing any callbacks.
	Clear()
}

// systemImpl is the single implementation of System.
type systemImpl struct {
	mu *sync.Mutex

	bullets []Bullet
	nextID  uint64

	registry  collision.Registry
	onBossHit BossHitFunc

	clock        Clock
	fireInterval time.Duration
	lastFire     time.Time
	hasFired     bool

	bulletSpeed    float32
	bulletLifespan float32
	rayEpsilon     float32
}

var _ System = &systemImpl{}

// NewSystem creates a projectile system with the specified options.
//
// Parameters:
//   - options: functional options to configure the system
//
// Returns:
//   - System: the newly created system
func NewSystem(options ...SystemOption) System {
	s := &systemImpl{
		mu:             &sync.Mutex{},
		clock:          systemClock{},
		fireInterval:   500 * time.Millisecond,
		bulletSpeed:    1.5,
		bulletLifespan: 200,
		rayEpsilon:     0.5,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *systemImpl) Fire(origin, dir common.Vec3) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.hasFired && now.Sub(s.lastFire) < s.fireInterval {
		return false
	}

	direction := dir.Normalize()
	if direction.LengthSq() == 0 {
		return false
	}

	s.lastFire = now
	s.hasFired = true
	s.nextID++
	s.bullets = append(s.bullets, Bullet{
		ID:        s.nextID,
		Position:  origin,
		Direction: direction,
		Speed:     s.bulletSpeed,
		Lifespan:  s.bulletLifespan,
	})
	return true
}

func (s *systemImpl) Update(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	survivors := s.bullets[:0]
	for _, b := range s.bullets {
		if s.resolveImpact(b) {
			continue
		}

		b.Position = b.Position.Add(b.Direction.Scale(b.Speed * dt))
		if s.resolveImpact(b) {
			continue
		}

		b.Lifespan -= dt
		if b.Lifespan <= 0 {
			continue
		}
		survivors = append(survivors, b)
	}

	// Zero the tail so removed bullets don't linger in the backing array.
	for i := len(survivors); i < len(s.bullets); i++ {
		s.bullets[i] = Bullet{}
	}
	s.bullets = survivors
}

// resolveImpact tests one bullet against the registry and reports whether it
// was consumed. Boss hits fire the callback; wall hits are silent. Caller must
// hold the mutex.
func (s *systemImpl) resolveImpact(b Bullet) bool {
	if s.registry == nil {
		return false
	}

	hit, ok := s.registry.Test(b.Position, b.Direction, s.rayEpsilon)
	if !ok {
		return false
	}
	if hit.Kind == collision.HitBoss && s.onBossHit != nil {
		s.onBossHit(b)
	}
	return true
}

func (s *systemImpl) Bullets() []Bullet {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Bullet, len(s.bullets))
	copy(out, s.bullets)
	return out
}

func (s *systemImpl) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bullets)
}

func (s *systemImpl) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bullets = nil
}
