package collision

import (
	"sync"

	"github.com/Carmen-Shannon/arena-go/common"
)

// Registry holds the queryable collider set: an ordered list of wall
// colliders plus a single boss collider. The registry never mutates its
// colliders; absent (nil) entries are skipped silently.
type Registry interface {
	// AddWall appends a wall collider. Registration order determines wall
	// query precedence.
	//
	// Parameters:
	//   - c: the wall collider (nil entries are tolerated and skipped)
	AddWall(c Collider)

	// SetBoss sets the boss collider. Pass nil to clear it.
	//
	// Parameters:
	//   - c: the boss collider
	SetBoss(c Collider)

	// RemoveWall clears the wall entry at the given registration index. The
	// slot stays reserved so later wall indices remain stable.
	//
	// Parameters:
	//   - i: the wall registration index
	RemoveWall(i int)

	// Boss returns the boss collider, or nil if unset.
	//
	// Returns:
	//   - Collider: the boss collider or nil
	Boss() Collider

	// WallCount returns the number of registered wall entries, including nil
	// placeholders.
	//
	// Returns:
	//   - int: the wall entry count
	WallCount() int

	// TestPoint queries containment only: boss first, then walls in
	// registration order.
	//
	// Parameters:
	//   - p: the world-space point
	//
	// Returns:
	//   - Hit: the match description (Kind == HitNone when nothing matched)
	//   - bool: true if any collider matched
	TestPoint(p common.Vec3) (Hit, bool)

	// TestRay queries ray intersection only: boss first, then walls in
	// registration order.
	//
	// Parameters:
	//   - origin: the ray origin
	//   - dir: the unit ray direction
	//   - maxDist: the maximum distance to test
	//
	// Returns:
	//   - Hit: the match description
	//   - bool: true if any collider matched
	TestRay(origin, dir common.Vec3, maxDist float32) (Hit, bool)

	// Test runs the full precedence chain for a moving point: boss
	// containment, wall containment in order, then a short-range ray cast
	// (boss first, then walls) to catch edge cases containment misses.
	//
	// Parameters:
	//   - p: the world-space point
	//   - dir: the unit travel direction for the ray phase
	//   - rayReach: the short-range ray length
	//
	// Returns:
	//   - Hit: the first match by precedence
	//   - bool: true if any collider matched
	Test(p, dir common.Vec3, rayReach float32) (Hit, bool)
}

// registry is the single implementation of Registry. A mutex guards the
// collider slices because the host may register colliders while the tick
// goroutine queries them.
type registry struct {
	mu    sync.RWMutex
	walls []Collider
	boss  Collider
}

var _ Registry = &registry{}

// NewRegistry creates a collider registry with the provided options.
//
// Parameters:
//   - options: functional options to configure the registry
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(options ...RegistryOption) Registry {
	r := &registry{}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *registry) AddWall(c Collider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.walls = append(r.walls, c)
}

func (r *registry) RemoveWall(i int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i >= 0 && i < len(r.walls) {
		r.walls[i] = nil
	}
}

func (r *registry) SetBoss(c Collider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boss = c
}

func (r *registry) Boss() Collider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.boss
}

func (r *registry) WallCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.walls)
}

func (r *registry) TestPoint(p common.Vec3) (Hit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.testPointLocked(p)
}

func (r *registry) TestRay(origin, dir common.Vec3, maxDist float32) (Hit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.testRayLocked(origin, dir, maxDist)
}

func (r *registry) Test(p, dir common.Vec3, rayReach float32) (Hit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if hit, ok := r.testPointLocked(p); ok {
		return hit, true
	}
	return r.testRayLocked(p, dir, rayReach)
}

// testPointLocked runs the containment precedence chain. Caller must hold the
// lock.
func (r *registry) testPointLocked(p common.Vec3) (Hit, bool) {
	if r.boss != nil && r.boss.ContainsPoint(p) {
		return Hit{Kind: HitBoss, WallIndex: -1}, true
	}
	for i, w := range r.walls {
		if w == nil {
			continue
		}
		if w.ContainsPoint(p) {
			return Hit{Kind: HitWall, WallIndex: i}, true
		}
	}
	return Hit{Kind: HitNone, WallIndex: -1}, false
}

// testRayLocked runs the ray precedence chain. Caller must hold the lock.
func (r *registry) testRayLocked(origin, dir common.Vec3, maxDist float32) (Hit, bool) {
	if r.boss != nil && r.boss.IntersectsRay(origin, dir, maxDist) {
		return Hit{Kind: HitBoss, WallIndex: -1}, true
	}
	for i, w := range r.walls {
		if w == nil {
			continue
		}
		if w.IntersectsRay(origin, dir, maxDist) {
			return Hit{Kind: HitWall, WallIndex: i}, true
		}
	}
	return Hit{Kind: HitNone, WallIndex: -1}, false
}
