// package collision provides the stateless query layer the combat loop uses
// to resolve bullet impacts: bounding-volume containment and short-range ray
// intersection over an externally-owned set of colliders.
package collision

import (
	"github.com/Carmen-Shannon/arena-go/common"
)

// Collider is the capability interface every collidable shape exposes.
// Colliders are owned by the scene; the core only queries them.
type Collider interface {
	// ContainsPoint reports whether a world-space point lies inside the
	// collider's bounding volume.
	//
	// Parameters:
	//   - p: the world-space point
	//
	// Returns:
	//   - bool: true if the point is inside
	ContainsPoint(p common.Vec3) bool

	// IntersectsRay reports whether a ray starting at origin hits the
	// collider within maxDist along dir. dir is expected to be unit length.
	//
	// Parameters:
	//   - origin: the ray origin
	//   - dir: the unit ray direction
	//   - maxDist: the maximum distance to test
	//
	// Returns:
	//   - bool: true if the ray intersects within maxDist
	IntersectsRay(origin, dir common.Vec3, maxDist float32) bool
}

// BoxCollider is an axis-aligned bounding box.
type BoxCollider struct {
	Min, Max common.Vec3
}

var _ Collider = BoxCollider{}

// NewBoxCollider creates an axis-aligned box collider from a center point and
// half extents.
//
// Parameters:
//   - center: the box center in world space
//   - halfExtents: half the box size along each axis (components must be >= 0)
//
// Returns:
//   - BoxCollider: the constructed collider
func NewBoxCollider(center, halfExtents common.Vec3) BoxCollider {
	return BoxCollider{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

func (b BoxCollider) ContainsPoint(p common.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectsRay uses the slab method: the ray's parametric overlap with the
// box is computed per axis and intersected. An axis-parallel ray misses when
// its origin lies outside that axis' slab.
func (b BoxCollider) IntersectsRay(origin, dir common.Vec3, maxDist float32) bool {
	tMin := float32(0)
	tMax := maxDist

	origins := [3]float32{origin.X, origin.Y, origin.Z}
	dirs := [3]float32{dir.X, dir.Y, dir.Z}
	mins := [3]float32{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float32{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		if dirs[i] > -1e-8 && dirs[i] < 1e-8 {
			if origins[i] < mins[i] || origins[i] > maxs[i] {
				return false
			}
			continue
		}

		inv := 1.0 / dirs[i]
		tNear := (mins[i] - origins[i]) * inv
		tFar := (maxs[i] - origins[i]) * inv
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}
		if tNear > tMin {
			tMin = tNear
		}
		if tFar < tMax {
			tMax = tFar
		}
		if tMin > tMax {
			return false
		}
	}

	return true
}

// HitKind classifies which collider group a query matched.
type HitKind uint8

const (
	// HitNone indicates no collider matched.
	HitNone HitKind = iota
	// HitWall indicates a wall collider matched.
	HitWall
	// HitBoss indicates the boss collider matched.
	HitBoss
)

// Hit describes the outcome of a registry query.
type Hit struct {
	// Kind is the matched collider group.
	Kind HitKind
	// WallIndex is the registration index of the matched wall; -1 for
	// non-wall hits.
	WallIndex int
}
