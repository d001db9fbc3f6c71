package collision

import (
	"testing"

	"github.com/Carmen-Shannon/arena-go/common"
)

func TestBoxContainsPoint(t *testing.T) {
	box := NewBoxCollider(common.Vec3{}, common.Vec3{X: 1, Y: 2, Z: 3})

	tests := []struct {
		name string
		p    common.Vec3
		want bool
	}{
		{"center", common.Vec3{}, true},
		{"on face", common.Vec3{X: 1}, true},
		{"on corner", common.Vec3{X: 1, Y: 2, Z: 3}, true},
		{"outside x", common.Vec3{X: 1.01}, false},
		{"outside y", common.Vec3{Y: -2.5}, false},
		{"outside z", common.Vec3{Z: 3.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.ContainsPoint(tt.p); got != tt.want {
				t.Fatalf("ContainsPoint(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoxIntersectsRay(t *testing.T) {
	box := NewBoxCollider(common.Vec3{Z: 5}, common.Vec3{X: 1, Y: 1, Z: 1})
	forward := common.Vec3{Z: 1}

	tests := []struct {
		name    string
		origin  common.Vec3
		dir     common.Vec3
		maxDist float32
		want    bool
	}{
		{"head-on within reach", common.Vec3{}, forward, 10, true},
		{"head-on out of reach", common.Vec3{}, forward, 3, false},
		{"pointing away", common.Vec3{}, common.Vec3{Z: -1}, 10, false},
		{"parallel miss", common.Vec3{X: 5}, forward, 10, false},
		{"origin inside", common.Vec3{Z: 5}, forward, 0.1, true},
		{"diagonal graze", common.Vec3{X: -2, Z: 2}, common.Vec3{X: 0.70710678, Z: 0.70710678}, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.IntersectsRay(tt.origin, tt.dir, tt.maxDist); got != tt.want {
				t.Fatalf("IntersectsRay(%+v, %+v, %v) = %v, want %v",
					tt.origin, tt.dir, tt.maxDist, got, tt.want)
			}
		})
	}
}

func TestRegistryPrecedence(t *testing.T) {
	// Boss and wall overlap at the origin; boss must win.
	boss := NewBoxCollider(common.Vec3{}, common.Vec3{X: 1, Y: 1, Z: 1})
	wall := NewBoxCollider(common.Vec3{}, common.Vec3{X: 2, Y: 2, Z: 2})

	r := NewRegistry(WithWalls(wall), WithBoss(boss))

	hit, ok := r.TestPoint(common.Vec3{})
	if !ok || hit.Kind != HitBoss {
		t.Fatalf("overlapping point hit = %+v ok=%v, want boss", hit, ok)
	}

	// Outside the boss but inside the wall.
	hit, ok = r.TestPoint(common.Vec3{X: 1.5})
	if !ok || hit.Kind != HitWall || hit.WallIndex != 0 {
		t.Fatalf("wall point hit = %+v ok=%v, want wall index 0", hit, ok)
	}
}

func TestRegistryWallOrder(t *testing.T) {
	// Two overlapping walls; the first registered wins.
	first := NewBoxCollider(common.Vec3{}, common.Vec3{X: 1, Y: 1, Z: 1})
	second := NewBoxCollider(common.Vec3{}, common.Vec3{X: 1, Y: 1, Z: 1})

	r := NewRegistry()
	r.AddWall(first)
	r.AddWall(second)

	hit, ok := r.TestPoint(common.Vec3{})
	if !ok || hit.WallIndex != 0 {
		t.Fatalf("hit = %+v ok=%v, want wall index 0", hit, ok)
	}
}

func TestRegistrySkipsNilEntries(t *testing.T) {
	wall := NewBoxCollider(common.Vec3{}, common.Vec3{X: 1, Y: 1, Z: 1})

	r := NewRegistry(WithWalls(nil, wall))
	if r.WallCount() != 2 {
		t.Fatalf("WallCount = %d, want 2", r.WallCount())
	}

	hit, ok := r.TestPoint(common.Vec3{})
	if !ok || hit.WallIndex != 1 {
		t.Fatalf("hit = %+v ok=%v, want wall index 1 past nil entry", hit, ok)
	}

	// No boss set: queries must not panic and must miss cleanly.
	empty := NewRegistry()
	if _, ok := empty.TestPoint(common.Vec3{}); ok {
		t.Fatal("empty registry reported a hit")
	}
}

func TestRegistryRayFallback(t *testing.T) {
	// A thin wall the containment test misses but a short ray ahead catches.
	thin := NewBoxCollider(common.Vec3{Z: 0.05}, common.Vec3{X: 5, Y: 5, Z: 0.01})
	r := NewRegistry(WithWalls(thin))

	origin := common.Vec3{}
	dir := common.Vec3{Z: 1}

	if _, ok := r.TestPoint(origin); ok {
		t.Fatal("containment unexpectedly matched in front of the wall")
	}

	hit, ok := r.Test(origin, dir, 0.1)
	if !ok || hit.Kind != HitWall {
		t.Fatalf("ray fallback hit = %+v ok=%v, want wall", hit, ok)
	}

	// Ray too short to reach the wall.
	if _, ok := r.Test(origin, dir, 0.01); ok {
		t.Fatal("short ray unexpectedly reached the wall")
	}
}
