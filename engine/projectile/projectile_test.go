package projectile

import (
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/engine/collision"
)

// fakeClock is a hand-advanced time source for fire-rate tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestFireSpawnsBullet(t *testing.T) {
	s := NewSystem(WithClock(newFakeClock()), WithBulletSpeed(1.5), WithBulletLifespan(200))

	if !s.Fire(common.Vec3{X: 1, Y: 2, Z: 3}, common.Vec3{Z: 1}) {
		t.Fatal("expected the first shot to spawn")
	}
	if got := s.Count(); got != 1 {
		t.Fatalf("expected 1 live bullet, got %d", got)
	}

	b := s.Bullets()[0]
	if b.ID == 0 {
		t.Error("expected a nonzero bullet ID")
	}
	if b.Position != (common.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("expected spawn at the muzzle, got %+v", b.Position)
	}
	if b.Speed != 1.5 || b.Lifespan != 200 {
		t.Errorf("expected speed 1.5 and lifespan 200, got %v and %v", b.Speed, b.Lifespan)
	}
}

func TestFireNormalizesDirection(t *testing.T) {
	s := NewSystem(WithClock(newFakeClock()))

	if !s.Fire(common.Vec3{}, common.Vec3{X: 3, Y: 0, Z: 4}) {
		t.Fatal("expected the shot to spawn")
	}
	d := s.Bullets()[0].Direction
	length := math.Sqrt(float64(d.X*d.X + d.Y*d.Y + d.Z*d.Z))
	if math.Abs(length-1) > 1e-5 {
		t.Errorf("expected a unit direction, got length %v", length)
	}
}

func TestFireRejectsZeroDirection(t *testing.T) {
	s := NewSystem(WithClock(newFakeClock()))

	if s.Fire(common.Vec3{}, common.Vec3{}) {
		t.Fatal("expected a zero direction to be rejected")
	}
	if got := s.Count(); got != 0 {
		t.Fatalf("expected no bullets, got %d", got)
	}

	// A rejected shot must not consume the fire-rate window.
	if !s.Fire(common.Vec3{}, common.Vec3{Z: 1}) {
		t.Fatal("expected the next valid shot to spawn immediately")
	}
}

func TestFireRateGating(t *testing.T) {
	clock := newFakeClock()
	s := NewSystem(WithClock(clock), WithFireInterval(250*time.Millisecond))

	fire := func() bool { return s.Fire(common.Vec3{}, common.Vec3{Z: 1}) }

	if !fire() {
		t.Fatal("expected the shot at t=0 to spawn")
	}
	clock.advance(100 * time.Millisecond)
	if fire() {
		t.Error("expected the shot at t=100ms to be rejected")
	}
	clock.advance(80 * time.Millisecond)
	if fire() {
		t.Error("expected the shot at t=180ms to be rejected")
	}
	clock.advance(70 * time.Millisecond)
	if !fire() {
		t.Error("expected the shot at t=250ms to spawn")
	}
	if got := s.Count(); got != 2 {
		t.Fatalf("expected 2 live bullets, got %d", got)
	}
}

func TestHeldFireSpawnsAtIntervalMultiples(t *testing.T) {
	clock := newFakeClock()
	s := NewSystem(WithClock(clock), WithFireInterval(100*time.Millisecond))

	// Holding the trigger attempts a shot every 50ms tick for 250ms. The
	// cooldown admits t = 0, 100, and 200, including the one landing exactly
	// on an interval boundary.
	spawned := 0
	for tick := 0; tick <= 5; tick++ {
		if s.Fire(common.Vec3{}, common.Vec3{Z: 1}) {
			spawned++
		}
		clock.advance(50 * time.Millisecond)
	}
	if spawned != 3 {
		t.Fatalf("expected 3 shots over 250ms at 100ms interval, got %d", spawned)
	}
}

func TestBulletTravelsStraight(t *testing.T) {
	s := NewSystem(WithClock(newFakeClock()), WithBulletSpeed(1.5))

	s.Fire(common.Vec3{}, common.Vec3{Z: 1})
	for i := 0; i < 4; i++ {
		s.Update(1.0)
	}

	b := s.Bullets()[0]
	if math.Abs(float64(b.Position.Z-6.0)) > 1e-5 {
		t.Errorf("expected Z 6.0 after 4 ticks at speed 1.5, got %v", b.Position.Z)
	}
	if b.Position.X != 0 || b.Position.Y != 0 {
		t.Errorf("expected travel along Z only, got %+v", b.Position)
	}
}

func TestLifespanExpiryRemovesBullet(t *testing.T) {
	s := NewSystem(WithClock(newFakeClock()), WithBulletLifespan(3))

	s.Fire(common.Vec3{}, common.Vec3{Z: 1})
	s.Update(1.0)
	s.Update(1.0)
	if got := s.Count(); got != 1 {
		t.Fatalf("expected the bullet alive at lifespan 1, got count %d", got)
	}
	s.Update(1.0)
	if got := s.Count(); got != 0 {
		t.Fatalf("expected the bullet removed at lifespan 0, got count %d", got)
	}
}

func TestWallImpactRemovesSilently(t *testing.T) {
	wall := collision.NewBoxCollider(common.Vec3{Z: 5}, common.Vec3{X: 1, Y: 1, Z: 1})
	registry := collision.NewRegistry(collision.WithWalls(wall))
	hits := 0
	s := NewSystem(
		WithClock(newFakeClock()),
		WithRegistry(registry),
		WithBossHitCallback(func(Bullet) { hits++ }),
		WithBulletSpeed(1.0),
	)

	// Wall at Z in [4, 6]; the bullet reaches it on the fifth tick.
	s.Fire(common.Vec3{}, common.Vec3{Z: 1})
	for i := 0; i < 6; i++ {
		s.Update(1.0)
	}

	if got := s.Count(); got != 0 {
		t.Fatalf("expected the bullet consumed by the wall, got count %d", got)
	}
	if hits != 0 {
		t.Errorf("expected no boss callback for a wall impact, got %d", hits)
	}
}

func TestBossImpactFiresCallbackOnce(t *testing.T) {
	boss := collision.NewBoxCollider(common.Vec3{Z: 5}, common.Vec3{X: 1, Y: 1, Z: 1})
	registry := collision.NewRegistry(collision.WithBoss(boss))

	var hits []Bullet
	s := NewSystem(
		WithClock(newFakeClock()),
		WithRegistry(registry),
		WithBossHitCallback(func(b Bullet) { hits = append(hits, b) }),
		WithBulletSpeed(1.0),
	)

	s.Fire(common.Vec3{}, common.Vec3{Z: 1})
	for i := 0; i < 10; i++ {
		s.Update(1.0)
	}

	if len(hits) != 1 {
		t.Fatalf("expected exactly one boss hit, got %d", len(hits))
	}
	if got := s.Count(); got != 0 {
		t.Fatalf("expected the bullet consumed by the boss, got count %d", got)
	}
}

func TestThinWallCaughtByShortRay(t *testing.T) {
	// A wall too thin for per-tick containment sampling at speed 1.0. The
	// short-range ray phase catches the approach instead.
	thin := collision.BoxCollider{
		Min: common.Vec3{X: -1, Y: -1, Z: 4.49},
		Max: common.Vec3{X: 1, Y: 1, Z: 4.51},
	}
	registry := collision.NewRegistry(collision.WithWalls(thin))
	s := NewSystem(
		WithClock(newFakeClock()),
		WithRegistry(registry),
		WithBulletSpeed(1.0),
		WithRayEpsilon(0.5),
	)

	s.Fire(common.Vec3{}, common.Vec3{Z: 1})
	for i := 0; i < 10; i++ {
		s.Update(1.0)
	}

	if got := s.Count(); got != 0 {
		t.Fatalf("expected the thin wall to consume the bullet, got count %d", got)
	}
}

func TestNoRegistryBulletsFlyFree(t *testing.T) {
	s := NewSystem(WithClock(newFakeClock()), WithBulletLifespan(5))

	s.Fire(common.Vec3{}, common.Vec3{Z: 1})
	for i := 0; i < 4; i++ {
		s.Update(1.0)
	}
	if got := s.Count(); got != 1 {
		t.Fatalf("expected the bullet alive with no registry, got count %d", got)
	}
}

func TestClearDropsBulletsWithoutCallbacks(t *testing.T) {
	clock := newFakeClock()
	hits := 0
	s := NewSystem(
		WithClock(clock),
		WithFireInterval(100*time.Millisecond),
		WithBossHitCallback(func(Bullet) { hits++ }),
	)

	s.Fire(common.Vec3{}, common.Vec3{Z: 1})
	clock.advance(100 * time.Millisecond)
	s.Fire(common.Vec3{}, common.Vec3{X: 1})

	s.Clear()
	if got := s.Count(); got != 0 {
		t.Fatalf("expected no bullets after Clear, got %d", got)
	}
	if hits != 0 {
		t.Errorf("expected no callbacks from Clear, got %d", hits)
	}
}

func TestBulletIDsAreUnique(t *testing.T) {
	clock := newFakeClock()
	s := NewSystem(WithClock(clock), WithFireInterval(time.Millisecond))

	seen := map[uint64]bool{}
	for i := 0; i < 5; i++ {
		if !s.Fire(common.Vec3{}, common.Vec3{Z: 1}) {
			t.Fatalf("expected shot %d to spawn", i)
		}
		clock.advance(time.Millisecond)
	}
	for _, b := range s.Bullets() {
		if seen[b.ID] {
			t.Fatalf("duplicate bullet ID %d", b.ID)
		}
		seen[b.ID] = true
	}
}
