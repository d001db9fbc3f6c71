package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/engine/input"
	"github.com/Carmen-Shannon/arena-go/engine/player"
)

const testEpsilon = 1e-5

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < testEpsilon
}

func posesEqual(a, b Pose) bool {
	return almostEqual(a.Position.X, b.Position.X) &&
		almostEqual(a.Position.Y, b.Position.Y) &&
		almostEqual(a.Position.Z, b.Position.Z) &&
		almostEqual(a.Yaw, b.Yaw) &&
		almostEqual(a.Pitch, b.Pitch) &&
		almostEqual(a.Roll, b.Roll)
}

// settle runs enough empty-input ticks for the smoothing to converge on the
// orbit target.
func settle(c Controller, st player.State) {
	for i := 0; i < 500; i++ {
		c.Update(1.0, input.Snapshot{}, st)
	}
}

func TestStartsInThirdPersonWithPlayerVisible(t *testing.T) {
	c := NewController()
	if c.Mode() != ModeThirdPerson {
		t.Fatalf("expected initial mode %v, got %v", ModeThirdPerson, c.Mode())
	}
	if !c.PlayerVisible() {
		t.Fatal("expected the player mesh to be visible initially")
	}
}

func TestAimEntryPinsCameraToHead(t *testing.T) {
	c := NewController(WithHeadOffset(1.6))
	st := player.State{
		Position: common.Vec3{X: 2, Y: 0, Z: 3},
		Yaw:      0.4,
		Pitch:    -0.2,
		Grounded: true,
	}

	c.Update(1.0, input.Snapshot{AimPressed: true}, st)

	if c.Mode() != ModeFirstPersonAim {
		t.Fatalf("expected aim mode after press edge, got %v", c.Mode())
	}
	if c.PlayerVisible() {
		t.Fatal("expected the player mesh to be hidden while aiming")
	}

	pose := c.Pose()
	wantPos := common.Vec3{X: 2, Y: 1.6, Z: 3}
	if !almostEqual(pose.Position.X, wantPos.X) ||
		!almostEqual(pose.Position.Y, wantPos.Y) ||
		!almostEqual(pose.Position.Z, wantPos.Z) {
		t.Errorf("expected aim position %+v, got %+v", wantPos, pose.Position)
	}
	if !almostEqual(pose.Yaw, st.Yaw) || !almostEqual(pose.Pitch, st.Pitch) {
		t.Errorf("expected aim rotation (%v, %v), got (%v, %v)", st.Yaw, st.Pitch, pose.Yaw, pose.Pitch)
	}
}

func TestAimExitRestoresSavedPoseExactly(t *testing.T) {
	c := NewController()
	st := player.State{Position: common.Vec3{X: 1, Y: 0, Z: -4}, Yaw: 0.7, Grounded: true}

	settle(c, st)
	before := c.Pose()

	c.Update(1.0, input.Snapshot{AimPressed: true}, st)
	// Hold aim for a while; the aim pose drifts with the player's view.
	for i := 0; i < 10; i++ {
		c.Update(1.0, input.Snapshot{MouseDX: 3}, st)
	}
	c.Update(1.0, input.Snapshot{AimReleased: true}, st)

	if c.Mode() != ModeThirdPerson {
		t.Fatalf("expected third-person mode after release, got %v", c.Mode())
	}
	if !c.PlayerVisible() {
		t.Fatal("expected the player mesh to be visible after leaving aim")
	}
	if after := c.Pose(); !posesEqual(before, after) {
		t.Errorf("expected restored pose %+v, got %+v", before, after)
	}
}

func TestRepeatedAimPressIsIdempotent(t *testing.T) {
	c := NewController()
	st := player.State{Position: common.Vec3{Z: 2}, Grounded: true}

	settle(c, st)
	before := c.Pose()

	c.Update(1.0, input.Snapshot{AimPressed: true}, st)
	// Extra press edges while already aiming must not overwrite the restore
	// point with the aim pose.
	c.Update(1.0, input.Snapshot{AimPressed: true}, st)
	c.Update(1.0, input.Snapshot{AimPressed: true}, st)
	c.Update(1.0, input.Snapshot{AimReleased: true}, st)

	if after := c.Pose(); !posesEqual(before, after) {
		t.Errorf("expected restored pose %+v, got %+v", before, after)
	}
}

func TestAimExitWithoutEntryFallsBackToOrbit(t *testing.T) {
	c := NewController()
	st := player.State{Position: common.Vec3{X: 5}, Grounded: true}

	// A release edge with no saved pose must still land in a sane
	// third-person placement.
	c.Update(1.0, input.Snapshot{AimPressed: true}, st)
	c.Update(1.0, input.Snapshot{AimReleased: true}, st)
	c.Update(1.0, input.Snapshot{AimReleased: true}, st)

	if c.Mode() != ModeThirdPerson {
		t.Fatalf("expected third-person mode, got %v", c.Mode())
	}
	pose := c.Pose()
	dist := pose.Position.Sub(st.Position).Length()
	if dist <= 0 {
		t.Error("expected the fallback pose to sit away from the player")
	}
}

func TestZoomClampsToDistanceBounds(t *testing.T) {
	tests := []struct {
		name  string
		ticks int
		snap  input.Snapshot
		want  float32
	}{
		{"wheel out clamps at max", 10, input.Snapshot{WheelDelta: -1}, 8.0},
		{"wheel in clamps at min", 10, input.Snapshot{WheelDelta: 1}, 3.0},
		{"zoom out key clamps at max", 10, input.Snapshot{ZoomOutKey: true}, 8.0},
		{"zoom in key clamps at min", 10, input.Snapshot{ZoomInKey: true}, 3.0},
	}

	st := player.State{Grounded: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(WithDistance(5.0), WithDistanceBounds(3.0, 8.0), WithZoomStep(0.5))
			for i := 0; i < tt.ticks; i++ {
				c.Update(1.0, tt.snap, st)
			}
			if got := c.Distance(); !almostEqual(got, tt.want) {
				t.Errorf("expected distance %v, got %v", tt.want, got)
			}
		})
	}
}

func TestZoomIgnoredWhileAiming(t *testing.T) {
	c := NewController(WithDistance(5.0), WithDistanceBounds(3.0, 8.0))
	st := player.State{Grounded: true}

	c.Update(1.0, input.Snapshot{AimPressed: true}, st)
	c.Update(1.0, input.Snapshot{WheelDelta: -3}, st)

	if got := c.Distance(); !almostEqual(got, 5.0) {
		t.Errorf("expected distance untouched at 5.0 while aiming, got %v", got)
	}
}

func TestSetDistanceClamps(t *testing.T) {
	c := NewController(WithDistanceBounds(3.0, 8.0))

	c.SetDistance(100)
	if got := c.Distance(); !almostEqual(got, 8.0) {
		t.Errorf("expected clamp to 8.0, got %v", got)
	}
	c.SetDistance(0)
	if got := c.Distance(); !almostEqual(got, 3.0) {
		t.Errorf("expected clamp to 3.0, got %v", got)
	}
}

func TestOrbitConvergesBehindPlayer(t *testing.T) {
	c := NewController(WithDistance(5.0), WithHeight(2.0))
	st := player.State{Position: common.Vec3{X: 1, Y: 0, Z: 1}, Yaw: 0, Grounded: true}

	settle(c, st)

	pose := c.Pose()
	// With yaw 0 the camera settles at player + (0, height, distance).
	want := common.Vec3{X: 1, Y: 2, Z: 6}
	if !almostEqual(pose.Position.X, want.X) ||
		!almostEqual(pose.Position.Y, want.Y) ||
		!almostEqual(pose.Position.Z, want.Z) {
		t.Errorf("expected settled position %+v, got %+v", want, pose.Position)
	}
	if got := c.LookTarget(); !almostEqual(got.X, st.Position.X) ||
		!almostEqual(got.Y, st.Position.Y) ||
		!almostEqual(got.Z, st.Position.Z) {
		t.Errorf("expected look target at the player %+v, got %+v", st.Position, got)
	}
}

func TestOrbitHandlesWrappedYaw(t *testing.T) {
	c := NewController(WithDistance(5.0), WithHeight(2.0))

	// Yaw past a full turn must orbit the same as its wrapped equivalent.
	a := player.State{Yaw: 0.3, Grounded: true}
	b := player.State{Yaw: 0.3 + 4*math.Pi, Grounded: true}

	settle(c, a)
	poseA := c.Pose()
	settle(c, b)
	poseB := c.Pose()

	if !posesEqual(poseA, poseB) {
		t.Errorf("expected identical orbit for wrapped yaw, got %+v vs %+v", poseA, poseB)
	}
}

func TestCrouchLowersCameraInBothModes(t *testing.T) {
	standing := player.State{Grounded: true}
	crouched := player.State{Grounded: true, Crouched: true}

	t.Run("third person", func(t *testing.T) {
		c := NewController(WithHeight(2.0), WithCrouchDrop(0.7))
		settle(c, standing)
		up := c.Pose().Position.Y
		settle(c, crouched)
		down := c.Pose().Position.Y
		if !almostEqual(up-down, 0.7) {
			t.Errorf("expected crouch to lower the orbit by 0.7, got %v", up-down)
		}
	})

	t.Run("first person", func(t *testing.T) {
		c := NewController(WithHeadOffset(1.6), WithCrouchDrop(0.7))
		c.Update(1.0, input.Snapshot{AimPressed: true}, standing)
		up := c.Pose().Position.Y
		c.Update(1.0, input.Snapshot{}, crouched)
		down := c.Pose().Position.Y
		if !almostEqual(up-down, 0.7) {
			t.Errorf("expected crouch to lower the head camera by 0.7, got %v", up-down)
		}
	})
}

func TestSmoothingMovesPoseFractionally(t *testing.T) {
	c := NewController(WithDistance(5.0), WithHeight(2.0), WithSmoothing(0.1))
	st := player.State{Grounded: true}

	settle(c, st)
	before := c.Pose().Position

	// Teleport the player; one tick should cover 10% of the gap, not all
	// of it.
	moved := player.State{Position: common.Vec3{X: 10}, Grounded: true}
	c.Update(1.0, input.Snapshot{}, moved)
	after := c.Pose().Position

	target := common.Vec3{X: 10, Y: 2, Z: 5}
	wantX := before.X + (target.X-before.X)*0.1
	if !almostEqual(after.X, wantX) {
		t.Errorf("expected smoothed X %v, got %v", wantX, after.X)
	}
	if almostEqual(after.X, target.X) {
		t.Error("expected the pose to lag the target, not snap to it")
	}
}

func TestForwardMatchesAimDirection(t *testing.T) {
	c := NewController()
	st := player.State{Yaw: 0.5, Pitch: 0.25, Grounded: true}

	c.Update(1.0, input.Snapshot{AimPressed: true}, st)

	got := c.Forward()
	want := st.AimDirection()
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) || !almostEqual(got.Z, want.Z) {
		t.Errorf("expected forward %+v to match the player aim direction %+v", want, got)
	}
	if !almostEqual(got.Length(), 1) {
		t.Errorf("expected a unit forward vector, got length %v", got.Length())
	}
}
