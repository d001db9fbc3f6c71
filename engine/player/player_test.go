package player

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/arena-go/engine/input"
)

func TestForwardWalkDistance(t *testing.T) {
	// baseSpeed 0.1, forward held for 10 ticks at dt = 1, yaw = 0: the player
	// moves exactly 1.0 unit along +Z.
	it := NewIntegrator(WithBaseSpeed(0.1))

	for i := 0; i < 10; i++ {
		it.Advance(1, input.Snapshot{Forward: true})
	}

	st := it.State()
	if math.Abs(float64(st.Position.Z-1.0)) > 1e-5 {
		t.Fatalf("Position.Z = %v, want 1.0", st.Position.Z)
	}
	if math.Abs(float64(st.Position.X)) > 1e-5 {
		t.Fatalf("Position.X = %v, want 0", st.Position.X)
	}
}

func TestCrouchSpeedScaling(t *testing.T) {
	it := NewIntegrator(WithBaseSpeed(0.1), WithCrouchMultiplier(0.5))

	it.Advance(1, input.Snapshot{Forward: true, CrouchHeld: true})
	st := it.State()
	if !st.Crouched {
		t.Fatal("Crouched = false while crouch held")
	}
	if math.Abs(float64(st.Position.Z-0.05)) > 1e-6 {
		t.Fatalf("crouched displacement = %v, want 0.05", st.Position.Z)
	}

	// Releasing the key restores full speed on the very next tick.
	it.Advance(1, input.Snapshot{Forward: true})
	st = it.State()
	if st.Crouched {
		t.Fatal("Crouched = true after release")
	}
	if math.Abs(float64(st.Position.Z-0.15)) > 1e-6 {
		t.Fatalf("total displacement = %v, want 0.15", st.Position.Z)
	}
}

func TestPitchClamp(t *testing.T) {
	it := NewIntegrator(WithMouseSensitivity(0.01))

	// Drag far past vertical in both directions.
	it.Advance(1, input.Snapshot{MouseDY: -10000})
	if p := it.State().Pitch; p > float32(math.Pi/2)+1e-6 {
		t.Fatalf("Pitch = %v, exceeds +π/2", p)
	}
	it.Advance(1, input.Snapshot{MouseDY: 20000})
	if p := it.State().Pitch; p < -float32(math.Pi/2)-1e-6 {
		t.Fatalf("Pitch = %v, exceeds -π/2", p)
	}
}

func TestYawUnbounded(t *testing.T) {
	it := NewIntegrator(WithMouseSensitivity(0.01))

	// Several full turns accumulate instead of wrapping.
	it.Advance(1, input.Snapshot{MouseDX: 4000})
	if y := it.State().Yaw; y < 2*math.Pi {
		t.Fatalf("Yaw = %v, expected continuous accumulation past 2π", y)
	}
}

func TestJumpArcClosure(t *testing.T) {
	it := NewIntegrator(WithJumpForce(0.18), WithGravity(0.01))

	it.Advance(1, input.Snapshot{JumpPressed: true})
	st := it.State()
	if st.Grounded {
		t.Fatal("Grounded = true immediately after jump")
	}

	// The key is released mid-air; the arc must complete regardless.
	for i := 0; i < 200 && !it.State().Grounded; i++ {
		it.Advance(1, input.Snapshot{})
	}

	st = it.State()
	if !st.Grounded {
		t.Fatal("player never landed")
	}
	if st.Position.Y != 0 {
		t.Fatalf("landed at Y = %v, want ground level 0", st.Position.Y)
	}
	if st.VerticalVelocity != 0 {
		t.Fatalf("residual vertical velocity = %v, want 0", st.VerticalVelocity)
	}
}

func TestHeldJumpHasNoExtraEffect(t *testing.T) {
	it := NewIntegrator(WithJumpForce(0.18), WithGravity(0.01))

	it.Advance(1, input.Snapshot{JumpPressed: true})
	peak := it.State().VerticalVelocity

	// A repeated press edge while airborne must not re-apply the impulse.
	it.Advance(1, input.Snapshot{JumpPressed: true})
	if v := it.State().VerticalVelocity; v >= peak {
		t.Fatalf("airborne jump press raised velocity: %v >= %v", v, peak)
	}
}

func TestMovementInFacingFrame(t *testing.T) {
	it := NewIntegrator(WithBaseSpeed(0.1), WithMouseSensitivity(1))

	// Face +X (yaw = π/2), then walk forward.
	it.Advance(1, input.Snapshot{MouseDX: float32(math.Pi / 2)})
	it.Advance(1, input.Snapshot{Forward: true})

	st := it.State()
	if math.Abs(float64(st.Position.X-0.1)) > 1e-5 {
		t.Fatalf("Position.X = %v, want 0.1 after facing +X", st.Position.X)
	}
	if math.Abs(float64(st.Position.Z)) > 1e-5 {
		t.Fatalf("Position.Z = %v, want ~0 after facing +X", st.Position.Z)
	}
}

func TestMoveTimeTracksContinuousMovement(t *testing.T) {
	it := NewIntegrator()

	it.Advance(0.5, input.Snapshot{Forward: true})
	it.Advance(0.5, input.Snapshot{Forward: true})
	if mt := it.State().MoveTime; math.Abs(float64(mt-1.0)) > 1e-6 {
		t.Fatalf("MoveTime = %v, want 1.0", mt)
	}

	it.Advance(0.5, input.Snapshot{})
	if mt := it.State().MoveTime; mt != 0 {
		t.Fatalf("MoveTime = %v after stopping, want 0", mt)
	}
}
