package input

import (
	"testing"

	"github.com/Carmen-Shannon/arena-go/common"
)

func TestHeldKeysPersistAcrossSnapshots(t *testing.T) {
	c := NewCollector()
	c.KeyDown(common.KeyW)
	c.KeyDown(common.KeyLeftShift)

	for i := 0; i < 3; i++ {
		snap := c.Snapshot()
		if !snap.Forward {
			t.Fatalf("snapshot %d: Forward = false, want true while key held", i)
		}
		if !snap.CrouchHeld {
			t.Fatalf("snapshot %d: CrouchHeld = false, want true while key held", i)
		}
	}

	c.KeyUp(common.KeyW)
	if snap := c.Snapshot(); snap.Forward {
		t.Fatal("Forward = true after key release")
	}
}

func TestEdgesConsumedOnce(t *testing.T) {
	c := NewCollector()
	c.KeyDown(common.KeySpace)
	c.MouseButtonDown(MouseButtonRight)
	c.MouseButtonDown(MouseButtonLeft)

	snap := c.Snapshot()
	if !snap.JumpPressed || !snap.AimPressed || !snap.FirePressed {
		t.Fatalf("first snapshot missing edges: %+v", snap)
	}
	if !snap.FireHeld {
		t.Fatal("FireHeld = false while button down")
	}

	snap = c.Snapshot()
	if snap.JumpPressed || snap.AimPressed || snap.FirePressed {
		t.Fatalf("second snapshot repeated edges: %+v", snap)
	}
	if !snap.FireHeld {
		t.Fatal("FireHeld should persist until button release")
	}

	c.MouseButtonUp(MouseButtonLeft)
	snap = c.Snapshot()
	if !snap.FireReleased || snap.FireHeld {
		t.Fatalf("fire release not reported: %+v", snap)
	}
}

func TestRepeatedFirePressIsNotAnEdge(t *testing.T) {
	c := NewCollector()
	c.MouseButtonDown(MouseButtonLeft)
	c.Snapshot()

	// OS-level auto-repeat while the button is held must not re-trigger.
	c.MouseButtonDown(MouseButtonLeft)
	if snap := c.Snapshot(); snap.FirePressed {
		t.Fatal("FirePressed = true on repeated down event while held")
	}
}

func TestRepeatedJumpKeyDownIsNotAnEdge(t *testing.T) {
	c := NewCollector()
	c.KeyDown(common.KeySpace)
	if snap := c.Snapshot(); !snap.JumpPressed {
		t.Fatal("JumpPressed = false on initial press")
	}

	// OS key repeat re-enters KeyDown while the key is held; without a
	// release between them the edge must stay disarmed.
	c.KeyDown(common.KeySpace)
	if snap := c.Snapshot(); snap.JumpPressed {
		t.Fatal("JumpPressed = true on repeated down event while held")
	}
	c.KeyDown(common.KeySpace)
	if snap := c.Snapshot(); snap.JumpPressed {
		t.Fatal("JumpPressed = true on second repeated down event")
	}

	c.KeyUp(common.KeySpace)
	c.KeyDown(common.KeySpace)
	if snap := c.Snapshot(); !snap.JumpPressed {
		t.Fatal("JumpPressed = false after release and re-press")
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	c := NewCollector()
	c.KeyDown(9999)
	c.KeyUp(9999)

	snap := c.Snapshot()
	if snap != (Snapshot{}) {
		t.Fatalf("unknown key produced state: %+v", snap)
	}
}

func TestMouseDeltaAccumulatesAndResets(t *testing.T) {
	c := NewCollector()
	c.MouseMove(2, -3)
	c.MouseMove(1, 1)
	c.Scroll(0.5)

	snap := c.Snapshot()
	if snap.MouseDX != 3 || snap.MouseDY != -2 {
		t.Fatalf("accumulated delta = (%v, %v), want (3, -2)", snap.MouseDX, snap.MouseDY)
	}
	if snap.WheelDelta != 0.5 {
		t.Fatalf("WheelDelta = %v, want 0.5", snap.WheelDelta)
	}

	snap = c.Snapshot()
	if snap.MouseDX != 0 || snap.MouseDY != 0 || snap.WheelDelta != 0 {
		t.Fatalf("deltas not reset: %+v", snap)
	}
}

func TestOversizedMouseDeltaDiscarded(t *testing.T) {
	c := NewCollector(WithMouseDeltaLimit(100))
	c.MouseMove(5000, 0)

	snap := c.Snapshot()
	if snap.MouseDX != 0 || snap.MouseDY != 0 {
		t.Fatalf("oversized delta applied: (%v, %v)", snap.MouseDX, snap.MouseDY)
	}

	// A sane delta on the next tick goes through untouched.
	c.MouseMove(4, 2)
	snap = c.Snapshot()
	if snap.MouseDX != 4 || snap.MouseDY != 2 {
		t.Fatalf("sane delta altered: (%v, %v)", snap.MouseDX, snap.MouseDY)
	}
}
