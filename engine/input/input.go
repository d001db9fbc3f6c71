package input

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/arena-go/common"
)

// MouseButton identifies a mouse button in device events.
type MouseButton uint8

const (
	// MouseButtonLeft is the primary (fire) button.
	MouseButtonLeft MouseButton = iota
	// MouseButtonRight is the secondary (aim) button.
	MouseButtonRight
	// MouseButtonMiddle is the wheel button.
	MouseButtonMiddle
)

// Snapshot is the immutable per-tick view of device input. Level-triggered
// fields report keys held at snapshot time; edge-triggered fields report
// transitions that occurred since the previous snapshot; continuous fields
// accumulate deltas since the previous snapshot.
type Snapshot struct {
	// Level-triggered movement and action keys.
	Forward, Backward, Left, Right bool
	CrouchHeld                     bool
	FireHeld                       bool

	// Edge-triggered transitions since the last snapshot.
	JumpPressed  bool
	AimPressed   bool
	AimReleased  bool
	FirePressed  bool
	FireReleased bool
	ZoomInKey    bool
	ZoomOutKey   bool

	// Accumulated continuous deltas since the last snapshot.
	MouseDX, MouseDY float32
	WheelDelta       float32
}

// Collector buffers raw device events between ticks and produces one
// immutable Snapshot per tick. Events arrive from window callbacks; the
// snapshot is consumed once at the start of each tick, so no input is
// applied mid-tick.
type Collector interface {
	// KeyDown records a key press. Unknown key codes are ignored.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common key code constants)
	KeyDown(keyCode uint32)

	// KeyUp records a key release. Unknown key codes are ignored.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// MouseButtonDown records a mouse button press.
	//
	// Parameters:
	//   - button: the pressed button
	MouseButtonDown(button MouseButton)

	// MouseButtonUp records a mouse button release.
	//
	// Parameters:
	//   - button: the released button
	MouseButtonUp(button MouseButton)

	// MouseMove accumulates a mouse movement delta.
	//
	// Parameters:
	//   - dx, dy: movement delta in pixels since the previous event
	MouseMove(dx, dy float32)

	// Scroll accumulates a mouse wheel delta.
	//
	// Parameters:
	//   - delta: wheel movement (positive = scroll up)
	Scroll(delta float32)

	// Snapshot consumes the buffered events and returns the per-tick view.
	// Edge and delta accumulators are reset; held-key state persists.
	//
	// Returns:
	//   - Snapshot: the immutable input state for this tick
	Snapshot() Snapshot
}

// collector is the single implementation of Collector. A mutex guards the
// buffer because device callbacks run on the window thread while Snapshot is
// called from the tick goroutine.
type collector struct {
	mu sync.Mutex

	forward, backward, left, right bool
	crouchHeld                     bool
	fireHeld                       bool
	jumpHeld                       bool

	jumpPressed  bool
	aimPressed   bool
	aimReleased  bool
	firePressed  bool
	fireReleased bool
	zoomInKey    bool
	zoomOutKey   bool

	mouseDX, mouseDY float32
	wheelDelta       float32

	// mouseDeltaLimit discards a snapshot's mouse delta when its magnitude
	// exceeds this value (OS focus loss can report a huge one-tick jump).
	mouseDeltaLimit float32
}

var _ Collector = &collector{}

// NewCollector creates a new input Collector with the provided options.
//
// Parameters:
//   - options: functional options to configure the collector
//
// Returns:
//   - Collector: the newly created collector
func NewCollector(options ...CollectorOption) Collector {
	c := &collector{
		mouseDeltaLimit: 500.0,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *collector) KeyDown(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch keyCode {
	case common.KeyW, common.KeyUp:
		c.forward = true
	case common.KeyS, common.KeyDown:
		c.backward = true
	case common.KeyA, common.KeyLeft:
		c.left = true
	case common.KeyD, common.KeyRight:
		c.right = true
	case common.KeySpace:
		// OS key repeat re-enters KeyDown while the key is held; the latch
		// keeps the edge armed only by a real release.
		if !c.jumpHeld {
			c.jumpPressed = true
		}
		c.jumpHeld = true
	case common.KeyLeftShift, common.KeyRightShift:
		c.crouchHeld = true
	case common.KeyEqual, common.KeyKPAdd:
		c.zoomInKey = true
	case common.KeyMinus, common.KeyKPSubtract:
		c.zoomOutKey = true
	}
	// Unmapped keys fall through silently.
}

func (c *collector) KeyUp(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch keyCode {
	case common.KeyW, common.KeyUp:
		c.forward = false
	case common.KeyS, common.KeyDown:
		c.backward = false
	case common.KeyA, common.KeyLeft:
		c.left = false
	case common.KeyD, common.KeyRight:
		c.right = false
	case common.KeySpace:
		c.jumpHeld = false
	case common.KeyLeftShift, common.KeyRightShift:
		c.crouchHeld = false
	}
}

func (c *collector) MouseButtonDown(button MouseButton) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch button {
	case MouseButtonLeft:
		if !c.fireHeld {
			c.firePressed = true
		}
		c.fireHeld = true
	case MouseButtonRight:
		c.aimPressed = true
	}
}

func (c *collector) MouseButtonUp(button MouseButton) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch button {
	case MouseButtonLeft:
		if c.fireHeld {
			c.fireReleased = true
		}
		c.fireHeld = false
	case MouseButtonRight:
		c.aimReleased = true
	}
}

func (c *collector) MouseMove(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouseDX += dx
	c.mouseDY += dy
}

func (c *collector) Scroll(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wheelDelta += delta
}

func (c *collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Forward:      c.forward,
		Backward:     c.backward,
		Left:         c.left,
		Right:        c.right,
		CrouchHeld:   c.crouchHeld,
		FireHeld:     c.fireHeld,
		JumpPressed:  c.jumpPressed,
		AimPressed:   c.aimPressed,
		AimReleased:  c.aimReleased,
		FirePressed:  c.firePressed,
		FireReleased: c.fireReleased,
		ZoomInKey:    c.zoomInKey,
		ZoomOutKey:   c.zoomOutKey,
		MouseDX:      c.mouseDX,
		MouseDY:      c.mouseDY,
		WheelDelta:   c.wheelDelta,
	}

	// A single-tick delta beyond the sanity limit is a desync artifact, not a
	// real hand movement. Discard it rather than snap the camera.
	mag := float32(math.Sqrt(float64(snap.MouseDX*snap.MouseDX + snap.MouseDY*snap.MouseDY)))
	if mag > c.mouseDeltaLimit {
		snap.MouseDX = 0
		snap.MouseDY = 0
	}

	c.jumpPressed = false
	c.aimPressed = false
	c.aimReleased = false
	c.firePressed = false
	c.fireReleased = false
	c.zoomInKey = false
	c.zoomOutKey = false
	c.mouseDX = 0
	c.mouseDY = 0
	c.wheelDelta = 0

	return snap
}
