// package player owns the kinematic character state: facing, horizontal
// movement in the player's own frame, jump/gravity integration, and crouch.
package player

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/engine/input"
)

// pitchLimit clamps the look pitch to straight up / straight down.
const pitchLimit = float32(math.Pi / 2)

// State is a copy of the player's kinematic state at the end of a tick.
// Position and orientation are read by the camera and projectile systems;
// only the Integrator writes them.
type State struct {
	// Position is the player's world-space position (feet at GroundLevel).
	Position common.Vec3
	// Yaw is the facing angle in radians about the vertical axis. Unbounded;
	// wrap with common.WrapAngle before periodic offset math.
	Yaw float32
	// Pitch is the look angle in radians, clamped to [-π/2, π/2].
	Pitch float32
	// Crouched reports whether the crouch key is held this tick.
	Crouched bool
	// Grounded reports whether the player is on the ground.
	Grounded bool
	// VerticalVelocity is the current vertical speed (positive = up).
	VerticalVelocity float32
	// Moving reports whether any directional key was held this tick.
	Moving bool
	// MoveTime is the elapsed seconds of continuous movement, used by pose
	// synthesis. Reset to zero when movement stops.
	MoveTime float32
}

// Forward returns the unit facing direction in the horizontal plane.
//
// Returns:
//   - common.Vec3: the horizontal forward vector
func (s State) Forward() common.Vec3 {
	return common.Vec3{
		X: float32(math.Sin(float64(s.Yaw))),
		Z: float32(math.Cos(float64(s.Yaw))),
	}
}

// Right returns the unit strafe direction, defined as up × forward.
//
// Returns:
//   - common.Vec3: the horizontal right vector
func (s State) Right() common.Vec3 {
	up := common.Vec3{Y: 1}
	return up.Cross(s.Forward())
}

// AimDirection returns the unit look direction including pitch.
//
// Returns:
//   - common.Vec3: the look direction
func (s State) AimDirection() common.Vec3 {
	cosPitch := float32(math.Cos(float64(s.Pitch)))
	return common.Vec3{
		X: float32(math.Sin(float64(s.Yaw))) * cosPitch,
		Y: float32(math.Sin(float64(s.Pitch))),
		Z: float32(math.Cos(float64(s.Yaw))) * cosPitch,
	}
}

// Integrator advances the player's kinematic state once per tick from an
// input snapshot. It is the sole writer of the player state.
type Integrator interface {
	// Advance applies one tick of movement, look, jump, and crouch handling.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous tick
	//   - in: this tick's input snapshot
	Advance(dt float32, in input.Snapshot)

	// State returns a copy of the player state after the latest Advance.
	//
	// Returns:
	//   - State: the current player state
	State() State

	// Reset returns the player to the spawn position with zeroed velocity
	// and orientation.
	Reset()
}

// integrator is the single implementation of Integrator.
type integrator struct {
	mu sync.Mutex

	state State

	spawnPosition    common.Vec3
	baseSpeed        float32
	crouchMultiplier float32
	jumpForce        float32
	gravity          float32
	groundLevel      float32
	mouseSensitivity float32
}

var _ Integrator = &integrator{}

// NewIntegrator creates a movement integrator with the provided options.
//
// Parameters:
//   - options: functional options to configure the integrator
//
// Returns:
//   - Integrator: the newly created integrator
func NewIntegrator(options ...IntegratorOption) Integrator {
	it := &integrator{
		baseSpeed:        0.1,
		crouchMultiplier: 0.5,
		jumpForce:        0.18,
		gravity:          0.01,
		groundLevel:      0,
		mouseSensitivity: 0.002,
	}
	for _, option := range options {
		option(it)
	}

	it.state.Position = it.spawnPosition
	it.state.Position.Y = it.groundLevel
	it.state.Grounded = true
	return it
}

func (it *integrator) Advance(dt float32, in input.Snapshot) {
	it.mu.Lock()
	defer it.mu.Unlock()

	st := &it.state

	// Look: mouse right turns right, mouse up pitches up (device Y grows
	// downward). Yaw runs free; pitch is clamped.
	st.Yaw += in.MouseDX * it.mouseSensitivity
	st.Pitch = common.Clamp(st.Pitch-in.MouseDY*it.mouseSensitivity, -pitchLimit, pitchLimit)

	// Crouch is level-triggered: state mirrors the key every tick.
	st.Crouched = in.CrouchHeld

	speed := it.baseSpeed
	if st.Crouched {
		speed *= it.crouchMultiplier
	}

	// Horizontal movement accumulates in the player's facing frame, so the
	// walk direction is unaffected by the camera mode.
	forward := st.Forward()
	right := st.Right()

	var displacement common.Vec3
	if in.Forward {
		displacement = displacement.Add(forward.Scale(speed * dt))
	}
	if in.Backward {
		displacement = displacement.Add(forward.Scale(-speed * dt))
	}
	if in.Right {
		displacement = displacement.Add(right.Scale(speed * dt))
	}
	if in.Left {
		displacement = displacement.Add(right.Scale(-speed * dt))
	}
	st.Position = st.Position.Add(displacement)

	st.Moving = in.Forward || in.Backward || in.Left || in.Right
	if st.Moving {
		st.MoveTime += dt
	} else {
		st.MoveTime = 0
	}

	// Jump is edge-triggered and only from the ground; a held key adds
	// nothing once airborne.
	if in.JumpPressed && st.Grounded {
		st.VerticalVelocity = it.jumpForce
		st.Grounded = false
	}

	if !st.Grounded {
		st.VerticalVelocity -= it.gravity * dt
		st.Position.Y += st.VerticalVelocity * dt

		if st.Position.Y <= it.groundLevel {
			st.Position.Y = it.groundLevel
			st.VerticalVelocity = 0
			st.Grounded = true
		}
	}
}

func (it *integrator) State() State {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.state
}

func (it *integrator) Reset() {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.state = State{
		Position: it.spawnPosition,
		Grounded: true,
	}
	it.state.Position.Y = it.groundLevel
}
