package player

import "math"

// Limb swing tuning for the cosmetic walk cycle.
const (
	swingFrequency  = 8.0  // radians of phase per second of movement
	swingAmplitude  = 0.6  // peak limb swing in radians
	crouchTorsoDrop = 0.35 // torso lowering in world units while crouched
)

// JointAngles is the cosmetic limb pose for the third-person player mesh.
// It is a pure function of movement state and has no effect on simulation.
type JointAngles struct {
	// LeftArm and RightArm are the shoulder swing angles in radians.
	LeftArm, RightArm float32
	// LeftLeg and RightLeg are the hip swing angles in radians.
	LeftLeg, RightLeg float32
	// TorsoDrop is the vertical mesh offset while crouched.
	TorsoDrop float32
}

// SynthesizePose computes the limb pose for the current movement state.
// Opposite limbs swing in anti-phase while moving; all angles return to zero
// when standing still.
//
// Parameters:
//   - moving: whether any directional input was held this tick
//   - crouching: whether the player is crouched
//   - moveTime: elapsed seconds of continuous movement
//
// Returns:
//   - JointAngles: the synthesized pose
func SynthesizePose(moving, crouching bool, moveTime float32) JointAngles {
	pose := JointAngles{}

	if moving {
		swing := float32(math.Sin(float64(moveTime)*swingFrequency)) * swingAmplitude
		pose.LeftArm = swing
		pose.RightArm = -swing
		pose.LeftLeg = -swing
		pose.RightLeg = swing
	}

	if crouching {
		pose.TorsoDrop = crouchTorsoDrop
	}

	return pose
}
