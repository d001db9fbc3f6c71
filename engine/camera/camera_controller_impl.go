package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/engine/input"
	"github.com/Carmen-Shannon/arena-go/engine/player"
)

// controllerImpl is the single implementation of Controller.
// The saved pose is an explicit optional snapshot: set exactly once on the
// third-person → aim transition, consumed exactly once on the way back.
type controllerImpl struct {
	mu *sync.Mutex

	mode          Mode
	pose          Pose
	lookTarget    common.Vec3
	saved         *Pose
	playerVisible bool

	// Orbit parameters
	distance    float32
	minDistance float32
	maxDistance float32
	height      float32
	smoothing   float32
	zoomStep    float32

	// First-person parameters
	headOffset float32
	crouchDrop float32
}

// Compile-time interface compliance check
var _ Controller = &controllerImpl{}

// NewController creates a camera controller with sensible defaults, starting
// in third-person mode with the player mesh visible.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerOption) Controller {
	cc := &controllerImpl{
		mu:            &sync.Mutex{},
		mode:          ModeThirdPerson,
		playerVisible: true,

		distance:    5.0,
		minDistance: 3.0,
		maxDistance: 8.0,
		height:      2.0,
		smoothing:   0.1,
		zoomStep:    0.5,

		headOffset: 1.6,
		crouchDrop: 0.7,
	}

	for _, option := range options {
		option(cc)
	}

	cc.distance = common.Clamp(cc.distance, cc.minDistance, cc.maxDistance)
	return cc
}

// --- internal helpers ---

// forwardFrom converts yaw/pitch Euler angles to a unit look direction.
func forwardFrom(yaw, pitch float32) common.Vec3 {
	cosPitch := float32(math.Cos(float64(pitch)))
	return common.Vec3{
		X: float32(math.Sin(float64(yaw))) * cosPitch,
		Y: float32(math.Sin(float64(pitch))),
		Z: float32(math.Cos(float64(yaw))) * cosPitch,
	}
}

// lookAngles derives the yaw/pitch that point from one position at another.
func lookAngles(from, to common.Vec3) (yaw, pitch float32) {
	dir := to.Sub(from).Normalize()
	yaw = float32(math.Atan2(float64(dir.X), float64(dir.Z)))
	pitch = float32(math.Asin(float64(common.Clamp(dir.Y, -1, 1))))
	return
}

// orbitTarget computes the ideal third-person camera position for the player
// state. Yaw is wrapped to [0, 2π) before the periodic offset math; the
// height component drops while crouched. Caller must hold the mutex.
func (cc *controllerImpl) orbitTarget(st player.State) common.Vec3 {
	yaw := common.WrapAngle(st.Yaw)
	height := cc.height
	if st.Crouched {
		height -= cc.crouchDrop
	}

	return st.Position.Add(common.Vec3{
		X: float32(math.Sin(float64(yaw))) * cc.distance,
		Y: height,
		Z: float32(math.Cos(float64(yaw))) * cc.distance,
	})
}

// thirdPersonPose computes a fully settled third-person pose (no smoothing),
// used as the fallback when leaving aim without a saved pose.
// Caller must hold the mutex.
func (cc *controllerImpl) thirdPersonPose(st player.State) Pose {
	position := cc.orbitTarget(st)
	yaw, pitch := lookAngles(position, st.Position)
	return Pose{Position: position, Yaw: yaw, Pitch: pitch}
}

// headPosition computes the first-person camera position: the player's head,
// lowered by the crouch drop while crouched. The live crouch flag wins over
// whatever the crouch state was when aim was entered; the saved pose is
// restored verbatim on exit either way. Caller must hold the mutex.
func (cc *controllerImpl) headPosition(st player.State) common.Vec3 {
	head := st.Position
	head.Y += cc.headOffset
	if st.Crouched {
		head.Y -= cc.crouchDrop
	}
	return head
}

// --- Controller implementation ---

func (cc *controllerImpl) Update(dt float32, in input.Snapshot, st player.State) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	// Aim press: save the restore point and switch. A press edge while
	// already aiming changes nothing.
	if in.AimPressed && cc.mode == ModeThirdPerson {
		saved := cc.pose
		cc.saved = &saved
		cc.mode = ModeFirstPersonAim
		cc.playerVisible = false
	}

	// Aim release: restore the saved pose exactly and clear it, or fall back
	// to a recomputed third-person pose. The restore tick skips smoothing so
	// the pre-aim pose survives unmodified.
	if in.AimReleased && cc.mode == ModeFirstPersonAim {
		cc.mode = ModeThirdPerson
		cc.playerVisible = true

		if cc.saved != nil {
			cc.pose = *cc.saved
			cc.saved = nil
		} else {
			cc.pose = cc.thirdPersonPose(st)
		}
		cc.lookTarget = st.Position
		return
	}

	switch cc.mode {
	case ModeFirstPersonAim:
		head := cc.headPosition(st)
		cc.pose = Pose{Position: head, Yaw: st.Yaw, Pitch: st.Pitch}
		cc.lookTarget = head.Add(forwardFrom(st.Yaw, st.Pitch))

	case ModeThirdPerson:
		// Zoom input is only honored while orbiting.
		if in.WheelDelta != 0 {
			cc.distance -= in.WheelDelta * cc.zoomStep
		}
		if in.ZoomInKey {
			cc.distance -= cc.zoomStep
		}
		if in.ZoomOutKey {
			cc.distance += cc.zoomStep
		}
		cc.distance = common.Clamp(cc.distance, cc.minDistance, cc.maxDistance)

		// Exponential smoothing toward the orbit target avoids jitter from
		// per-tick player movement.
		target := cc.orbitTarget(st)
		cc.pose.Position = cc.pose.Position.Add(target.Sub(cc.pose.Position).Scale(cc.smoothing))
		cc.pose.Yaw, cc.pose.Pitch = lookAngles(cc.pose.Position, st.Position)
		cc.pose.Roll = 0
		cc.lookTarget = st.Position
	}
}

func (cc *controllerImpl) Mode() Mode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode
}

func (cc *controllerImpl) Pose() Pose {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose
}

func (cc *controllerImpl) LookTarget() common.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.lookTarget
}

func (cc *controllerImpl) Forward() common.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return forwardFrom(cc.pose.Yaw, cc.pose.Pitch)
}

func (cc *controllerImpl) Distance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.distance
}

func (cc *controllerImpl) SetDistance(distance float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.distance = common.Clamp(distance, cc.minDistance, cc.maxDistance)
}

func (cc *controllerImpl) MinDistance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minDistance
}

func (cc *controllerImpl) MaxDistance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxDistance
}

func (cc *controllerImpl) PlayerVisible() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.playerVisible
}
