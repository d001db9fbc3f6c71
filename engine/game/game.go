// package game wires the per-tick combat loop: input snapshot, movement
// integration, camera update, fire handling, projectile stepping, pose
// synthesis, and scene synchronization, in that order.
package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/config"
	"github.com/Carmen-Shannon/arena-go/engine/camera"
	"github.com/Carmen-Shannon/arena-go/engine/game_object"
	"github.com/Carmen-Shannon/arena-go/engine/input"
	"github.com/Carmen-Shannon/arena-go/engine/player"
	"github.com/Carmen-Shannon/arena-go/engine/projectile"
	"github.com/Carmen-Shannon/arena-go/engine/scene"
)

// Controller runs the interactive core. Tick is the single entry point: all
// subsystem updates happen inside it, in a fixed order, on the caller's
// goroutine.
type Controller interface {
	// Tick advances the whole game state by one step.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous tick
	Tick(dt float32)

	// Input returns the input collector the host window feeds events into.
	//
	// Returns:
	//   - input.Collector: the input collector
	Input() input.Collector

	// Player returns the movement integrator.
	//
	// Returns:
	//   - player.Integrator: the movement integrator
	Player() player.Integrator

	// Camera returns the camera controller.
	//
	// Returns:
	//   - camera.Controller: the camera controller
	Camera() camera.Controller

	// Projectiles returns the projectile system.
	//
	// Returns:
	//   - projectile.System: the projectile system
	Projectiles() projectile.System

	// Pose returns the joint angles synthesized on the latest tick.
	//
	// Returns:
	//   - player.JointAngles: the current pose
	Pose() player.JointAngles

	// Scene returns the attached scene, or nil.
	//
	// Returns:
	//   - scene.Scene: the attached scene
	Scene() scene.Scene
}

// controllerImpl is the single implementation of Controller.
type controllerImpl struct {
	mu *sync.Mutex

	collector   input.Collector
	integrator  player.Integrator
	cam         camera.Controller
	projectiles projectile.System

	scn          scene.Scene
	playerObject game_object.GameObject

	// weaponSocket is the hip-fire muzzle offset in the player's local frame:
	// X along right, Y up, Z along forward.
	weaponSocket common.Vec3

	spawnPosition common.Vec3

	pose player.JointAngles

	// Deferred construction inputs, consumed by NewController.
	clock     projectile.Clock
	onBossHit projectile.BossHitFunc
}

var _ Controller = &controllerImpl{}

// NewController builds the full interactive core from a validated
// configuration. Subsystems are constructed with the config's tuning values;
// options attach the scene, boss-hit callback, and test hooks.
//
// Parameters:
//   - cfg: the gameplay configuration
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
//   - error: a validation error if the configuration is unusable
func NewController(cfg config.Config, options ...ControllerOption) (Controller, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: invalid configuration: %w", err)
	}

	c := &controllerImpl{
		mu:           &sync.Mutex{},
		weaponSocket: common.Vec3{X: 0.25, Y: 1.2, Z: 0.4},
	}
	for _, option := range options {
		option(c)
	}

	if c.collector == nil {
		c.collector = input.NewCollector(input.WithMouseDeltaLimit(cfg.MouseDeltaLimit))
	}

	c.integrator = player.NewIntegrator(
		player.WithBaseSpeed(cfg.BaseSpeed),
		player.WithCrouchMultiplier(cfg.CrouchMultiplier),
		player.WithJumpForce(cfg.JumpForce),
		player.WithGravity(cfg.Gravity),
		player.WithGroundLevel(cfg.GroundLevel),
		player.WithMouseSensitivity(cfg.MouseSensitivity),
		player.WithSpawnPosition(c.spawnPosition),
	)

	c.cam = camera.NewController(
		camera.WithDistance(cfg.CameraDistance),
		camera.WithDistanceBounds(cfg.CameraMinDistance, cfg.CameraMaxDistance),
		camera.WithHeight(cfg.CameraHeight),
		camera.WithSmoothing(cfg.CameraSmoothingFactor),
		camera.WithHeadOffset(cfg.HeadOffset),
		camera.WithCrouchDrop(cfg.CrouchHeightDrop),
	)

	projOpts := []projectile.SystemOption{
		projectile.WithFireInterval(time.Duration(cfg.FireIntervalMs) * time.Millisecond),
		projectile.WithBulletSpeed(cfg.BulletSpeed),
		projectile.WithBulletLifespan(cfg.BulletLifespan),
	}
	if c.scn != nil {
		projOpts = append(projOpts, projectile.WithRegistry(c.scn.ColliderRegistry()))
	}
	if c.onBossHit != nil {
		projOpts = append(projOpts, projectile.WithBossHitCallback(c.onBossHit))
	}
	if c.clock != nil {
		projOpts = append(projOpts, projectile.WithClock(c.clock))
	}
	c.projectiles = projectile.NewSystem(projOpts...)

	if c.scn != nil {
		c.playerObject = c.scn.FindByRole(game_object.RolePlayer)
	}

	return c, nil
}

func (c *controllerImpl) Tick(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.collector.Snapshot()

	c.integrator.Advance(dt, snap)
	st := c.integrator.State()

	c.cam.Update(dt, snap, st)

	if snap.FirePressed || snap.FireHeld {
		origin, dir := c.muzzle(st)
		c.projectiles.Fire(origin, dir)
	}

	c.projectiles.Update(dt)

	c.pose = player.SynthesizePose(st.Moving, st.Crouched, st.MoveTime)

	c.syncScene(st)
}

// muzzle picks the bullet spawn point and direction for the current camera
// mode: the camera eye while aiming, the weapon socket otherwise. Caller must
// hold the mutex.
func (c *controllerImpl) muzzle(st player.State) (origin, dir common.Vec3) {
	if c.cam.Mode() == camera.ModeFirstPersonAim {
		return c.cam.Pose().Position, c.cam.Forward()
	}

	forward := st.Forward()
	right := st.Right()
	origin = st.Position.
		Add(right.Scale(c.weaponSocket.X)).
		Add(common.Vec3{Y: c.weaponSocket.Y}).
		Add(forward.Scale(c.weaponSocket.Z))
	return origin, st.AimDirection()
}

// syncScene pushes the tick's results into the attached scene: the player
// object's transform and visibility, then a parallel model matrix refresh.
// No-op without a scene. Caller must hold the mutex.
func (c *controllerImpl) syncScene(st player.State) {
	if c.scn == nil {
		return
	}

	if c.playerObject != nil {
		c.playerObject.SetPosition(st.Position)
		c.playerObject.SetRotation(common.Vec3{Y: st.Yaw})
		c.playerObject.SetEnabled(c.cam.PlayerVisible())
	}

	c.scn.RefreshTransforms()

	if cam := c.scn.Camera(); cam != nil {
		cam.Update()
	}
}

func (c *controllerImpl) Input() input.Collector {
	return c.collector
}

func (c *controllerImpl) Player() player.Integrator {
	return c.integrator
}

func (c *controllerImpl) Camera() camera.Controller {
	return c.cam
}

func (c *controllerImpl) Projectiles() projectile.System {
	return c.projectiles
}

func (c *controllerImpl) Pose() player.JointAngles {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pose
}

func (c *controllerImpl) Scene() scene.Scene {
	return c.scn
}
