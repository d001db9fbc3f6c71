// package config holds the runtime tuning parameters for the game core.
// Values are loaded from a YAML file, back-filled with defaults, and validated
// before any component is constructed.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/arena-go/common"
)

// ConfigurationError reports an inconsistent or out-of-range numeric parameter
// detected at initialization time.
type ConfigurationError struct {
	// Field is the name of the offending configuration field.
	Field string
	// Reason describes why the value was rejected.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

// Config holds every tunable the game core recognizes. Zero values are
// replaced by defaults during Load; a zero-value Config passed directly to a
// constructor should go through ApplyDefaults and Validate first.
type Config struct {
	// BaseSpeed is the walk speed in world units per second.
	BaseSpeed float32 `yaml:"baseSpeed"`

	// CrouchMultiplier scales BaseSpeed while crouched. Must be in (0, 1).
	CrouchMultiplier float32 `yaml:"crouchMultiplier"`

	// JumpForce is the initial vertical velocity applied on a jump press.
	JumpForce float32 `yaml:"jumpForce"`

	// Gravity is the downward acceleration in world units per second squared.
	Gravity float32 `yaml:"gravity"`

	// GroundLevel is the Y coordinate the player lands on.
	GroundLevel float32 `yaml:"groundLevel"`

	// MouseSensitivity converts mouse delta pixels to radians.
	MouseSensitivity float32 `yaml:"mouseSensitivity"`

	// MouseDeltaLimit is the per-tick mouse delta magnitude above which the
	// delta is treated as an OS focus glitch and discarded.
	MouseDeltaLimit float32 `yaml:"mouseDeltaLimit"`

	// FireIntervalMs is the minimum wall-clock milliseconds between bullets.
	FireIntervalMs int `yaml:"fireIntervalMs"`

	// BulletSpeed is the bullet travel speed in world units per second.
	BulletSpeed float32 `yaml:"bulletSpeed"`

	// BulletLifespan is the bullet time-to-live in seconds.
	BulletLifespan float32 `yaml:"bulletLifespan"`

	// CameraDistance is the initial third-person orbit distance.
	CameraDistance float32 `yaml:"cameraDistance"`

	// CameraMinDistance is the closest allowed orbit distance.
	CameraMinDistance float32 `yaml:"cameraMinDistance"`

	// CameraMaxDistance is the farthest allowed orbit distance.
	CameraMaxDistance float32 `yaml:"cameraMaxDistance"`

	// CameraHeight is the vertical component of the third-person orbit offset.
	CameraHeight float32 `yaml:"cameraHeight"`

	// CameraSmoothingFactor is the per-tick exponential smoothing factor for
	// the third-person camera position. Must be in (0, 1].
	CameraSmoothingFactor float32 `yaml:"cameraSmoothingFactor"`

	// HeadOffset is the first-person camera height above the player position.
	HeadOffset float32 `yaml:"headOffset"`

	// CrouchHeightDrop is subtracted from camera heights while crouched.
	CrouchHeightDrop float32 `yaml:"crouchHeightDrop"`
}

// Default returns a Config populated with the built-in defaults.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults back-fills every zero-valued field with its default.
func (c *Config) ApplyDefaults() {
	c.BaseSpeed = common.Coalesce(c.BaseSpeed, 0.1)
	c.CrouchMultiplier = common.Coalesce(c.CrouchMultiplier, 0.5)
	c.JumpForce = common.Coalesce(c.JumpForce, 0.18)
	c.Gravity = common.Coalesce(c.Gravity, 0.01)
	c.MouseSensitivity = common.Coalesce(c.MouseSensitivity, 0.002)
	c.MouseDeltaLimit = common.Coalesce(c.MouseDeltaLimit, 500.0)
	c.FireIntervalMs = common.Coalesce(c.FireIntervalMs, 200)
	c.BulletSpeed = common.Coalesce(c.BulletSpeed, 1.5)
	c.BulletLifespan = common.Coalesce(c.BulletLifespan, 3.0)
	c.CameraDistance = common.Coalesce(c.CameraDistance, 5.0)
	c.CameraMinDistance = common.Coalesce(c.CameraMinDistance, 3.0)
	c.CameraMaxDistance = common.Coalesce(c.CameraMaxDistance, 8.0)
	c.CameraHeight = common.Coalesce(c.CameraHeight, 2.0)
	c.CameraSmoothingFactor = common.Coalesce(c.CameraSmoothingFactor, 0.1)
	c.HeadOffset = common.Coalesce(c.HeadOffset, 1.6)
	c.CrouchHeightDrop = common.Coalesce(c.CrouchHeightDrop, 0.7)
	// GroundLevel's default is 0, which Coalesce cannot distinguish from
	// "unset"; 0 is the intended default so no back-fill is needed.
}

// Validate checks the numeric parameters for internal consistency.
//
// Returns:
//   - error: a *ConfigurationError describing the first inconsistency, or nil
func (c Config) Validate() error {
	if c.BaseSpeed <= 0 {
		return &ConfigurationError{Field: "baseSpeed", Reason: "must be positive"}
	}
	if c.CrouchMultiplier <= 0 || c.CrouchMultiplier >= 1 {
		return &ConfigurationError{Field: "crouchMultiplier", Reason: "must be in (0, 1)"}
	}
	if c.JumpForce <= 0 {
		return &ConfigurationError{Field: "jumpForce", Reason: "must be positive"}
	}
	if c.Gravity <= 0 {
		return &ConfigurationError{Field: "gravity", Reason: "must be positive"}
	}
	if c.FireIntervalMs <= 0 {
		return &ConfigurationError{Field: "fireIntervalMs", Reason: "must be positive"}
	}
	if c.BulletSpeed <= 0 {
		return &ConfigurationError{Field: "bulletSpeed", Reason: "must be positive"}
	}
	if c.BulletLifespan <= 0 {
		return &ConfigurationError{Field: "bulletLifespan", Reason: "must be positive"}
	}
	if c.CameraMinDistance <= 0 {
		return &ConfigurationError{Field: "cameraMinDistance", Reason: "must be positive"}
	}
	if c.CameraMinDistance > c.CameraMaxDistance {
		return &ConfigurationError{Field: "cameraMinDistance", Reason: "exceeds cameraMaxDistance"}
	}
	if c.CameraDistance < c.CameraMinDistance || c.CameraDistance > c.CameraMaxDistance {
		return &ConfigurationError{Field: "cameraDistance", Reason: "outside [cameraMinDistance, cameraMaxDistance]"}
	}
	if c.CameraSmoothingFactor <= 0 || c.CameraSmoothingFactor > 1 {
		return &ConfigurationError{Field: "cameraSmoothingFactor", Reason: "must be in (0, 1]"}
	}
	if c.MouseDeltaLimit <= 0 {
		return &ConfigurationError{Field: "mouseDeltaLimit", Reason: "must be positive"}
	}
	return nil
}

// Load reads a YAML configuration file, back-fills defaults, and validates the
// result. Fields absent from the file keep their defaults.
//
// Parameters:
//   - path: the YAML file path
//
// Returns:
//   - Config: the loaded configuration
//   - error: read, parse, or validation error
func Load(path string) (Config, error) {
	cfg := Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
