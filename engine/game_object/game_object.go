package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/engine/collision"
)

// Role tags a scene entity for the combat systems. The scene builds the
// collision registry from these tags.
type Role uint8

const (
	// RoleProp is an inert decoration with no combat behavior.
	RoleProp Role = iota
	// RoleWall contributes its collider to the wall set.
	RoleWall
	// RoleBoss contributes its collider as the boss target.
	RoleBoss
	// RolePlayer marks the player avatar; the camera controller toggles its
	// visibility.
	RolePlayer
)

type gameObject struct {
	mu sync.Mutex

	id      uint64
	name    string
	enabled atomic.Bool
	role    Role

	position common.Vec3
	rotation common.Vec3
	scale    common.Vec3

	collider collision.Collider

	modelMatrix [16]float32
}

// GameObject defines the interface for a scene entity: a named transform with
// an optional collider, tagged with the combat role it plays. The model matrix
// is recomputed on demand from the transform.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's human-readable name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Role returns the combat role this object plays.
	//
	// Returns:
	//   - Role: the object's role
	Role() Role

	// Position returns the object's world-space position.
	//
	// Returns:
	//   - common.Vec3: the position
	Position() common.Vec3

	// Rotation returns the object's Euler rotation angles in radians.
	//
	// Returns:
	//   - common.Vec3: the rotation
	Rotation() common.Vec3

	// Scale returns the object's per-axis scale factors.
	//
	// Returns:
	//   - common.Vec3: the scale
	Scale() common.Vec3

	// Collider returns the attached collider, or nil if none is set.
	//
	// Returns:
	//   - collision.Collider: the collider or nil
	Collider() collision.Collider

	// ModelMatrix returns the cached model matrix (column-major). Call
	// RefreshModelMatrix after transform changes to update it.
	//
	// Returns:
	//   - [16]float32: the model matrix
	ModelMatrix() [16]float32

	// RefreshModelMatrix recomputes the model matrix from the current
	// transform. Safe to call from worker goroutines.
	RefreshModelMatrix()

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition updates the object's world-space position.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p common.Vec3)

	// SetRotation updates the object's Euler rotation angles.
	//
	// Parameters:
	//   - r: the new rotation in radians
	SetRotation(r common.Vec3)

	// SetScale updates the object's per-axis scale factors.
	//
	// Parameters:
	//   - s: the new scale
	SetScale(s common.Vec3)

	// SetCollider attaches a collider. Pass nil to detach.
	//
	// Parameters:
	//   - c: the collider to attach, or nil
	SetCollider(c collision.Collider)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: common.Vec3{X: 1, Y: 1, Z: 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	obj.RefreshModelMatrix()
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Role() Role {
	return g.role
}

func (g *gameObject) Position() common.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

func (g *gameObject) Rotation() common.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation
}

func (g *gameObject) Scale() common.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale
}

func (g *gameObject) Collider() collision.Collider {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.collider
}

func (g *gameObject) ModelMatrix() [16]float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.modelMatrix
}

func (g *gameObject) RefreshModelMatrix() {
	g.mu.Lock()
	defer g.mu.Unlock()
	common.BuildModelMatrix(g.modelMatrix[:],
		g.position.X, g.position.Y, g.position.Z,
		g.rotation.X, g.rotation.Y, g.rotation.Z,
		g.scale.X, g.scale.Y, g.scale.Z,
	)
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(p common.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = p
}

func (g *gameObject) SetRotation(r common.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = r
}

func (g *gameObject) SetScale(s common.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = s
}

func (g *gameObject) SetCollider(c collision.Collider) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.collider = c
}
