package scene

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/arena-go/engine/camera"
	"github.com/Carmen-Shannon/arena-go/engine/collision"
	"github.com/Carmen-Shannon/arena-go/engine/game_object"
	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Scene manages a registry of GameObjects with a Camera, and feeds the
// colliders of wall- and boss-tagged objects into a shared collision registry.
// Scenes can be hot-swapped via the Active flag to switch between different
// views or levels. Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active.
	Active() bool

	// SetActive sets whether this scene is active.
	SetActive(active bool)

	// Camera returns the scene's camera, or nil.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Count returns the number of GameObjects in the scene's registry.
	//
	// Returns:
	//   - int: count of registered GameObjects
	Count() int

	// Add adds a GameObject to the scene and assigns it an ID if it has none.
	// Objects tagged RoleWall or RoleBoss with a collider attached are wired
	// into the scene's collision registry; a second boss replaces the first.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// FindByRole returns the first registered object with the given role, or
	// nil if none exists.
	//
	// Parameters:
	//   - role: the role to search for
	//
	// Returns:
	//   - game_object.GameObject: the first match or nil
	FindByRole(role game_object.Role) game_object.GameObject

	// Objects returns a snapshot of all registered GameObjects in insertion
	// order.
	//
	// Returns:
	//   - []game_object.GameObject: the registered objects
	Objects() []game_object.GameObject

	// Remove removes a GameObject from the registry by ID. Wall and boss
	// colliders are retired from the collision registry.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Clear removes all objects from the scene and detaches their colliders.
	Clear()

	// ColliderRegistry returns the collision registry built from the scene's
	// wall- and boss-tagged objects. The registry is live: adds and removals
	// are reflected in queries immediately.
	//
	// Returns:
	//   - collision.Registry: the scene's collision registry
	ColliderRegistry() collision.Registry

	// RefreshTransforms recomputes the model matrix of every enabled object,
	// fanning the work out across the scene's worker pool and blocking until
	// all matrices are current.
	RefreshTransforms()
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject
	order    []uint64 // insertion order for stable Objects snapshots
	nextID   uint64

	cam camera.Camera

	colliders collision.Registry
	wallSlots map[uint64]int // object ID → wall registration index
	bossID    uint64

	// transformPool manages a bounded set of reusable goroutines for the
	// model matrix refresh. Workers persist across ticks, avoiding per-tick
	// goroutine spawn/teardown overhead.
	transformPool    worker.DynamicWorkerPool
	transformWorkers int
	taskID           int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given name.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:               &sync.RWMutex{},
		name:             name,
		active:           false,
		registry:         make(map[uint64]game_object.GameObject),
		nextID:           1,
		colliders:        collision.NewRegistry(),
		wallSlots:        make(map[uint64]int),
		transformWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the worker pool after options so WithTransformWorkers can
	// override the default. Queue size of 256 accommodates typical object
	// counts with headroom.
	s.transformPool = worker.NewDynamicWorkerPool(s.transformWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(obj)
}

// addLocked registers an object and wires its collider by role. Caller must
// hold the write lock.
func (s *scene) addLocked(obj game_object.GameObject) uint64 {
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	}

	s.registry[obj.ID()] = obj
	s.order = append(s.order, obj.ID())

	if c := obj.Collider(); c != nil {
		switch obj.Role() {
		case game_object.RoleWall:
			s.wallSlots[obj.ID()] = s.colliders.WallCount()
			s.colliders.AddWall(c)
		case game_object.RoleBoss:
			s.colliders.SetBoss(c)
			s.bossID = obj.ID()
		}
	}

	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) FindByRole(role game_object.Role) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if obj, ok := s.registry[id]; ok && obj.Role() == role {
			return obj
		}
	}
	return nil
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]game_object.GameObject, 0, len(s.registry))
	for _, id := range s.order {
		if obj, ok := s.registry[id]; ok {
			out = append(out, obj)
		}
	}
	return out
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, exists := s.registry[id]
	if !exists {
		return
	}

	delete(s.registry, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	switch obj.Role() {
	case game_object.RoleWall:
		if slot, ok := s.wallSlots[id]; ok {
			s.colliders.RemoveWall(slot)
			delete(s.wallSlots, id)
		}
	case game_object.RoleBoss:
		if s.bossID == id {
			s.colliders.SetBoss(nil)
			s.bossID = 0
		}
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, slot := range s.wallSlots {
		s.colliders.RemoveWall(slot)
	}
	s.colliders.SetBoss(nil)

	s.registry = make(map[uint64]game_object.GameObject)
	s.order = nil
	s.wallSlots = make(map[uint64]int)
	s.bossID = 0
}

func (s *scene) ColliderRegistry() collision.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colliders
}

func (s *scene) RefreshTransforms() {
	s.mu.Lock()
	objects := make([]game_object.GameObject, 0, len(s.registry))
	for _, id := range s.order {
		if obj, ok := s.registry[id]; ok && obj.Enabled() {
			objects = append(objects, obj)
		}
	}
	pool := s.transformPool
	firstID := s.taskID
	s.taskID += len(objects)
	s.mu.Unlock()

	var wg sync.WaitGroup
	for i, obj := range objects {
		wg.Add(1)
		oCap := obj // capture for closure
		pool.SubmitTask(worker.Task{
			ID: firstID + i,
			Do: func() (any, error) {
				defer wg.Done()
				oCap.RefreshModelMatrix()
				return nil, nil
			},
		})
	}
	wg.Wait()
}
