package collision

// RegistryOption is a functional option for configuring a Registry.
type RegistryOption func(*registry)

// WithWalls registers wall colliders in the given order.
//
// Parameters:
//   - walls: wall colliders (nil entries are tolerated and skipped in queries)
//
// Returns:
//   - RegistryOption: functional option to register the walls
func WithWalls(walls ...Collider) RegistryOption {
	return func(r *registry) {
		r.walls = append(r.walls, walls...)
	}
}

// WithBoss sets the boss collider.
//
// Parameters:
//   - boss: the boss collider
//
// Returns:
//   - RegistryOption: functional option to set the boss collider
func WithBoss(boss Collider) RegistryOption {
	return func(r *registry) {
		r.boss = boss
	}
}
