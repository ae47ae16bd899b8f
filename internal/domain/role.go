package domain

// Role is a static classification. Seeded by migration, never mutated by
// this service.
type Role struct {
	ID   int64
	Name string
}
