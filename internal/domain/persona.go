package domain

import "time"

// Persona holds real-world identity attributes, distinct from login
// credentials. Created together with its owning User; deleting the user
// leaves the persona in place.
type Persona struct {
	ID         int64
	FullName   string
	NationalID string
	Address    string
	BirthDate  time.Time
}
