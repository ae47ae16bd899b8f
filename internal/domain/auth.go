package domain

import "time"

// SubjectType tags who a token was issued for. Only end-users exist today;
// the tag keeps tokens self-describing.
type SubjectType string

const (
	SubjectTypeUser SubjectType = "USER"
)

// Token represents issued authentication token metadata.
type Token struct {
	ID        string
	SubjectID int64
	Subject   SubjectType
	ExpiresAt time.Time
	IssuedAt  time.Time
}
