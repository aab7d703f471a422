package entity

import (
	"time"
)

// User is the aggregate root for the portfolio domain. Name doubles as
// the public-facing identity the portfolio slug resolves against.
// Password holds a bcrypt hash, never the original credential.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
