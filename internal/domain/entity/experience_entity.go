package entity

import (
	"time"
)

// Experience is a single timeline entry owned by exactly one User.
// Start and End are free-form labels, not structured dates; End may be
// the sentinel "Present" for an ongoing role.
type Experience struct {
	ID        string
	UserID    string
	Title     string
	Start     string
	End       string
	Details   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
