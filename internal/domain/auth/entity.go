package auth

import (
	"time"
)

// User is a business-owner account, the unit of data isolation. Every staff,
// attendance, cashbook and subscription row hangs off exactly one user.
type User struct {
	ID           string
	Name         string
	Email        string
	Mobile       string
	BusinessName string
	StaffSize    int
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
