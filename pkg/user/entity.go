package user

import "time"

// User is a domain entity representing an admin account.
// PasswordHash is never serialized outward.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
