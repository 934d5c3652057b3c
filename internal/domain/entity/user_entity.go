package entity

import "time"

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Avatar       string // optional reference, e.g. an image URL
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
