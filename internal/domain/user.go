package domain

import "time"

// User is the account record persisted by the service.
// PasswordHash is only settable at registration and is never serialized.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
