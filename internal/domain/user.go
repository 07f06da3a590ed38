package domain

import "time"

// User represents an authenticated account. Sessions are issued by the
// auth layer; this type carries only what the API reads back.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
