package models

import "time"

// User represents a user record in the database
type User struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	Role         string    `json:"role" db:"role"`             // Always "admin" in practice
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// Profile returns the public view of the user.
func (u *User) Profile() UserProfile {
	return UserProfile{
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// UserProfile is the part of a user that leaves the credential verifier.
// swagger:model UserProfile
type UserProfile struct {
	// example: admin
	Username string `json:"username" db:"username"`
	// example: admin@foodcompany.ly
	Email string `json:"email" db:"email"`
	// example: admin
	Role string `json:"role" db:"role"`
}
