package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `db:"id"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"hashed_password"` // never serialized
	Role         Role      `db:"role"`
	StreamID     *int64    `db:"stream_id"`
	CodeApoge    *string   `db:"code_apoge"`
	CNE          *string   `db:"cne"`
	CreatedAt    time.Time `db:"created_at"`
}

// HasRole reports whether the user holds role.
func (u *User) HasRole(role Role) bool {
	return u != nil && u.Role == role
}
