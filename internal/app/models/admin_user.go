package models

import "time"

// AdminUser is a dashboard account. Passwords are stored as bcrypt hashes.
type AdminUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         AdminRole `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
