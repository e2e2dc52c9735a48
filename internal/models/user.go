package models

// User represents an authenticated account in the system
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"` // "user" or "admin"
	PasswordHash string `json:"-"`    // Not serialized
	CreatedAt    string `json:"created_at"`
}
