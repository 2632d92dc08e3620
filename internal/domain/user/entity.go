package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Full access, including archive/rejoin and advances
	RoleManager Role = "manager" // Location manager - can mark attendance
)

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
