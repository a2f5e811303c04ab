package models

import (
	"time"
)

// Role defines allowed roles in the system
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleWaiter   Role = "WAITER"
	RoleManager  Role = "MANAGER"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleWaiter, RoleManager:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	FirstName    string    `json:"first_name" gorm:"not null"`
	LastName     string    `json:"last_name" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null;default:'CUSTOMER'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
