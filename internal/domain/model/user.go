package model

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Not exposed
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
}
