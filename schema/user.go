package schema

import (
	"time"
)

// UserRole determines which API surfaces an account can reach.
type UserRole string

const (
	RoleAdmin         UserRole = "admin"
	RoleDataCollector UserRole = "data_collector"
)

// User is a system account stored in Postgres.
type User struct {
	ID             uint      `json:"id" gorm:"primary_key"`
	Username       string    `json:"username" gorm:"unique_index;not null"`
	Email          string    `json:"email" gorm:"unique_index;not null"`
	HashedPassword string    `json:"-" gorm:"not null"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	Role           UserRole  `json:"role" gorm:"not null;default:'data_collector'"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	Notes          string    `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
