package models

import (
	"time"
)

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"uniqueIndex;size:80" json:"username"`
	Email     string     `gorm:"uniqueIndex;size:120" json:"email"`
	Password  string     `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	IsAdmin   bool       `gorm:"default:false" json:"is_admin"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
