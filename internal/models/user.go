package models

import "time"

// User is an account that can author posts.
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // don't expose hash
	Name         string    `json:"name,omitempty"`
	CreatedAt    time.Time `json:"-"`
}

func (User) TableName() string { return "users" }
