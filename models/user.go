package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Phone        string    `gorm:"uniqueIndex;size:20;not null" json:"phone"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;default:'owner'" json:"role"` // owner, helper
	IsActive     bool      `gorm:"default:true" json:"is_active"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
