package models

import "time"

// BusinessProfile holds the operator's letterhead details used on
// invoices. A single row exists.
type BusinessProfile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UpdatedAt      time.Time `json:"updated_at"`
	BusinessName   string    `gorm:"size:255;not null" json:"business_name"`
	BusinessNameHi string    `gorm:"size:255" json:"business_name_hi,omitempty"`
	OwnerName      string    `gorm:"size:255" json:"owner_name"`
	Address        string    `gorm:"type:text" json:"address"`
	Phone          string    `gorm:"size:20" json:"phone"`
	Email          string    `gorm:"size:255" json:"email,omitempty"`
}

// TableName overrides the table name
func (BusinessProfile) TableName() string {
	return "business_profile"
}
