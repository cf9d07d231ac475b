package models

import "time"

// GestationDays is the cow gestation period used for calving
// reminders.
const GestationDays = 283

type InseminationRecord struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	CowName          string    `gorm:"size:100;not null" json:"cow_name"`
	CowColor         string    `gorm:"size:50" json:"cow_color"`
	InseminationDate Date      `gorm:"not null" json:"insemination_date"`
	Note             string    `gorm:"type:text" json:"note,omitempty"`
}

// TableName overrides the table name
func (InseminationRecord) TableName() string {
	return "insemination_records"
}

// CalvingDue returns the expected calving date.
func (r InseminationRecord) CalvingDue() Date {
	return r.InseminationDate.AddDays(GestationDays)
}
