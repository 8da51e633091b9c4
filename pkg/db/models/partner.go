package models

import "time"

// Partner is a business entity that places orders. Rows are seeded once
// and treated as read-only afterward.
type Partner struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null"`
	ContactInfo *string   `gorm:"column:contact_info"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}
