package model

import "time"

// Name is a bare registry entry holding an institute code. Like students,
// names are soft-deleted.
type Name struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	InstituteCode string    `gorm:"uniqueIndex;size:20;not null" json:"institute_code"`
	IsDeleted     bool      `gorm:"default:false" json:"-"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
