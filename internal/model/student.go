package model

import "time"

// Student represents a student enrolled at an institute. Students are
// soft-deleted: the row stays in the table with IsDeleted set.
type Student struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	InstituteCode string    `gorm:"uniqueIndex;size:20;not null" json:"institute_code"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	InstituteID   *int64    `gorm:"index" json:"institute_id,omitempty"`
	IsDeleted     bool      `gorm:"default:false" json:"-"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
