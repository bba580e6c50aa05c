package model

import (
	"time"

	"github.com/google/uuid"
)

// Institute represents an educational institution.
type Institute struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"uniqueIndex;size:20;not null" json:"code"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	City        string    `gorm:"size:100" json:"city"`
	Address     string    `gorm:"size:255" json:"address"`
	Phone       string    `gorm:"size:20" json:"phone"`
	Email       string    `gorm:"size:100" json:"email"`
	NumTeachers int       `json:"num_teachers"`
	Type        string    `gorm:"size:50" json:"type"`
	FoundedOn   string    `gorm:"size:10" json:"founded_on"`
	UUID        uuid.UUID `gorm:"type:varchar(36);uniqueIndex" json:"uuid"`
	IsDeleted   bool      `gorm:"default:false" json:"-"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Students []Student `gorm:"foreignKey:InstituteID;constraint:OnDelete:CASCADE" json:"-"`
}
