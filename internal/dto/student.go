package dto

import "time"

// StudentCreate is the request body for POST /students.
type StudentCreate struct {
	InstituteCode string `json:"institute_code" binding:"required,institute_code"`
	Name          string `json:"name" binding:"required,min=3,max=50"`
	InstituteID   *int64 `json:"institute_id"`
}

// StudentUpdate is the patch body for PUT/PATCH /students/:id.
type StudentUpdate struct {
	InstituteCode *string `json:"institute_code" binding:"omitempty,institute_code"`
	Name          *string `json:"name" binding:"omitempty,min=3,max=50"`
	InstituteID   *int64  `json:"institute_id"`
}

// StudentResponse is the wire shape of a student.
type StudentResponse struct {
	ID            int64     `json:"id"`
	InstituteCode string    `json:"institute_code"`
	Name          string    `json:"name"`
	InstituteID   *int64    `json:"institute_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
