package dto

import "time"

// NameCreate is the request body for POST /names.
type NameCreate struct {
	InstituteCode string `json:"institute_code" binding:"required,institute_code"`
}

// NameUpdate is the patch body for PUT/PATCH /names/:id.
type NameUpdate struct {
	InstituteCode *string `json:"institute_code" binding:"omitempty,institute_code"`
}

// NameResponse is the wire shape of a name record.
type NameResponse struct {
	ID            int64     `json:"id"`
	InstituteCode string    `json:"institute_code"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
