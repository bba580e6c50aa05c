package dto

import "time"

// InstituteCreate is the request body for POST /institutes.
type InstituteCreate struct {
	Name        string `json:"name" binding:"required,min=3,max=50"`
	City        string `json:"city"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone" binding:"omitempty,phone_dashed"`
	Email       string `json:"email" binding:"omitempty,email"`
	NumTeachers int    `json:"num_teachers"`
	Type        string `json:"type"`
	FoundedOn   string `json:"founded_on" binding:"omitempty,datetime=2006-01-02"`
	Code        string `json:"code" binding:"required,institute_code"`
}

// InstituteUpdate is the patch body for PUT/PATCH /institutes/:id. Nil fields
// keep the stored value.
type InstituteUpdate struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=50"`
	City        *string `json:"city"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone" binding:"omitempty,phone_dashed"`
	Email       *string `json:"email" binding:"omitempty,email"`
	NumTeachers *int    `json:"num_teachers"`
	Type        *string `json:"type"`
	FoundedOn   *string `json:"founded_on" binding:"omitempty,datetime=2006-01-02"`
	Code        *string `json:"code" binding:"omitempty,institute_code"`
}

// InstituteResponse is the wire shape of an institute, including the names of
// its enrolled students.
type InstituteResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	NumTeachers int       `json:"num_teachers"`
	Type        string    `json:"type"`
	FoundedOn   string    `json:"founded_on,omitempty"`
	Code        string    `json:"code"`
	UUID        string    `json:"uuid"`
	Students    []string  `json:"students"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
