package api

import "institute-registry-backend/internal/service"

// Handler holds the per-resource services shared by the API handlers.
type Handler struct {
	institutes *service.InstituteService
	students   *service.StudentService
	names      *service.NameService
}

// NewHandler creates a new API handler.
func NewHandler(institutes *service.InstituteService, students *service.StudentService, names *service.NameService) *Handler {
	return &Handler{
		institutes: institutes,
		students:   students,
		names:      names,
	}
}
