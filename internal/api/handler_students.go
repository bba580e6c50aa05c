package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-registry-backend/internal/dto"
)

// ListStudents handles GET /api/v1/students?code=.
func (h *Handler) ListStudents(c *gin.Context) {
	resp, err := h.students.FindAll(c.Request.Context(), c.Query("code"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetStudent handles GET /api/v1/students/:id.
func (h *Handler) GetStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.students.FindByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetStudentByCode handles GET /api/v1/students/code/:code.
func (h *Handler) GetStudentByCode(c *gin.Context) {
	resp, err := h.students.FindByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateStudent handles POST /api/v1/students.
func (h *Handler) CreateStudent(c *gin.Context) {
	var req dto.StudentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	resp, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateStudent handles PUT and PATCH /api/v1/students/:id.
func (h *Handler) UpdateStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.StudentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	resp, err := h.students.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteStudent handles DELETE /api/v1/students/:id.
func (h *Handler) DeleteStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.students.DeleteByID(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
