package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-registry-backend/internal/dto"
)

// ListInstitutes handles GET /api/v1/institutes?city=&name=.
func (h *Handler) ListInstitutes(c *gin.Context) {
	resp, err := h.institutes.FindAll(c.Request.Context(), c.Query("city"), c.Query("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetInstitute handles GET /api/v1/institutes/:id.
func (h *Handler) GetInstitute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.institutes.FindByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetInstituteByUUID handles GET /api/v1/institutes/uuid/:uuid.
func (h *Handler) GetInstituteByUUID(c *gin.Context) {
	resp, err := h.institutes.FindByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateInstitute handles POST /api/v1/institutes.
func (h *Handler) CreateInstitute(c *gin.Context) {
	var req dto.InstituteCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	resp, err := h.institutes.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateInstitute handles PUT and PATCH /api/v1/institutes/:id. Both apply
// merge semantics: absent fields keep their stored values.
func (h *Handler) UpdateInstitute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.InstituteUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	resp, err := h.institutes.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteInstitute handles DELETE /api/v1/institutes/:id.
func (h *Handler) DeleteInstitute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.institutes.DeleteByID(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
