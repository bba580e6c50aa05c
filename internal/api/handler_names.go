package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-registry-backend/internal/dto"
)

// ListNames handles GET /api/v1/names?code=.
func (h *Handler) ListNames(c *gin.Context) {
	resp, err := h.names.FindAll(c.Request.Context(), c.Query("code"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetName handles GET /api/v1/names/:id.
func (h *Handler) GetName(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.names.FindByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetNameByCode handles GET /api/v1/names/code/:code.
func (h *Handler) GetNameByCode(c *gin.Context) {
	resp, err := h.names.FindByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateName handles POST /api/v1/names.
func (h *Handler) CreateName(c *gin.Context) {
	var req dto.NameCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	resp, err := h.names.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateName handles PUT and PATCH /api/v1/names/:id.
func (h *Handler) UpdateName(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.NameUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	resp, err := h.names.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteName handles DELETE /api/v1/names/:id.
func (h *Handler) DeleteName(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.names.DeleteByID(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
