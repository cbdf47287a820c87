package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saasbase/saasbase/backend/internal/contact"
	"github.com/saasbase/saasbase/backend/internal/store"
	"github.com/saasbase/saasbase/backend/pkg/logger"
)

// ContactRequest is the payload for POST /api/contact
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// ContactHandler persists contact-form submissions.
type ContactHandler struct {
	svc *contact.Service
}

func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/api/contact", h.Submit)
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Submit(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
			return
		}
		logger.Errorf("contact submission failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
