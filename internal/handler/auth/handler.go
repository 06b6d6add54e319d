package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dentradar/dentradar-api/internal/handler"
	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/service/auth"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RequestOTP(c *gin.Context) {
	var req model.OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.RequestOTP(c.Request.Context(), req.Phone); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "verification code sent"})
}

func (h *Handler) VerifyOTP(c *gin.Context) {
	var req model.OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	token, err := h.service.VerifyOTP(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	otp := r.Group("/auth/otp")
	{
		otp.POST("/request", h.RequestOTP)
		otp.POST("/verify", h.VerifyOTP)
	}
}
