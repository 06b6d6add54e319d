package portal

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dentradar/dentradar-api/internal/handler"
	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/service/provider"
)

// Handler serves the authenticated provider's own profile.
type Handler struct {
	service *provider.Service
}

func NewHandler(service *provider.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.service.GetForCaller(c.Request.Context(), c.GetString("phone"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": p.View()})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProviderProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), c.GetString("phone"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "provider": p.View()})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	profile := r.Group("/provider/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}
}
