package location

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dentradar/dentradar-api/internal/handler"
	"github.com/dentradar/dentradar-api/internal/service/location"
)

type Handler struct {
	service *location.Service
}

func NewHandler(service *location.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Autocomplete(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	suggestions, err := h.service.Autocomplete(c.Request.Context(), query, c.Query("zip"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/locations/autocomplete", h.Autocomplete)
}
