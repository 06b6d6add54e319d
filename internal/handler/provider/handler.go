package provider

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentradar/dentradar-api/internal/handler"
	"github.com/dentradar/dentradar-api/internal/hours"
	"github.com/dentradar/dentradar-api/internal/service/provider"
)

type Handler struct {
	service *provider.Service
	hours   *hours.Engine
}

func NewHandler(service *provider.Service, hoursEngine *hours.Engine) *Handler {
	return &Handler{service: service, hours: hoursEngine}
}

// GetProvider resolves an opaque identifier (phone number, place id or
// internal id) to a provider and returns the directory view with the current
// open/closed status.
func (h *Handler) GetProvider(c *gin.Context) {
	resolution, err := h.service.Resolve(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		handler.Error(c, err)
		return
	}

	view := resolution.Provider.View()
	c.JSON(http.StatusOK, gin.H{
		"provider": view,
		"status":   h.hours.Status(resolution.Provider),
		"matched":  resolution.Strategy,
	})
}

func (h *Handler) GetHours(c *gin.Context) {
	resolution, err := h.service.Resolve(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		handler.Error(c, err)
		return
	}

	p := resolution.Provider
	c.JSON(http.StatusOK, gin.H{
		"hours":  p.OpeningHours,
		"status": h.hours.Status(p),
	})
}

// GetAvailability serves the scheduling UI: bookable dates for the coming
// days plus the slots for a selected date.
func (h *Handler) GetAvailability(c *gin.Context) {
	resolution, err := h.service.Resolve(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	p := resolution.Provider

	days := 14
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > 60 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days parameter"})
			return
		}
		days = parsed
	}

	var start *time.Time
	if v := c.Query("start"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date, expected YYYY-MM-DD"})
			return
		}
		start = &parsed
	}

	resp := gin.H{"dates": h.hours.AvailableDates(p, days, start)}

	if v := c.Query("date"); v != "" {
		selected, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		resp["slots"] = h.hours.AvailableTimeSlots(p, selected)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	providers := r.Group("/providers")
	{
		providers.GET("/:identifier", h.GetProvider)
		providers.GET("/:identifier/hours", h.GetHours)
		providers.GET("/:identifier/availability", h.GetAvailability)
	}
}
