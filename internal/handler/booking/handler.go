package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dentradar/dentradar-api/internal/handler"
	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/service/booking"
)

type Handler struct {
	service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": resp.Booking,
		"provider": resp.Provider,
		"message": "Booking request received",
	})
}

// ListBookings requires an email or provider_id filter.
func (h *Handler) ListBookings(c *gin.Context) {
	filters := &model.BookingFilters{Email: c.Query("email")}

	if v := c.Query("provider_id"); v != "" {
		providerID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid provider_id"})
			return
		}
		filters.ProviderID = &providerID
	}

	if v := c.Query("status"); v != "" {
		filters.Status = model.BookingStatus(v)
	}

	bookings, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
	}
}
