package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dentradar/dentradar-api/internal/handler"
	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/service/booking"
	"github.com/dentradar/dentradar-api/internal/service/profile"
)

// Handler exposes the back-office endpoints. All routes here sit behind the
// admin role check in the router.
type Handler struct {
	bookings *booking.Service
	profiles *profile.Service
}

func NewHandler(bookings *booking.Service, profiles *profile.Service) *Handler {
	return &Handler{bookings: bookings, profiles: profiles}
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req model.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	updated, err := h.bookings.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": updated})
}

func (h *Handler) VerifyProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	var req struct {
		Verified bool `json:"verified"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	updated, err := h.profiles.SetVerified(c.Request.Context(), id, req.Verified)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": updated})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
	r.PATCH("/profiles/:id/verify", h.VerifyProfile)
}
