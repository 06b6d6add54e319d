package person

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dentradar/dentradar-api/internal/handler"
	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/service/person"
)

type Handler struct {
	service *person.Service
}

func NewHandler(service *person.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListPeople(c *gin.Context) {
	people, err := h.service.List(c.Request.Context(), c.GetString("phone"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "people": people})
}

func (h *Handler) CreatePerson(c *gin.Context) {
	var req model.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.GetString("phone"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "person": created})
}

// CreateForProvider is the widget-facing variant scoped by the provider id in
// the path. It is registered on the public router.
func (h *Handler) CreateForProvider(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("identifier"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid provider id"})
		return
	}

	var req model.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	created, err := h.service.CreateForProvider(c.Request.Context(), providerID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "person": created})
}

func (h *Handler) UpdatePerson(c *gin.Context) {
	var req model.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.GetString("phone"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "person": updated})
}

func (h *Handler) DeletePerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person id"})
		return
	}

	name, err := h.service.Delete(c.Request.Context(), c.GetString("phone"), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": name + " removed"})
}

// RegisterPublicRoutes mounts the widget-facing create endpoint. The param is
// named to match the provider handler's routes on the same segment.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/providers/:identifier/people", h.CreateForProvider)
}

// RegisterRoutes mounts the session-scoped people endpoints; these expect the
// auth middleware to have populated the caller's phone.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	people := r.Group("/people")
	{
		people.GET("", h.ListPeople)
		people.POST("", h.CreatePerson)
		people.PUT("", h.UpdatePerson)
		people.DELETE("/:id", h.DeletePerson)
	}
}
