package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomify/roomify-backend/internal/catalog"
	"github.com/roomify/roomify-backend/internal/pkg/request"
	"github.com/roomify/roomify-backend/internal/pkg/response"
)

type Handler struct {
	catalog catalog.Catalog
}

func NewHandler(cat catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

// Create adds a service to the catalog. Admin only.
func (h *Handler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "details": err.Error()})
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	s, err := h.catalog.Create(c.Request.Context(), catalog.CreateRequest{
		Type:        catalog.ServiceType(req.Type),
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: isAvailable,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewServiceResponse(s))
}

// List returns the whole service catalog.
func (h *Handler) List(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ServiceResponse, len(services))
	for i, s := range services {
		items[i] = NewServiceResponse(s)
	}

	c.JSON(http.StatusOK, items)
}

// Get returns a single catalog service by id.
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid service id"})
		return
	}

	s, err := h.catalog.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewServiceResponse(s))
}

// Update modifies a catalog service. Admin only.
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid service id"})
		return
	}

	var body UpdateServiceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "details": err.Error()})
		return
	}

	req := catalog.UpdateRequest{
		Description: body.Description,
		Price:       body.Price,
		IsAvailable: body.IsAvailable,
	}
	if body.Type != nil {
		t := catalog.ServiceType(*body.Type)
		req.Type = &t
	}

	s, err := h.catalog.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewServiceResponse(s))
}

// Delete removes a service from the catalog. Admin only.
func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid service id"})
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "service removed"})
}
