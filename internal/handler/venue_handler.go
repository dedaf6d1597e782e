package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/service"
	"github.com/stagepass/stagepass/pkg/response"
)

// VenueHandler handles venue requests
type VenueHandler struct {
	venueService service.VenueService
}

// NewVenueHandler creates a new VenueHandler
func NewVenueHandler(venueService service.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

func toVenueResponse(v *domain.Venue) *dto.VenueResponse {
	return &dto.VenueResponse{
		ExternalID:      v.ExternalID,
		Name:            v.Name,
		Address:         v.Address,
		Latitude:        v.Latitude,
		Longitude:       v.Longitude,
		SeatingCapacity: v.SeatingCapacity,
		Description:     v.Description,
		CreatedAt:       formatTime(v.CreatedAt),
		UpdatedAt:       formatTime(v.UpdatedAt),
	}
}

// Create handles POST /venues
func (h *VenueHandler) Create(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	v, err := h.venueService.Create(c.Request.Context(), sc, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Created(c, toVenueResponse(v))
}

// GetByExternalID handles GET /venues/:id
func (h *VenueHandler) GetByExternalID(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	v, err := h.venueService.GetByExternalID(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toVenueResponse(v))
}

// List handles GET /venues
func (h *VenueHandler) List(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	venues, err := h.venueService.List(c.Request.Context(), sc)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]*dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		out = append(out, toVenueResponse(v))
	}
	response.Success(c, out)
}

// Update handles PATCH /venues/:id
func (h *VenueHandler) Update(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	v, err := h.venueService.Update(c.Request.Context(), sc, id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toVenueResponse(v))
}

// Delete handles DELETE /venues/:id
func (h *VenueHandler) Delete(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	deleted, err := h.venueService.Delete(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "venue not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
