package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/service"
	"github.com/stagepass/stagepass/pkg/response"
)

// ShowHandler handles show scheduling requests
type ShowHandler struct {
	showService service.ShowService
}

// NewShowHandler creates a new ShowHandler
func NewShowHandler(showService service.ShowService) *ShowHandler {
	return &ShowHandler{showService: showService}
}

func toShowResponse(s *domain.Show) *dto.ShowResponse {
	return &dto.ShowResponse{
		ExternalID:      s.ExternalID,
		VenueExternalID: s.VenueExternalID,
		VenueName:       s.VenueName,
		ActExternalID:   s.ActExternalID,
		ActName:         s.ActName,
		TicketCount:     s.TicketCount,
		StartTime:       formatTime(s.StartTime),
		CreatedAt:       formatTime(s.CreatedAt),
		UpdatedAt:       formatTime(s.UpdatedAt),
	}
}

func toShowResponses(shows []*domain.Show) []*dto.ShowResponse {
	out := make([]*dto.ShowResponse, 0, len(shows))
	for _, s := range shows {
		out = append(out, toShowResponse(s))
	}
	return out
}

// Create handles POST /shows
func (h *ShowHandler) Create(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	s, err := h.showService.Create(c.Request.Context(), sc, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Created(c, toShowResponse(s))
}

// GetByExternalID handles GET /shows/:id
func (h *ShowHandler) GetByExternalID(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "show")
	if !ok {
		return
	}

	s, err := h.showService.GetByExternalID(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toShowResponse(s))
}

// ListByAct handles GET /acts/:id/shows
func (h *ShowHandler) ListByAct(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "act")
	if !ok {
		return
	}

	shows, err := h.showService.ListByActExternalID(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toShowResponses(shows))
}

// Nearby handles GET /venues/:id/shows/nearby. The optional "at" query
// parameter is an RFC 3339 reference time; it defaults to the current time.
func (h *ShowHandler) Nearby(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	referenceTime := time.Now()
	if at := c.Query("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			response.BadRequest(c, "at must be an RFC 3339 timestamp")
			return
		}
		referenceTime = parsed
	}

	shows, message, err := h.showService.Nearby(c.Request.Context(), sc, id, referenceTime)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, &dto.NearbyShowsResponse{
		Message: message,
		Shows:   toShowResponses(shows),
	})
}

// Update handles PATCH /shows/:id
func (h *ShowHandler) Update(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "show")
	if !ok {
		return
	}

	var req dto.UpdateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	s, err := h.showService.Update(c.Request.Context(), sc, id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toShowResponse(s))
}

// Delete handles DELETE /shows/:id
func (h *ShowHandler) Delete(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "show")
	if !ok {
		return
	}

	deleted, err := h.showService.Delete(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "show not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
