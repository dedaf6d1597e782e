package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/service"
	"github.com/stagepass/stagepass/pkg/response"
)

// TicketOfferHandler handles ticket offer requests
type TicketOfferHandler struct {
	offerService service.TicketOfferService
}

// NewTicketOfferHandler creates a new TicketOfferHandler
func NewTicketOfferHandler(offerService service.TicketOfferService) *TicketOfferHandler {
	return &TicketOfferHandler{offerService: offerService}
}

func toTicketOfferResponse(o *domain.TicketOffer) *dto.TicketOfferResponse {
	return &dto.TicketOfferResponse{
		ExternalID:     o.ExternalID,
		ShowExternalID: o.ShowExternalID,
		Name:           o.Name,
		Price:          o.Price,
		TicketCount:    o.TicketCount,
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
}

// Create handles POST /ticket-offers
func (h *TicketOfferHandler) Create(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateTicketOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	o, err := h.offerService.Create(c.Request.Context(), sc, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Created(c, toTicketOfferResponse(o))
}

// GetByExternalID handles GET /ticket-offers/:id
func (h *TicketOfferHandler) GetByExternalID(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "ticket offer")
	if !ok {
		return
	}

	o, err := h.offerService.GetByExternalID(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toTicketOfferResponse(o))
}

// ListByShow handles GET /shows/:id/ticket-offers
func (h *TicketOfferHandler) ListByShow(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "show")
	if !ok {
		return
	}

	offers, err := h.offerService.ListByShowExternalID(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]*dto.TicketOfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, toTicketOfferResponse(o))
	}
	response.Success(c, out)
}

// CapacitySummary handles GET /shows/:id/capacity
func (h *TicketOfferHandler) CapacitySummary(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	showExternalID, ok := pathID(c, "show")
	if !ok {
		return
	}

	summary, err := h.offerService.CapacitySummary(c.Request.Context(), sc, showExternalID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, &dto.OfferCapacityResponse{
		ShowExternalID:  showExternalID,
		ShowTicketCount: summary.ShowTicketCount,
		Allocated:       summary.Allocated,
		Remaining:       summary.Remaining,
	})
}
