package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/service"
	"github.com/stagepass/stagepass/pkg/response"
)

// TicketSaleHandler handles ticket sale requests
type TicketSaleHandler struct {
	saleService service.TicketSaleService
}

// NewTicketSaleHandler creates a new TicketSaleHandler
func NewTicketSaleHandler(saleService service.TicketSaleService) *TicketSaleHandler {
	return &TicketSaleHandler{saleService: saleService}
}

func toTicketSaleResponse(s *domain.TicketSale) *dto.TicketSaleResponse {
	return &dto.TicketSaleResponse{
		ExternalID:     s.ExternalID,
		ShowExternalID: s.ShowExternalID,
		Quantity:       s.Quantity,
		CreatedAt:      formatTime(s.CreatedAt),
		UpdatedAt:      formatTime(s.UpdatedAt),
	}
}

// Create handles POST /ticket-sales
func (h *TicketSaleHandler) Create(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateTicketSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	s, err := h.saleService.Create(c.Request.Context(), sc, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Created(c, toTicketSaleResponse(s))
}

// GetByExternalID handles GET /ticket-sales/:id
func (h *TicketSaleHandler) GetByExternalID(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "ticket sale")
	if !ok {
		return
	}

	s, err := h.saleService.GetByExternalID(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toTicketSaleResponse(s))
}

// ListByShow handles GET /shows/:id/ticket-sales
func (h *TicketSaleHandler) ListByShow(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "show")
	if !ok {
		return
	}

	sales, err := h.saleService.ListByShowExternalID(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]*dto.TicketSaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toTicketSaleResponse(s))
	}
	response.Success(c, out)
}

// Update handles PATCH /ticket-sales/:id
func (h *TicketSaleHandler) Update(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.UpdateTicketSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, ok := pathID(c, "ticket sale")
	if !ok {
		return
	}

	s, err := h.saleService.Update(c.Request.Context(), sc, id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toTicketSaleResponse(s))
}

// Delete handles DELETE /ticket-sales/:id
func (h *TicketSaleHandler) Delete(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "ticket sale")
	if !ok {
		return
	}

	deleted, err := h.saleService.Delete(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "ticket sale not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
