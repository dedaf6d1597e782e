package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/service"
	"github.com/stagepass/stagepass/pkg/response"
)

// ActHandler handles act requests
type ActHandler struct {
	actService service.ActService
}

// NewActHandler creates a new ActHandler
func NewActHandler(actService service.ActService) *ActHandler {
	return &ActHandler{actService: actService}
}

func toActResponse(a *domain.Act) *dto.ActResponse {
	return &dto.ActResponse{
		ExternalID: a.ExternalID,
		Name:       a.Name,
		CreatedAt:  formatTime(a.CreatedAt),
		UpdatedAt:  formatTime(a.UpdatedAt),
	}
}

// Create handles POST /acts
func (h *ActHandler) Create(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateActRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a, err := h.actService.Create(c.Request.Context(), sc, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Created(c, toActResponse(a))
}

// GetByExternalID handles GET /acts/:id
func (h *ActHandler) GetByExternalID(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "act")
	if !ok {
		return
	}

	a, err := h.actService.GetByExternalID(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toActResponse(a))
}

// List handles GET /acts
func (h *ActHandler) List(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	acts, err := h.actService.List(c.Request.Context(), sc)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]*dto.ActResponse, 0, len(acts))
	for _, a := range acts {
		out = append(out, toActResponse(a))
	}
	response.Success(c, out)
}

// Update handles PATCH /acts/:id
func (h *ActHandler) Update(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.UpdateActRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, ok := pathID(c, "act")
	if !ok {
		return
	}

	a, err := h.actService.Update(c.Request.Context(), sc, id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toActResponse(a))
}

// Delete handles DELETE /acts/:id
func (h *ActHandler) Delete(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "act")
	if !ok {
		return
	}

	deleted, err := h.actService.Delete(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "act not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
