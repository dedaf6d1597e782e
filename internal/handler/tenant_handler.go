package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/service"
	"github.com/stagepass/stagepass/pkg/response"
)

// TenantHandler handles tenant provisioning. All routes are admin only.
type TenantHandler struct {
	tenantService service.TenantService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

func toTenantResponse(t *domain.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ExternalID: t.ExternalID,
		Name:       t.Name,
		Slug:       t.Slug,
		IsActive:   t.IsActive,
		CreatedAt:  formatTime(t.CreatedAt),
		UpdatedAt:  formatTime(t.UpdatedAt),
	}
}

// Create handles POST /admin/tenants
func (h *TenantHandler) Create(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.tenantService.Create(c.Request.Context(), sc, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Created(c, toTenantResponse(t))
}

// GetByExternalID handles GET /admin/tenants/:id
func (h *TenantHandler) GetByExternalID(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "tenant")
	if !ok {
		return
	}

	t, err := h.tenantService.GetByExternalID(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toTenantResponse(t))
}

// GetBySlug handles GET /admin/tenants/slug/:slug
func (h *TenantHandler) GetBySlug(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	t, err := h.tenantService.GetBySlug(c.Request.Context(), sc, c.Param("slug"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toTenantResponse(t))
}

// List handles GET /admin/tenants
func (h *TenantHandler) List(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	tenants, err := h.tenantService.List(c.Request.Context(), sc)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]*dto.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, toTenantResponse(t))
	}
	response.Success(c, out)
}
