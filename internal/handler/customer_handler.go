package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/service"
	"github.com/stagepass/stagepass/pkg/response"
)

// CustomerHandler handles customer requests
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func toCustomerResponse(cu *domain.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ExternalID:      cu.ExternalID,
		Name:            cu.Name,
		BillingAddress:  cu.BillingAddress,
		ShippingAddress: cu.ShippingAddress,
		CreatedAt:       formatTime(cu.CreatedAt),
		UpdatedAt:       formatTime(cu.UpdatedAt),
	}
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cu, err := h.customerService.Create(c.Request.Context(), sc, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Created(c, toCustomerResponse(cu))
}

// GetByExternalID handles GET /customers/:id
func (h *CustomerHandler) GetByExternalID(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "customer")
	if !ok {
		return
	}

	cu, err := h.customerService.GetByExternalID(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toCustomerResponse(cu))
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	customers, err := h.customerService.List(c.Request.Context(), sc)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, cu := range customers {
		out = append(out, toCustomerResponse(cu))
	}
	response.Success(c, out)
}

// Update handles PATCH /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, ok := pathID(c, "customer")
	if !ok {
		return
	}

	cu, err := h.customerService.Update(c.Request.Context(), sc, id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, toCustomerResponse(cu))
}

// Delete handles DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	sc, ok := requestScope(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "customer")
	if !ok {
		return
	}

	deleted, err := h.customerService.Delete(c.Request.Context(), sc, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "customer not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
