package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/application/customer/usecases"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/common"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
	"github.com/reqtrack/reqtrack/internal/shared/utils"
)

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Company string `json:"company" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=50"`
}

func (r *CreateCustomerRequest) ToCommand() usecases.CreateCustomerCommand {
	return usecases.CreateCustomerCommand{Name: r.Name, Company: r.Company, Email: r.Email, Phone: r.Phone}
}

// UpdateCustomerRequest fields are optional; empty values keep the current ones.
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"max=100"`
	Company string `json:"company" binding:"max=200"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"max=50"`
}

func (r *UpdateCustomerRequest) ToCommand(id uint) usecases.UpdateCustomerCommand {
	return usecases.UpdateCustomerCommand{ID: id, Name: r.Name, Company: r.Company, Email: r.Email, Phone: r.Phone}
}

type Handler struct {
	createUC usecases.CreateCustomerExecutor
	updateUC usecases.UpdateCustomerExecutor
	deleteUC usecases.DeleteCustomerExecutor
	getUC    usecases.GetCustomerExecutor
	listUC   usecases.ListCustomersExecutor
	searchUC usecases.SearchCustomersExecutor
	logger   logger.Interface
}

func NewHandler(
	createUC usecases.CreateCustomerExecutor,
	updateUC usecases.UpdateCustomerExecutor,
	deleteUC usecases.DeleteCustomerExecutor,
	getUC usecases.GetCustomerExecutor,
	listUC usecases.ListCustomersExecutor,
	searchUC usecases.SearchCustomersExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		searchUC: searchUC,
		logger:   logger,
	}
}

// Create handles POST /api/customers
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body CreateCustomerRequest true "Customer"
// @Success 201 {object} utils.APIResponse{data=dto.CustomerDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /customers [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Customer created successfully")
}

// List handles GET /api/customers
// @Summary List customers
// @Tags customers
// @Produce json
// @Security Bearer
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /customers [get]
func (h *Handler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListCustomersQuery{Page: p.Page, PageSize: p.PageSize})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Customers, result.Total, p.Page, p.PageSize)
}

// Search handles GET /api/customers/search?query=
// @Summary Search customers by name or company
// @Tags customers
// @Produce json
// @Security Bearer
// @Param query query string true "Substring"
// @Success 200 {object} utils.APIResponse{data=[]dto.CustomerDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /customers/search [get]
func (h *Handler) Search(c *gin.Context) {
	result, err := h.searchUC.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /api/customers/:id
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Security Bearer
// @Param id path int true "Customer ID"
// @Success 200 {object} utils.APIResponse{data=dto.CustomerDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /customers/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PUT /api/customers/:id
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Customer ID"
// @Param body body UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.CustomerDTO}
// @Router /customers/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer updated successfully", result)
}

// Delete handles DELETE /api/customers/:id
// @Summary Delete a customer
// @Tags customers
// @Security Bearer
// @Param id path int true "Customer ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /customers/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer deleted successfully", nil)
}
