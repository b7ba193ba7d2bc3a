package tag

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/application/tag/usecases"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/common"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
	"github.com/reqtrack/reqtrack/internal/shared/utils"
)

type CreateTagRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Color    string `json:"color" validate:"omitempty,hexcolor6"`
	Category string `json:"category" validate:"omitempty,tagcategory"`
}

type UpdateTagRequest struct {
	Name     string `json:"name" binding:"max=50"`
	Color    string `json:"color" validate:"omitempty,hexcolor6"`
	Category string `json:"category" validate:"omitempty,tagcategory"`
}

type Handler struct {
	createUC     usecases.CreateTagExecutor
	updateUC     usecases.UpdateTagExecutor
	deleteUC     usecases.DeleteTagExecutor
	getUC        usecases.GetTagExecutor
	listUC       usecases.ListTagsExecutor
	byCategoryUC usecases.ListTagsByCategoryExecutor
	statsUC      usecases.TagStatsExecutor
	logger       logger.Interface
}

func NewHandler(
	createUC usecases.CreateTagExecutor,
	updateUC usecases.UpdateTagExecutor,
	deleteUC usecases.DeleteTagExecutor,
	getUC usecases.GetTagExecutor,
	listUC usecases.ListTagsExecutor,
	byCategoryUC usecases.ListTagsByCategoryExecutor,
	statsUC usecases.TagStatsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:     createUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		getUC:        getUC,
		listUC:       listUC,
		byCategoryUC: byCategoryUC,
		statsUC:      statsUC,
		logger:       logger,
	}
}

// Create handles POST /api/tags
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body CreateTagRequest true "Tag"
// @Success 201 {object} utils.APIResponse{data=dto.TagDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /tags [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create tag", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTagCommand{
		Name:     req.Name,
		Color:    req.Color,
		Category: req.Category,
		Lang:     common.Lang(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Tag created successfully")
}

// List handles GET /api/tags
// @Summary List tags
// @Tags tags
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]dto.TagDTO}
// @Router /tags [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), common.Lang(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Stats handles GET /api/tags/stats
// @Summary Tag counts per category
// @Tags tags
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]dto.CategoryStatDTO}
// @Router /tags/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context(), common.Lang(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ByCategory handles GET /api/tags/category/:category
// @Summary Tags in one category
// @Tags tags
// @Produce json
// @Security Bearer
// @Param category path string true "Category code or Japanese label"
// @Success 200 {object} utils.APIResponse{data=[]dto.TagDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /tags/category/{category} [get]
func (h *Handler) ByCategory(c *gin.Context) {
	result, err := h.byCategoryUC.Execute(c.Request.Context(), c.Param("category"), common.Lang(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /api/tags/:id
// @Summary Get a tag
// @Tags tags
// @Produce json
// @Security Bearer
// @Param id path int true "Tag ID"
// @Success 200 {object} utils.APIResponse{data=dto.TagDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /tags/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id", "tag")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id, common.Lang(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PUT /api/tags/:id
// @Summary Update a tag
// @Tags tags
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Tag ID"
// @Param body body UpdateTagRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.TagDTO}
// @Router /tags/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id", "tag")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTagCommand{
		ID:       id,
		Name:     req.Name,
		Color:    req.Color,
		Category: req.Category,
		Lang:     common.Lang(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tag updated successfully", result)
}

// Delete handles DELETE /api/tags/:id
// @Summary Delete a tag
// @Tags tags
// @Security Bearer
// @Param id path int true "Tag ID"
// @Success 200 {object} utils.APIResponse
// @Router /tags/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id", "tag")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tag deleted successfully", nil)
}
