package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/application/request/usecases"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/common"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
	"github.com/reqtrack/reqtrack/internal/shared/utils"
)

type Handler struct {
	createUC  usecases.CreateRequestExecutor
	listUC    usecases.ListRequestsExecutor
	getUC     usecases.GetRequestExecutor
	updateUC  usecases.UpdateRequestExecutor
	deleteUC  usecases.DeleteRequestExecutor
	commentUC usecases.AddCommentExecutor
	similarUC usecases.FindSimilarExecutor
	statsUC   usecases.RequestStatsExecutor
	renderUC  usecases.RenderRequestExecutor
	logger    logger.Interface
}

type HandlerDeps struct {
	Create  usecases.CreateRequestExecutor
	List    usecases.ListRequestsExecutor
	Get     usecases.GetRequestExecutor
	Update  usecases.UpdateRequestExecutor
	Delete  usecases.DeleteRequestExecutor
	Comment usecases.AddCommentExecutor
	Similar usecases.FindSimilarExecutor
	Stats   usecases.RequestStatsExecutor
	Render  usecases.RenderRequestExecutor
	Logger  logger.Interface
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		createUC:  deps.Create,
		listUC:    deps.List,
		getUC:     deps.Get,
		updateUC:  deps.Update,
		deleteUC:  deps.Delete,
		commentUC: deps.Comment,
		similarUC: deps.Similar,
		statsUC:   deps.Stats,
		renderUC:  deps.Render,
		logger:    deps.Logger,
	}
}

// Create handles POST /api/requests
// @Summary Create a request
// @Tags requests
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body CreateRequestRequest true "Request"
// @Success 201 {object} utils.APIResponse{data=dto.RequestDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /requests [post]
func (h *Handler) Create(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create request", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(userID, c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Request created successfully")
}

// List handles GET /api/requests
// @Summary List requests
// @Tags requests
// @Produce json
// @Security Bearer
// @Param status query string false "Status code or label"
// @Param priority query string false "Priority code or label"
// @Param customer query int false "Customer ID"
// @Param tag query int false "Tag ID"
// @Param search query string false "Substring of title, content or reporter"
// @Param sort query string false "Sort column"
// @Param order query string false "asc or desc"
// @Param page query int false "Page"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /requests [get]
func (h *Handler) List(c *gin.Context) {
	query, err := parseListRequestsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, result.Page, result.PageSize)
}

// Get handles GET /api/requests/:id
// @Summary Get a populated request
// @Tags requests
// @Produce json
// @Security Bearer
// @Param id path int true "Request ID"
// @Success 200 {object} utils.APIResponse{data=dto.RequestDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /requests/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id", "request")
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

// Update handles PUT /api/requests/:id
// @Summary Update a request and record history
// @Tags requests
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Request ID"
// @Param body body UpdateRequestRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.RequestDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /requests/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := common.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update request", "error", err, "request_id", id)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id, userID, c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request updated successfully", result)
}

// Delete handles DELETE /api/requests/:id
// @Summary Delete a request
// @Tags requests
// @Security Bearer
// @Param id path int true "Request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /requests/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request deleted successfully", nil)
}

// AddComment handles POST /api/requests/:id/comments
// @Summary Comment on a request
// @Tags requests
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Request ID"
// @Param body body AddCommentRequest true "Comment"
// @Success 201 {object} utils.APIResponse{data=dto.RequestDTO}
// @Router /requests/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := common.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.commentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		RequestID:   id,
		AuthorID:    userID,
		Content:     req.Content,
		Attachments: req.Attachments,
		Lang:        common.Lang(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// FindSimilar handles POST /api/requests/similar
// @Summary Find requests similar to a draft
// @Tags requests
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body FindSimilarRequest true "Draft title and/or content"
// @Success 200 {object} utils.APIResponse{data=[]dto.SimilarRequestDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /requests/similar [post]
func (h *Handler) FindSimilar(c *gin.Context) {
	var req FindSimilarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.similarUC.Execute(c.Request.Context(), usecases.FindSimilarQuery{Title: req.Title, Content: req.Content})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Stats handles GET /api/requests/stats
// @Summary Dashboard aggregates
// @Tags requests
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=dto.StatsDTO}
// @Router /requests/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context(), common.Lang(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Rendered handles GET /api/requests/:id/rendered
// @Summary Request content and comments as sanitized HTML
// @Tags requests
// @Produce json
// @Security Bearer
// @Param id path int true "Request ID"
// @Success 200 {object} utils.APIResponse{data=dto.RenderedRequestDTO}
// @Router /requests/{id}/rendered [get]
func (h *Handler) Rendered(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.renderUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
