package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/application/identity/usecases"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/common"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
	"github.com/reqtrack/reqtrack/internal/shared/utils"
)

type Handler struct {
	registerUC   usecases.RegisterUserExecutor
	loginUC      usecases.LoginExecutor
	getProfileUC usecases.GetProfileExecutor
	listUsersUC  usecases.ListUsersExecutor
	logger       logger.Interface
}

func NewHandler(
	registerUC usecases.RegisterUserExecutor,
	loginUC usecases.LoginExecutor,
	getProfileUC usecases.GetProfileExecutor,
	listUsersUC usecases.ListUsersExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		registerUC:   registerUC,
		loginUC:      loginUC,
		getProfileUC: getProfileUC,
		listUsersUC:  listUsersUC,
		logger:       logger,
	}
}

// Register handles POST /api/users
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration"
// @Success 201 {object} utils.APIResponse{data=dto.AuthResultDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /users [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

// Login handles POST /api/users/login
// @Summary Log in
// @Tags users
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=dto.AuthResultDTO}
// @Failure 401 {object} utils.APIResponse
// @Router /users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// GetProfile handles GET /api/users/profile
// @Summary Current user's profile
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=dto.UserDTO}
// @Router /users/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /api/users (admin only)
// @Summary List users
// @Tags users
// @Produce json
// @Security Bearer
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 403 {object} utils.APIResponse
// @Router /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{Page: p.Page, PageSize: p.PageSize})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, p.Page, p.PageSize)
}
