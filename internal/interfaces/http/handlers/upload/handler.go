package upload

import (
	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/application/upload/usecases"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/common"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
	"github.com/reqtrack/reqtrack/internal/shared/utils"
)

const formField = "file"

type Handler struct {
	uploadUC usecases.UploadFileExecutor
	logger   logger.Interface
}

func NewHandler(uploadUC usecases.UploadFileExecutor, logger logger.Interface) *Handler {
	return &Handler{uploadUC: uploadUC, logger: logger}
}

// Upload handles POST /api/upload
// @Summary Upload an attachment
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "Attachment"
// @Success 201 {object} utils.APIResponse{data=usecases.UploadFileResult}
// @Failure 400 {object} utils.APIResponse
// @Router /upload [post]
func (h *Handler) Upload(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fh, err := c.FormFile(formField)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err, "filename", fh.Filename)
		utils.ErrorResponseWithError(c, errors.NewInternalError("Failed to read uploaded file"))
		return
	}
	defer f.Close()

	result, err := h.uploadUC.Execute(c.Request.Context(), usecases.UploadFileCommand{
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
		UploaderID:  userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "File uploaded successfully")
}
