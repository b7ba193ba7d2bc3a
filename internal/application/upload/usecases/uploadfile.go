package usecases

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

// Storage persists an uploaded object and returns the path or URL clients
// use to fetch it.
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

type UploadFileExecutor interface {
	Execute(ctx context.Context, cmd UploadFileCommand) (*UploadFileResult, error)
}

type UploadFileCommand struct {
	Filename    string
	Size        int64
	ContentType string
	Body        io.Reader
	UploaderID  uint
}

type UploadFileResult struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

type UploadFileUseCase struct {
	storage  Storage
	maxBytes int64
	now      func() time.Time
	logger   logger.Interface
}

func NewUploadFileUseCase(storage Storage, maxBytes int64, logger logger.Interface) *UploadFileUseCase {
	return &UploadFileUseCase{
		storage:  storage,
		maxBytes: maxBytes,
		now:      time.Now,
		logger:   logger,
	}
}

func (uc *UploadFileUseCase) Execute(ctx context.Context, cmd UploadFileCommand) (*UploadFileResult, error) {
	if cmd.Body == nil || cmd.Size == 0 {
		return nil, errors.NewBadRequestError("No file uploaded")
	}
	if uc.maxBytes > 0 && cmd.Size > uc.maxBytes {
		return nil, errors.NewValidationError(fmt.Sprintf("File exceeds the %d byte limit", uc.maxBytes))
	}

	key := uc.objectKey(cmd.Filename)
	path, err := uc.storage.Save(ctx, key, io.LimitReader(cmd.Body, cmd.Size), cmd.Size, cmd.ContentType)
	if err != nil {
		uc.logger.Errorw("failed to store upload", "error", err, "key", key)
		return nil, err
	}

	uc.logger.Infow("file uploaded", "key", key, "size", cmd.Size, "uploader_id", cmd.UploaderID)
	return &UploadFileResult{Filename: key, Path: path}, nil
}

// objectKey is "<unix millis>-<8 hex chars><ext>". The client filename only
// contributes its extension.
func (uc *UploadFileUseCase) objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if !extPattern.MatchString(ext) {
		ext = ""
	}
	return fmt.Sprintf("%d-%s%s", uc.now().UnixMilli(), uuid.NewString()[:8], ext)
}
