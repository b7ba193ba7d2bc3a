package usecases

import (
	"context"
	"time"

	"github.com/reqtrack/reqtrack/internal/application/tag/dto"
	"github.com/reqtrack/reqtrack/internal/domain/tag"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type UpdateTagCommand struct {
	ID       uint
	Name     string
	Color    string
	Category string
	Lang     i18n.Lang
}

type UpdateTagUseCase struct {
	tagRepo tag.Repository
	logger  logger.Interface
}

func NewUpdateTagUseCase(tagRepo tag.Repository, logger logger.Interface) *UpdateTagUseCase {
	return &UpdateTagUseCase{tagRepo: tagRepo, logger: logger}
}

func (uc *UpdateTagUseCase) Execute(ctx context.Context, cmd UpdateTagCommand) (*dto.TagDTO, error) {
	t, err := uc.tagRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	category, err := parseOptionalCategory(cmd.Category)
	if err != nil {
		return nil, err
	}
	if err := t.Update(cmd.Name, cmd.Color, category, time.Now().UTC()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.tagRepo.ExistsByName(ctx, t.Name(), t.ID())
	if err != nil {
		uc.logger.Errorw("failed to check tag name", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("Tag name already exists")
	}

	if err := uc.tagRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update tag", "error", err, "tag_id", cmd.ID)
		return nil, err
	}

	result := dto.ToTagDTO(t, cmd.Lang)
	return &result, nil
}
