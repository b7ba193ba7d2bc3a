package usecases

import (
	"context"
	"time"

	"github.com/reqtrack/reqtrack/internal/application/tag/dto"
	"github.com/reqtrack/reqtrack/internal/domain/tag"
	vo "github.com/reqtrack/reqtrack/internal/domain/tag/valueobjects"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type CreateTagCommand struct {
	Name     string
	Color    string
	Category string
	Lang     i18n.Lang
}

type CreateTagUseCase struct {
	tagRepo tag.Repository
	logger  logger.Interface
}

func NewCreateTagUseCase(tagRepo tag.Repository, logger logger.Interface) *CreateTagUseCase {
	return &CreateTagUseCase{tagRepo: tagRepo, logger: logger}
}

func (uc *CreateTagUseCase) Execute(ctx context.Context, cmd CreateTagCommand) (*dto.TagDTO, error) {
	uc.logger.Infow("executing create tag use case", "name", cmd.Name)

	category, err := parseOptionalCategory(cmd.Category)
	if err != nil {
		return nil, err
	}

	t, err := tag.NewTag(cmd.Name, cmd.Color, category, time.Now().UTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.tagRepo.ExistsByName(ctx, t.Name(), 0)
	if err != nil {
		uc.logger.Errorw("failed to check tag name", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("Tag name already exists")
	}

	if err := uc.tagRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create tag", "error", err)
		return nil, err
	}

	result := dto.ToTagDTO(t, cmd.Lang)
	return &result, nil
}

// parseOptionalCategory maps "" to "" so the domain default applies.
func parseOptionalCategory(s string) (vo.Category, error) {
	if s == "" {
		return "", nil
	}
	c, err := vo.ParseCategory(s)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}
	return c, nil
}
