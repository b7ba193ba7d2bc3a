package dto

import (
	"time"

	"github.com/reqtrack/reqtrack/internal/domain/tag"
	vo "github.com/reqtrack/reqtrack/internal/domain/tag/valueobjects"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
)

type TagDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Color         string    `json:"color"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CategoryStatDTO struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int64  `json:"count"`
}

func CategoryLabel(lang i18n.Lang, c vo.Category) string {
	return i18n.Label(lang, c.String(), c.Label())
}

func ToTagDTO(t *tag.Tag, lang i18n.Lang) TagDTO {
	return TagDTO{
		ID:            t.ID(),
		Name:          t.Name(),
		Color:         t.Color(),
		Category:      t.Category().String(),
		CategoryLabel: CategoryLabel(lang, t.Category()),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

func ToTagDTOs(tags []*tag.Tag, lang i18n.Lang) []TagDTO {
	out := make([]TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, ToTagDTO(t, lang))
	}
	return out
}
