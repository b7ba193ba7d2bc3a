package tag

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	vo "github.com/reqtrack/reqtrack/internal/domain/tag/valueobjects"
)

const DefaultColor = "#3498db"

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Tag struct {
	id        uint
	name      string
	color     string
	category  vo.Category
	createdAt time.Time
	updatedAt time.Time
}

// NewTag applies the default color and category when they are empty.
func NewTag(name, color string, category vo.Category, now time.Time) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if color == "" {
		color = DefaultColor
	}
	if !colorPattern.MatchString(color) {
		return nil, fmt.Errorf("invalid color: %s", color)
	}
	if category == "" {
		category = vo.CategoryOther
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid tag category: %s", category)
	}
	return &Tag{
		name:      name,
		color:     strings.ToLower(color),
		category:  category,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTag(id uint, name, color string, category vo.Category, createdAt, updatedAt time.Time) (*Tag, error) {
	if id == 0 {
		return nil, fmt.Errorf("tag ID cannot be zero")
	}
	if !category.IsValid() {
		category = vo.CategoryOther
	}
	return &Tag{
		id:        id,
		name:      name,
		color:     color,
		category:  category,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Tag) ID() uint              { return t.id }
func (t *Tag) Name() string          { return t.name }
func (t *Tag) Color() string         { return t.color }
func (t *Tag) Category() vo.Category { return t.category }
func (t *Tag) CreatedAt() time.Time  { return t.createdAt }
func (t *Tag) UpdatedAt() time.Time  { return t.updatedAt }

func (t *Tag) SetID(id uint) {
	t.id = id
}

// Update overwrites only the non-empty inputs; color and category are
// re-validated when given.
func (t *Tag) Update(name, color string, category vo.Category, now time.Time) error {
	if color != "" && !colorPattern.MatchString(color) {
		return fmt.Errorf("invalid color: %s", color)
	}
	if category != "" && !category.IsValid() {
		return fmt.Errorf("invalid tag category: %s", category)
	}
	if v := strings.TrimSpace(name); v != "" {
		t.name = v
	}
	if color != "" {
		t.color = strings.ToLower(color)
	}
	if category != "" {
		t.category = category
	}
	t.updatedAt = now
	return nil
}
