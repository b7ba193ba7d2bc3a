package request

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment is embedded in a request and has no lifecycle of its own.
type Comment struct {
	id          string
	content     string
	authorID    uint
	attachments []string
	createdAt   time.Time
}

func NewComment(content string, authorID uint, attachments []string, now time.Time) (Comment, error) {
	if strings.TrimSpace(content) == "" {
		return Comment{}, fmt.Errorf("comment content is required")
	}
	if authorID == 0 {
		return Comment{}, fmt.Errorf("comment author is required")
	}
	if attachments == nil {
		attachments = []string{}
	}
	return Comment{
		id:          uuid.NewString(),
		content:     content,
		authorID:    authorID,
		attachments: slices.Clone(attachments),
		createdAt:   now,
	}, nil
}

func ReconstructComment(id, content string, authorID uint, attachments []string, createdAt time.Time) Comment {
	if attachments == nil {
		attachments = []string{}
	}
	return Comment{
		id:          id,
		content:     content,
		authorID:    authorID,
		attachments: attachments,
		createdAt:   createdAt,
	}
}

func (c Comment) ID() string            { return c.id }
func (c Comment) Content() string       { return c.content }
func (c Comment) AuthorID() uint        { return c.authorID }
func (c Comment) Attachments() []string { return slices.Clone(c.attachments) }
func (c Comment) CreatedAt() time.Time  { return c.createdAt }
