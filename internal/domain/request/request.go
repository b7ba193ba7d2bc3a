package request

import (
	"fmt"
	"slices"
	"strings"
	"time"

	vo "github.com/reqtrack/reqtrack/internal/domain/request/valueobjects"
)

// NumberFormat renders an allocated sequence value as the display number.
const NumberFormat = "REQ-%05d"

// SequenceName is the counter the request numbers are drawn from.
const SequenceName = "request"

// Request is the aggregate root for a logged piece of customer feedback.
// Comments and history live inside it and are loaded and saved with it.
type Request struct {
	id           uint
	number       string
	sequence     int64
	title        string
	content      string
	reporter     string
	status       vo.Status
	priority     vo.Priority
	customerIDs  []uint
	tagIDs       []uint
	parentID     *uint
	relatedIDs   []uint
	customFields map[string]any
	comments     []Comment
	history      []HistoryEntry
	createdBy    uint
	updatedBy    uint
	createdAt    time.Time
	updatedAt    time.Time
}

type NewRequestParams struct {
	Title        string
	Content      string
	Reporter     string
	Status       vo.Status
	Priority     vo.Priority
	CustomerIDs  []uint
	TagIDs       []uint
	ParentID     *uint
	RelatedIDs   []uint
	CustomFields map[string]any
	CreatedBy    uint
}

// NewRequest validates p and applies the status/priority defaults. The
// request has no number until AssignSequence is called.
func NewRequest(p NewRequestParams, now time.Time) (*Request, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		return nil, fmt.Errorf("content is required")
	}
	if p.CreatedBy == 0 {
		return nil, fmt.Errorf("creator is required")
	}

	status := p.Status
	if status == "" {
		status = vo.StatusNew
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	priority := p.Priority
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Request{
		title:        p.Title,
		content:      p.Content,
		reporter:     p.Reporter,
		status:       status,
		priority:     priority,
		customerIDs:  cloneIDs(p.CustomerIDs),
		tagIDs:       cloneIDs(p.TagIDs),
		parentID:     cloneRef(p.ParentID),
		relatedIDs:   cloneIDs(p.RelatedIDs),
		customFields: cloneFields(p.CustomFields),
		comments:     []Comment{},
		history:      []HistoryEntry{},
		createdBy:    p.CreatedBy,
		updatedBy:    p.CreatedBy,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID           uint
	Number       string
	Sequence     int64
	Title        string
	Content      string
	Reporter     string
	Status       vo.Status
	Priority     vo.Priority
	CustomerIDs  []uint
	TagIDs       []uint
	ParentID     *uint
	RelatedIDs   []uint
	CustomFields map[string]any
	Comments     []Comment
	History      []HistoryEntry
	CreatedBy    uint
	UpdatedBy    uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructRequest(p ReconstructParams) (*Request, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", p.Status)
	}
	if !p.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", p.Priority)
	}

	comments := p.Comments
	if comments == nil {
		comments = []Comment{}
	}
	history := p.History
	if history == nil {
		history = []HistoryEntry{}
	}

	return &Request{
		id:           p.ID,
		number:       p.Number,
		sequence:     p.Sequence,
		title:        p.Title,
		content:      p.Content,
		reporter:     p.Reporter,
		status:       p.Status,
		priority:     p.Priority,
		customerIDs:  cloneIDs(p.CustomerIDs),
		tagIDs:       cloneIDs(p.TagIDs),
		parentID:     cloneRef(p.ParentID),
		relatedIDs:   cloneIDs(p.RelatedIDs),
		customFields: cloneFields(p.CustomFields),
		comments:     comments,
		history:      history,
		createdBy:    p.CreatedBy,
		updatedBy:    p.UpdatedBy,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

func (r *Request) ID() uint                     { return r.id }
func (r *Request) Number() string               { return r.number }
func (r *Request) Sequence() int64              { return r.sequence }
func (r *Request) Title() string                { return r.title }
func (r *Request) Content() string              { return r.content }
func (r *Request) Reporter() string             { return r.reporter }
func (r *Request) Status() vo.Status            { return r.status }
func (r *Request) Priority() vo.Priority        { return r.priority }
func (r *Request) CustomerIDs() []uint          { return slices.Clone(r.customerIDs) }
func (r *Request) TagIDs() []uint               { return slices.Clone(r.tagIDs) }
func (r *Request) ParentID() *uint              { return cloneRef(r.parentID) }
func (r *Request) RelatedIDs() []uint           { return slices.Clone(r.relatedIDs) }
func (r *Request) CustomFields() map[string]any { return cloneFields(r.customFields) }
func (r *Request) Comments() []Comment          { return slices.Clone(r.comments) }
func (r *Request) History() []HistoryEntry      { return slices.Clone(r.history) }
func (r *Request) CreatedBy() uint              { return r.createdBy }
func (r *Request) UpdatedBy() uint              { return r.updatedBy }
func (r *Request) CreatedAt() time.Time         { return r.createdAt }
func (r *Request) UpdatedAt() time.Time         { return r.updatedAt }

func (r *Request) SetID(id uint) {
	r.id = id
}

// AssignSequence sets the counter value and the display number derived from
// it. A request is numbered exactly once.
func (r *Request) AssignSequence(seq int64) error {
	if r.number != "" {
		return fmt.Errorf("request already numbered as %s", r.number)
	}
	if seq <= 0 {
		return fmt.Errorf("invalid sequence value: %d", seq)
	}
	r.sequence = seq
	r.number = fmt.Sprintf(NumberFormat, seq)
	return nil
}

// AddComment appends a comment and marks the author as the last updater.
func (r *Request) AddComment(content string, authorID uint, attachments []string, now time.Time) (Comment, error) {
	c, err := NewComment(content, authorID, attachments, now)
	if err != nil {
		return Comment{}, err
	}
	r.comments = append(r.comments, c)
	r.updatedBy = authorID
	r.updatedAt = now
	return c, nil
}

// ReferencedUserIDs returns creator, updater, comment authors and history
// actors without duplicates.
func (r *Request) ReferencedUserIDs() []uint {
	ids := []uint{r.createdBy, r.updatedBy}
	for _, c := range r.comments {
		ids = append(ids, c.authorID)
	}
	for _, h := range r.history {
		ids = append(ids, h.changedBy)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
