package request

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/reqtrack/reqtrack/internal/domain/request/valueobjects"
)

// Update is a partial update. A nil pointer means the field was not
// submitted. ParentSet distinguishes an absent parent_request from an
// explicit null, which clears it.
type Update struct {
	Title    *string
	Content  *string
	Reporter *string
	Status   *vo.Status
	Priority *vo.Priority

	CustomerIDs  *[]uint
	TagIDs       *[]uint
	ParentSet    bool
	ParentID     *uint
	RelatedIDs   *[]uint
	CustomFields *map[string]any
}

// ApplyUpdate applies u on behalf of actorID and returns the history entries
// it appended.
//
// Scalar fields are recorded only when the value actually changes.
// Collection and reference fields are recorded whenever they are submitted,
// even if the new value equals the old one. Entries are appended in a fixed
// field order and share actor and timestamp. updatedBy is set on every call.
func (r *Request) ApplyUpdate(u Update, actorID uint, now time.Time) ([]HistoryEntry, error) {
	if err := u.validate(); err != nil {
		return nil, err
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor is required")
	}

	var changes []Change

	if u.Title != nil && *u.Title != r.title {
		changes = append(changes, TextChange{field: FieldTitle, Old: r.title, New: *u.Title})
		r.title = *u.Title
	}
	if u.Content != nil && *u.Content != r.content {
		changes = append(changes, TextChange{field: FieldContent, Old: r.content, New: *u.Content})
		r.content = *u.Content
	}
	if u.Reporter != nil && *u.Reporter != r.reporter {
		changes = append(changes, TextChange{field: FieldReporter, Old: r.reporter, New: *u.Reporter})
		r.reporter = *u.Reporter
	}
	if u.Status != nil && *u.Status != r.status {
		changes = append(changes, StatusChange{Old: r.status, New: *u.Status})
		r.status = *u.Status
	}
	if u.Priority != nil && *u.Priority != r.priority {
		changes = append(changes, PriorityChange{Old: r.priority, New: *u.Priority})
		r.priority = *u.Priority
	}

	if u.CustomerIDs != nil {
		next := cloneIDs(*u.CustomerIDs)
		changes = append(changes, RefSetChange{field: FieldCustomers, Old: r.customerIDs, New: next})
		r.customerIDs = next
	}
	if u.TagIDs != nil {
		next := cloneIDs(*u.TagIDs)
		changes = append(changes, RefSetChange{field: FieldTags, Old: r.tagIDs, New: next})
		r.tagIDs = next
	}
	if u.ParentSet {
		next := cloneRef(u.ParentID)
		changes = append(changes, RefChange{Old: r.parentID, New: next})
		r.parentID = next
	}
	if u.RelatedIDs != nil {
		next := cloneIDs(*u.RelatedIDs)
		changes = append(changes, RefSetChange{field: FieldRelatedRequests, Old: r.relatedIDs, New: next})
		r.relatedIDs = next
	}
	if u.CustomFields != nil {
		next := cloneFields(*u.CustomFields)
		changes = append(changes, CustomFieldsChange{Old: r.customFields, New: next})
		r.customFields = next
	}

	appended := make([]HistoryEntry, 0, len(changes))
	for _, c := range changes {
		appended = append(appended, NewHistoryEntry(c, actorID, now))
	}
	r.history = append(r.history, appended...)
	r.updatedBy = actorID
	r.updatedAt = now

	return appended, nil
}

func (u Update) validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if u.Content != nil && strings.TrimSpace(*u.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}
	if u.Status != nil && !u.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", *u.Status)
	}
	if u.Priority != nil && !u.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", *u.Priority)
	}
	return nil
}

// StatusTransition reports the status change among entries, if any.
func StatusTransition(entries []HistoryEntry) (StatusChange, bool) {
	for _, e := range entries {
		if c, ok := e.Change().(StatusChange); ok {
			return c, true
		}
	}
	return StatusChange{}, false
}
