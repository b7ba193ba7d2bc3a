package request

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	vo "github.com/reqtrack/reqtrack/internal/domain/request/valueobjects"
)

// Field names a tracked request attribute. The values are the wire names
// stored in history entries.
type Field string

const (
	FieldTitle           Field = "title"
	FieldContent         Field = "content"
	FieldReporter        Field = "reporter"
	FieldStatus          Field = "status"
	FieldPriority        Field = "priority"
	FieldCustomers       Field = "customers"
	FieldTags            Field = "tags"
	FieldParentRequest   Field = "parent_request"
	FieldRelatedRequests Field = "related_requests"
	FieldCustomFields    Field = "custom_fields"
)

// Change is one typed old/new pair. The concrete type is fixed by the field:
// TextChange for title/content/reporter, StatusChange, PriorityChange,
// RefSetChange for customers/tags/related_requests, RefChange for
// parent_request and CustomFieldsChange.
type Change interface {
	Field() Field
	OldValue() any
	NewValue() any
	change()
}

type TextChange struct {
	field    Field
	Old, New string
}

func (c TextChange) Field() Field  { return c.field }
func (c TextChange) OldValue() any { return c.Old }
func (c TextChange) NewValue() any { return c.New }
func (TextChange) change()         {}

type StatusChange struct {
	Old, New vo.Status
}

func (StatusChange) Field() Field    { return FieldStatus }
func (c StatusChange) OldValue() any { return c.Old }
func (c StatusChange) NewValue() any { return c.New }
func (StatusChange) change()         {}

type PriorityChange struct {
	Old, New vo.Priority
}

func (PriorityChange) Field() Field    { return FieldPriority }
func (c PriorityChange) OldValue() any { return c.Old }
func (c PriorityChange) NewValue() any { return c.New }
func (PriorityChange) change()         {}

type RefSetChange struct {
	field    Field
	Old, New []uint
}

func (c RefSetChange) Field() Field  { return c.field }
func (c RefSetChange) OldValue() any { return c.Old }
func (c RefSetChange) NewValue() any { return c.New }
func (RefSetChange) change()         {}

// RefChange is a nullable single reference; nil means "no parent".
type RefChange struct {
	Old, New *uint
}

func (RefChange) Field() Field    { return FieldParentRequest }
func (c RefChange) OldValue() any { return c.Old }
func (c RefChange) NewValue() any { return c.New }
func (RefChange) change()         {}

type CustomFieldsChange struct {
	Old, New map[string]any
}

func (CustomFieldsChange) Field() Field    { return FieldCustomFields }
func (c CustomFieldsChange) OldValue() any { return c.Old }
func (c CustomFieldsChange) NewValue() any { return c.New }
func (CustomFieldsChange) change()         {}

// HistoryEntry is an immutable audit record of a single field change.
type HistoryEntry struct {
	change    Change
	changedBy uint
	changedAt time.Time
}

func NewHistoryEntry(change Change, changedBy uint, changedAt time.Time) HistoryEntry {
	return HistoryEntry{change: change, changedBy: changedBy, changedAt: changedAt}
}

func (h HistoryEntry) Change() Change       { return h.change }
func (h HistoryEntry) Field() Field         { return h.change.Field() }
func (h HistoryEntry) ChangedBy() uint      { return h.changedBy }
func (h HistoryEntry) ChangedAt() time.Time { return h.changedAt }

// DecodeChange rebuilds a typed change from its stored JSON old/new values.
func DecodeChange(field string, oldRaw, newRaw json.RawMessage) (Change, error) {
	f := Field(field)
	switch f {
	case FieldTitle, FieldContent, FieldReporter:
		c := TextChange{field: f}
		return c.decode(oldRaw, newRaw)
	case FieldStatus:
		var c StatusChange
		if err := decodePair(oldRaw, newRaw, &c.Old, &c.New); err != nil {
			return nil, err
		}
		return c, nil
	case FieldPriority:
		var c PriorityChange
		if err := decodePair(oldRaw, newRaw, &c.Old, &c.New); err != nil {
			return nil, err
		}
		return c, nil
	case FieldCustomers, FieldTags, FieldRelatedRequests:
		c := RefSetChange{field: f}
		if err := decodePair(oldRaw, newRaw, &c.Old, &c.New); err != nil {
			return nil, err
		}
		return c, nil
	case FieldParentRequest:
		var c RefChange
		if err := decodePair(oldRaw, newRaw, &c.Old, &c.New); err != nil {
			return nil, err
		}
		return c, nil
	case FieldCustomFields:
		var c CustomFieldsChange
		if err := decodePair(oldRaw, newRaw, &c.Old, &c.New); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown history field: %q", field)
	}
}

func (c TextChange) decode(oldRaw, newRaw json.RawMessage) (Change, error) {
	if err := decodePair(oldRaw, newRaw, &c.Old, &c.New); err != nil {
		return nil, err
	}
	return c, nil
}

func decodePair(oldRaw, newRaw json.RawMessage, oldDst, newDst any) error {
	if len(oldRaw) > 0 {
		if err := json.Unmarshal(oldRaw, oldDst); err != nil {
			return fmt.Errorf("failed to decode old value: %w", err)
		}
	}
	if len(newRaw) > 0 {
		if err := json.Unmarshal(newRaw, newDst); err != nil {
			return fmt.Errorf("failed to decode new value: %w", err)
		}
	}
	return nil
}

func cloneIDs(ids []uint) []uint {
	if ids == nil {
		return []uint{}
	}
	return slices.Clone(ids)
}

func cloneRef(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneFields(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return maps.Clone(m)
}
