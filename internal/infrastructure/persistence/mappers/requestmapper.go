package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/reqtrack/reqtrack/internal/domain/request"
	vo "github.com/reqtrack/reqtrack/internal/domain/request/valueobjects"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/models"
	"github.com/reqtrack/reqtrack/internal/shared/biztime"
)

// RequestMapper converts between the request aggregate and its row plus
// join rows.
type RequestMapper interface {
	ToModel(r *request.Request) (*models.RequestModel, error)
	ToDomain(m *models.RequestModel, customerIDs, tagIDs []uint) (*request.Request, error)
	CustomerLinks(r *request.Request) []models.RequestCustomerModel
	TagLinks(r *request.Request) []models.RequestTagModel
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(r *request.Request) (*models.RequestModel, error) {
	history := make([]models.HistoryJSON, 0, len(r.History()))
	for _, h := range r.History() {
		rec, err := historyToJSON(h)
		if err != nil {
			return nil, err
		}
		history = append(history, rec)
	}

	comments := make([]models.CommentJSON, 0, len(r.Comments()))
	for _, c := range r.Comments() {
		comments = append(comments, models.CommentJSON{
			ID:          c.ID(),
			Content:     c.Content(),
			AuthorID:    c.AuthorID(),
			Attachments: c.Attachments(),
			CreatedAt:   c.CreatedAt().UnixMilli(),
		})
	}

	return &models.RequestModel{
		ID:                r.ID(),
		RequestNumber:     r.Number(),
		Sequence:          r.Sequence(),
		Title:             r.Title(),
		Content:           r.Content(),
		Reporter:          r.Reporter(),
		Status:            r.Status().String(),
		Priority:          r.Priority().String(),
		ParentRequestID:   r.ParentID(),
		RelatedRequestIDs: datatypes.JSONSlice[uint](r.RelatedIDs()),
		CustomFields:      datatypes.JSONMap(r.CustomFields()),
		Comments:          datatypes.JSONSlice[models.CommentJSON](comments),
		History:           datatypes.JSONSlice[models.HistoryJSON](history),
		CreatedBy:         r.CreatedBy(),
		UpdatedBy:         r.UpdatedBy(),
		CreatedAt:         r.CreatedAt().UnixMilli(),
		UpdatedAt:         r.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *RequestMapperImpl) ToDomain(model *models.RequestModel, customerIDs, tagIDs []uint) (*request.Request, error) {
	history := make([]request.HistoryEntry, 0, len(model.History))
	for _, rec := range model.History {
		change, err := request.DecodeChange(rec.Field, rec.OldValue, rec.NewValue)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", model.ID, err)
		}
		history = append(history, request.NewHistoryEntry(change, rec.ChangedBy, biztime.FromUnixMilli(rec.ChangedAt)))
	}

	comments := make([]request.Comment, 0, len(model.Comments))
	for _, c := range model.Comments {
		comments = append(comments, request.ReconstructComment(
			c.ID, c.Content, c.AuthorID, c.Attachments, biztime.FromUnixMilli(c.CreatedAt),
		))
	}

	return request.ReconstructRequest(request.ReconstructParams{
		ID:           model.ID,
		Number:       model.RequestNumber,
		Sequence:     model.Sequence,
		Title:        model.Title,
		Content:      model.Content,
		Reporter:     model.Reporter,
		Status:       vo.Status(model.Status),
		Priority:     vo.Priority(model.Priority),
		CustomerIDs:  customerIDs,
		TagIDs:       tagIDs,
		ParentID:     model.ParentRequestID,
		RelatedIDs:   []uint(model.RelatedRequestIDs),
		CustomFields: map[string]any(model.CustomFields),
		Comments:     comments,
		History:      history,
		CreatedBy:    model.CreatedBy,
		UpdatedBy:    model.UpdatedBy,
		CreatedAt:    biztime.FromUnixMilli(model.CreatedAt),
		UpdatedAt:    biztime.FromUnixMilli(model.UpdatedAt),
	})
}

func (m *RequestMapperImpl) CustomerLinks(r *request.Request) []models.RequestCustomerModel {
	ids := uniqueInOrder(r.CustomerIDs())
	links := make([]models.RequestCustomerModel, 0, len(ids))
	for i, id := range ids {
		links = append(links, models.RequestCustomerModel{RequestID: r.ID(), CustomerID: id, Position: i})
	}
	return links
}

func (m *RequestMapperImpl) TagLinks(r *request.Request) []models.RequestTagModel {
	ids := uniqueInOrder(r.TagIDs())
	links := make([]models.RequestTagModel, 0, len(ids))
	for i, id := range ids {
		links = append(links, models.RequestTagModel{RequestID: r.ID(), TagID: id, Position: i})
	}
	return links
}

func historyToJSON(h request.HistoryEntry) (models.HistoryJSON, error) {
	oldRaw, err := json.Marshal(h.Change().OldValue())
	if err != nil {
		return models.HistoryJSON{}, fmt.Errorf("failed to encode history old value: %w", err)
	}
	newRaw, err := json.Marshal(h.Change().NewValue())
	if err != nil {
		return models.HistoryJSON{}, fmt.Errorf("failed to encode history new value: %w", err)
	}
	return models.HistoryJSON{
		Field:     string(h.Field()),
		OldValue:  oldRaw,
		NewValue:  newRaw,
		ChangedBy: h.ChangedBy(),
		ChangedAt: h.ChangedAt().UnixMilli(),
	}, nil
}

// uniqueInOrder drops repeated ids so the composite primary key holds.
func uniqueInOrder(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup || id == 0 {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
