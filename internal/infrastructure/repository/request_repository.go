package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/reqtrack/reqtrack/internal/domain/request"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/mappers"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/models"
	"github.com/reqtrack/reqtrack/internal/shared/db"
	apperrors "github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

// requestSortColumns whitelists ORDER BY input. camelCase keys are the
// aliases older clients send.
var requestSortColumns = map[string]string{
	"created_at":     "created_at",
	"updated_at":     "updated_at",
	"title":          "title",
	"status":         "status",
	"priority":       "priority",
	"request_number": "request_number",
	"reporter":       "reporter",
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
	"requestId":      "request_number",
}

type RequestRepository struct {
	db     *gorm.DB
	txm    *db.TransactionManager
	mapper mappers.RequestMapper
	logger logger.Interface
}

func NewRequestRepository(gdb *gorm.DB, logger logger.Interface) *RequestRepository {
	return &RequestRepository{
		db:     gdb,
		txm:    db.NewTransactionManager(gdb),
		mapper: mappers.NewRequestMapper(),
		logger: logger,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	model, err := r.mapper.ToModel(req)
	if err != nil {
		return err
	}

	return r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.SetID(model.ID)
		return r.replaceLinks(tx, req)
	})
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	model, err := r.mapper.ToModel(req)
	if err != nil {
		return err
	}

	return r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)
		result := tx.Model(&models.RequestModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]any{
				"title":               model.Title,
				"content":             model.Content,
				"reporter":            model.Reporter,
				"status":              model.Status,
				"priority":            model.Priority,
				"parent_request_id":   model.ParentRequestID,
				"related_request_ids": model.RelatedRequestIDs,
				"custom_fields":       model.CustomFields,
				"comments":            model.Comments,
				"history":             model.History,
				"updated_by":          model.UpdatedBy,
				"updated_at":          model.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update request: %w", result.Error)
		}
		return r.replaceLinks(tx, req)
	})
}

func (r *RequestRepository) replaceLinks(tx *gorm.DB, req *request.Request) error {
	if err := tx.Where("request_id = ?", req.ID()).Delete(&models.RequestCustomerModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear request customers: %w", err)
	}
	if err := tx.Where("request_id = ?", req.ID()).Delete(&models.RequestTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear request tags: %w", err)
	}
	if links := r.mapper.CustomerLinks(req); len(links) > 0 {
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to link request customers: %w", err)
		}
	}
	if links := r.mapper.TagLinks(req); len(links) > 0 {
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to link request tags: %w", err)
		}
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uint) error {
	return r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)
		result := tx.Delete(&models.RequestModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete request: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("Request not found")
		}
		if err := tx.Where("request_id = ?", id).Delete(&models.RequestCustomerModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete request customers: %w", err)
		}
		if err := tx.Where("request_id = ?", id).Delete(&models.RequestTagModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete request tags: %w", err)
		}
		return nil
	})
}

func (r *RequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	var model models.RequestModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Request not found")
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	requests, err := r.toDomain(ctx, []models.RequestModel{model})
	if err != nil {
		return nil, err
	}
	return requests[0], nil
}

func (r *RequestRepository) List(ctx context.Context, filter request.ListFilter) ([]*request.Request, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.RequestModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.CustomerID != nil {
		query = query.Where("id IN (?)", r.db.Model(&models.RequestCustomerModel{}).
			Select("request_id").Where("customer_id = ?", *filter.CustomerID))
	}
	if filter.TagID != nil {
		query = query.Where("id IN (?)", r.db.Model(&models.RequestTagModel{}).
			Select("request_id").Where("tag_id = ?", *filter.TagID))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		query = query.Scopes(db.ContainsFold(s, "title", "content", "reporter"))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	column, ok := requestSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		order = "ASC"
	}
	query = query.Order(column + " " + order).Order("id " + order)

	if filter.PageSize > 0 {
		query = query.Scopes(db.Paginate(filter.Page, filter.PageSize))
	}

	var rows []models.RequestModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}

	requests, err := r.toDomain(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *RequestRepository) FindSimilar(ctx context.Context, q request.SimilarQuery, limit int) ([]*request.Request, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.RequestModel{})
	if q.Title != "" {
		query = query.Scopes(db.ContainsFold(q.Title, "title"))
	}
	if q.Content != "" {
		query = query.Scopes(db.ContainsFold(q.Content, "title", "content"))
	}

	var rows []models.RequestModel
	if err := query.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find similar requests: %w", err)
	}
	return r.toDomain(ctx, rows)
}

func (r *RequestRepository) GetSummaries(ctx context.Context, ids []uint) ([]request.Summary, error) {
	if len(ids) == 0 {
		return []request.Summary{}, nil
	}
	var rows []struct {
		ID            uint
		RequestNumber string
		Title         string
	}
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.RequestModel{}).
		Select("id, request_number, title").
		Where("id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get request summaries: %w", err)
	}

	out := make([]request.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, request.Summary{ID: row.ID, Number: row.RequestNumber, Title: row.Title})
	}
	return out, nil
}

// MaxSequence is the highest allocated request sequence, 0 when empty.
func (r *RequestRepository) MaxSequence(ctx context.Context) (int64, error) {
	var max int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.RequestModel{}).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to read max request sequence: %w", err)
	}
	return max, nil
}

// toDomain loads the customer and tag links for rows in two queries and
// builds the aggregates.
func (r *RequestRepository) toDomain(ctx context.Context, rows []models.RequestModel) ([]*request.Request, error) {
	if len(rows) == 0 {
		return []*request.Request{}, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var customerLinks []models.RequestCustomerModel
	if err := tx.Where("request_id IN ?", ids).Order("request_id, position").
		Find(&customerLinks).Error; err != nil {
		return nil, fmt.Errorf("failed to load request customers: %w", err)
	}
	var tagLinks []models.RequestTagModel
	if err := tx.Where("request_id IN ?", ids).Order("request_id, position").
		Find(&tagLinks).Error; err != nil {
		return nil, fmt.Errorf("failed to load request tags: %w", err)
	}

	customersByRequest := make(map[uint][]uint, len(rows))
	for _, l := range customerLinks {
		customersByRequest[l.RequestID] = append(customersByRequest[l.RequestID], l.CustomerID)
	}
	tagsByRequest := make(map[uint][]uint, len(rows))
	for _, l := range tagLinks {
		tagsByRequest[l.RequestID] = append(tagsByRequest[l.RequestID], l.TagID)
	}

	out := make([]*request.Request, 0, len(rows))
	for i := range rows {
		req, err := r.mapper.ToDomain(&rows[i], customersByRequest[rows[i].ID], tagsByRequest[rows[i].ID])
		if err != nil {
			r.logger.Errorw("failed to map request", "id", rows[i].ID, "error", err)
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}
