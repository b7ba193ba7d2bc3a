package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/reqtrack/reqtrack/internal/domain/request"
	vo "github.com/reqtrack/reqtrack/internal/domain/request/valueobjects"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/models"
	"github.com/reqtrack/reqtrack/internal/shared/biztime"
	"github.com/reqtrack/reqtrack/internal/shared/db"
)

// StatsRepository answers the dashboard's grouped counts straight from SQL.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountByStatus(ctx context.Context) ([]request.StatusCount, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.RequestModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").Order("status ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count requests by status: %w", err)
	}

	out := make([]request.StatusCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, request.StatusCount{Status: vo.Status(row.Status), Count: row.Count})
	}
	return out, nil
}

// CountByPriority returns rows in arbitrary order; ranking is applied by the
// caller.
func (r *StatsRepository) CountByPriority(ctx context.Context) ([]request.PriorityCount, error) {
	var rows []struct {
		Priority string
		Count    int64
	}
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.RequestModel{}).
		Select("priority, COUNT(*) AS count").
		Group("priority").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count requests by priority: %w", err)
	}

	out := make([]request.PriorityCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, request.PriorityCount{Priority: vo.Priority(row.Priority), Count: row.Count})
	}
	return out, nil
}

// TopTags counts links whose tag still exists; links to deleted tags fall out
// of the inner join.
func (r *StatsRepository) TopTags(ctx context.Context, limit int) ([]request.TagCount, error) {
	var rows []struct {
		TagID    uint
		Name     string
		Color    string
		Category string
		Count    int64
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Table("request_tags AS rt").
		Select("t.id AS tag_id, t.name, t.color, t.category, COUNT(*) AS count").
		Joins("JOIN tags t ON t.id = rt.tag_id").
		Joins("JOIN requests r ON r.id = rt.request_id").
		Group("t.id, t.name, t.color, t.category").
		Order("count DESC").Order("t.id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count top tags: %w", err)
	}

	out := make([]request.TagCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, request.TagCount{
			TagID: row.TagID, Name: row.Name, Color: row.Color, Category: row.Category, Count: row.Count,
		})
	}
	return out, nil
}

func (r *StatsRepository) TopCustomers(ctx context.Context, limit int) ([]request.CustomerCount, error) {
	var rows []struct {
		CustomerID uint
		Name       string
		Company    string
		Count      int64
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Table("request_customers AS rc").
		Select("c.id AS customer_id, c.name, c.company, COUNT(*) AS count").
		Joins("JOIN customers c ON c.id = rc.customer_id").
		Joins("JOIN requests r ON r.id = rc.request_id").
		Group("c.id, c.name, c.company").
		Order("count DESC").Order("c.id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count top customers: %w", err)
	}

	out := make([]request.CustomerCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, request.CustomerCount{
			CustomerID: row.CustomerID, Name: row.Name, Company: row.Company, Count: row.Count,
		})
	}
	return out, nil
}

func (r *StatsRepository) CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var stamps []int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.RequestModel{}).
		Where("created_at >= ?", since.UnixMilli()).
		Pluck("created_at", &stamps).Error; err != nil {
		return nil, fmt.Errorf("failed to load request creation times: %w", err)
	}

	out := make([]time.Time, 0, len(stamps))
	for _, ms := range stamps {
		out = append(out, biztime.FromUnixMilli(ms))
	}
	return out, nil
}

func (r *StatsRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.RequestModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count requests: %w", err)
	}
	return total, nil
}

func (r *StatsRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.RequestModel{}).
		Where("created_at >= ?", since.UnixMilli()).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count recent requests: %w", err)
	}
	return total, nil
}
