package request

import (
	"context"
	"time"

	vo "github.com/reqtrack/reqtrack/internal/domain/request/valueobjects"
)

type Repository interface {
	// Create inserts r with its join rows and sets its ID.
	Create(ctx context.Context, r *Request) error
	// Update rewrites the row, join rows, comments and history of r.
	Update(ctx context.Context, r *Request) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Request, error)
	List(ctx context.Context, filter ListFilter) ([]*Request, int64, error)
	// FindSimilar matches title and/or content; see SimilarQuery.
	FindSimilar(ctx context.Context, q SimilarQuery, limit int) ([]*Request, error)
	// GetSummaries loads id, number and title for the given ids. Missing
	// ids are skipped.
	GetSummaries(ctx context.Context, ids []uint) ([]Summary, error)
}

// SequenceAllocator hands out strictly increasing values per counter name.
// Implementations must be safe under concurrent callers.
type SequenceAllocator interface {
	Next(ctx context.Context, name string) (int64, error)
}

type ListFilter struct {
	Status     *vo.Status
	Priority   *vo.Priority
	CustomerID *uint
	TagID      *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

// SimilarQuery: a title term matches titles; a content term matches title
// or content. When both are given both must match.
type SimilarQuery struct {
	Title   string
	Content string
}

func (q SimilarQuery) IsEmpty() bool {
	return q.Title == "" && q.Content == ""
}

type Summary struct {
	ID     uint
	Number string
	Title  string
}

type StatusCount struct {
	Status vo.Status
	Count  int64
}

type PriorityCount struct {
	Priority vo.Priority
	Count    int64
}

type TagCount struct {
	TagID    uint
	Name     string
	Color    string
	Category string
	Count    int64
}

type CustomerCount struct {
	CustomerID uint
	Name       string
	Company    string
	Count      int64
}

// StatsReader runs the grouped counts behind the dashboard.
type StatsReader interface {
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByPriority(ctx context.Context) ([]PriorityCount, error)
	TopTags(ctx context.Context, limit int) ([]TagCount, error)
	TopCustomers(ctx context.Context, limit int) ([]CustomerCount, error)
	// CreatedSince returns the creation times of requests created at or
	// after since.
	CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
