package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/reqtrack/reqtrack/internal/domain/customer"
	"github.com/reqtrack/reqtrack/internal/domain/request"
	vo "github.com/reqtrack/reqtrack/internal/domain/request/valueobjects"
	"github.com/reqtrack/reqtrack/internal/domain/tag"
	tagvo "github.com/reqtrack/reqtrack/internal/domain/tag/valueobjects"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/models"
	apperrors "github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

var baseTime = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func createCustomer(t *testing.T, repo *CustomerRepository, name, company, email string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(name, company, email, "", baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func createTag(t *testing.T, repo *TagRepository, name string, category tagvo.Category) *tag.Tag {
	t.Helper()
	tg, err := tag.NewTag(name, "", category, baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tg))
	return tg
}

func createRequest(t *testing.T, repo *RequestRepository, seq int64, p request.NewRequestParams, at time.Time) *request.Request {
	t.Helper()
	if p.CreatedBy == 0 {
		p.CreatedBy = 1
	}
	req, err := request.NewRequest(p, at)
	require.NoError(t, err)
	require.NoError(t, req.AssignSequence(seq))
	require.NoError(t, repo.Create(context.Background(), req))
	return req
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	u, err := user.NewUser("Taro", "t@example.com", "hash", baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID())

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		dup, err := user.NewUser("Other", "t@example.com", "hash", baseTime)
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetAppError(err).Type)
	})

	t.Run("lookup by email", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "t@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), got.ID())
		assert.Equal(t, "Taro", got.Name())
	})

	t.Run("missing user is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetAppError(err).Type)
	})

	t.Run("exists by email", func(t *testing.T) {
		ok, err := repo.ExistsByEmail(ctx, "t@example.com")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("update password hash", func(t *testing.T) {
		require.NoError(t, u.ReplacePasswordHash("rehashed", baseTime.Add(time.Hour)))
		require.NoError(t, repo.UpdatePasswordHash(ctx, u))

		got, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, "rehashed", got.PasswordHash())
		assert.Equal(t, "Taro", got.Name())
	})
}

func TestCustomerRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db, logger.NewLogger())
	ctx := context.Background()

	acme := createCustomer(t, repo, "Yamada", "Acme Corp", "yamada@acme.test")
	createCustomer(t, repo, "Suzuki", "Globex", "suzuki@globex.test")

	t.Run("search is case insensitive over name and company", func(t *testing.T) {
		found, err := repo.Search(ctx, "ACME")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, acme.ID(), found[0].ID())

		found, err = repo.Search(ctx, "suz")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Suzuki", found[0].Name())
	})

	t.Run("search escapes wildcards", func(t *testing.T) {
		found, err := repo.Search(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("email uniqueness excludes self", func(t *testing.T) {
		ok, err := repo.ExistsByEmail(ctx, "yamada@acme.test", acme.ID())
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = repo.ExistsByEmail(ctx, "yamada@acme.test", 0)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("update persists", func(t *testing.T) {
		require.NoError(t, acme.Update("Yamada Hanako", "", "", "03-0000-0000", baseTime.Add(time.Hour)))
		require.NoError(t, repo.Update(ctx, acme))
		got, err := repo.GetByID(ctx, acme.ID())
		require.NoError(t, err)
		assert.Equal(t, "Yamada Hanako", got.Name())
		assert.Equal(t, "Acme Corp", got.Company())
		assert.Equal(t, "03-0000-0000", got.Phone())
	})

	t.Run("list paginates", func(t *testing.T) {
		items, total, err := repo.List(ctx, customer.ListFilter{Page: 1, PageSize: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, items, 1)
	})

	t.Run("delete missing is not found", func(t *testing.T) {
		err := repo.Delete(ctx, 999)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetAppError(err).Type)
	})
}

func TestTagRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db, logger.NewLogger())
	ctx := context.Background()

	createTag(t, repo, "billing", tagvo.CategoryFunctionalArea)
	createTag(t, repo, "search", tagvo.CategoryFunctionalArea)
	createTag(t, repo, "vip", tagvo.CategoryCustomerAttribute)

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		dup, err := tag.NewTag("vip", "", tagvo.CategoryOther, baseTime)
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetAppError(err).Type)
	})

	t.Run("list by category", func(t *testing.T) {
		tags, err := repo.ListByCategory(ctx, tagvo.CategoryFunctionalArea)
		require.NoError(t, err)
		require.Len(t, tags, 2)
		assert.Equal(t, "billing", tags[0].Name())
		assert.Equal(t, tag.DefaultColor, tags[0].Color())
	})

	t.Run("count by category", func(t *testing.T) {
		counts, err := repo.CountByCategory(ctx)
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, tagvo.CategoryFunctionalArea, counts[0].Category)
		assert.Equal(t, int64(2), counts[0].Count)
		assert.Equal(t, int64(1), counts[1].Count)
	})
}

func TestRequestRepository_CreateAndFetchWithLinks(t *testing.T) {
	db := setupTestDB(t)
	customers := NewCustomerRepository(db, logger.NewLogger())
	tags := NewTagRepository(db, logger.NewLogger())
	repo := NewRequestRepository(db, logger.NewLogger())
	ctx := context.Background()

	a := createCustomer(t, customers, "A", "A Inc", "a@a.test")
	b := createCustomer(t, customers, "B", "B Inc", "b@b.test")
	x := createTag(t, tags, "x", tagvo.CategoryOther)

	req := createRequest(t, repo, 1, request.NewRequestParams{
		Title:        "Export to CSV",
		Content:      "Customers want CSV export",
		CustomerIDs:  []uint{b.ID(), a.ID(), b.ID()},
		TagIDs:       []uint{x.ID()},
		CustomFields: map[string]any{"source": "call"},
	}, baseTime)

	got, err := repo.GetByID(ctx, req.ID())
	require.NoError(t, err)
	assert.Equal(t, "REQ-00001", got.Number())
	assert.Equal(t, []uint{b.ID(), a.ID()}, got.CustomerIDs())
	assert.Equal(t, []uint{x.ID()}, got.TagIDs())
	assert.Equal(t, vo.StatusNew, got.Status())
	assert.Equal(t, vo.PriorityMedium, got.Priority())
	assert.Equal(t, "call", got.CustomFields()["source"])
	assert.Empty(t, got.History())
	assert.Equal(t, baseTime.UnixMilli(), got.CreatedAt().UnixMilli())

	t.Run("deleted tag stays referenced", func(t *testing.T) {
		require.NoError(t, tags.Delete(ctx, x.ID()))
		got, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, []uint{x.ID()}, got.TagIDs())
	})
}

func TestRequestRepository_UpdatePersistsHistoryAndLinks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db, logger.NewLogger())
	ctx := context.Background()

	req := createRequest(t, repo, 1, request.NewRequestParams{
		Title: "t", Content: "c", TagIDs: []uint{1, 2},
	}, baseTime)

	status := vo.StatusPlanned
	tagIDs := []uint{3}
	parent := uint(7)
	_, err := req.ApplyUpdate(request.Update{
		Status:    &status,
		TagIDs:    &tagIDs,
		ParentSet: true,
		ParentID:  &parent,
	}, 2, baseTime.Add(time.Hour))
	require.NoError(t, err)
	_, err = req.AddComment("looks good", 2, []string{"uploads/a.png"}, baseTime.Add(2*time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, req))

	got, err := repo.GetByID(ctx, req.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusPlanned, got.Status())
	assert.Equal(t, []uint{3}, got.TagIDs())
	require.NotNil(t, got.ParentID())
	assert.Equal(t, uint(7), *got.ParentID())
	assert.Equal(t, uint(2), got.UpdatedBy())

	history := got.History()
	require.Len(t, history, 3)
	assert.Equal(t, request.FieldStatus, history[0].Field())
	assert.Equal(t, request.StatusChange{Old: vo.StatusNew, New: vo.StatusPlanned}, history[0].Change())
	assert.Equal(t, request.FieldTags, history[1].Field())
	assert.Equal(t, request.FieldParentRequest, history[2].Field())

	comments := got.Comments()
	require.Len(t, comments, 1)
	assert.Equal(t, "looks good", comments[0].Content())
	assert.Equal(t, []string{"uploads/a.png"}, comments[0].Attachments())
}

func TestRequestRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db, logger.NewLogger())
	ctx := context.Background()

	createRequest(t, repo, 1, request.NewRequestParams{
		Title: "Alpha login", Content: "SSO please", Reporter: "Sato", CustomerIDs: []uint{10},
	}, baseTime)
	createRequest(t, repo, 2, request.NewRequestParams{
		Title: "Beta export", Content: "csv", Status: vo.StatusDone, Priority: vo.PriorityHigh, TagIDs: []uint{20},
	}, baseTime.Add(time.Hour))
	createRequest(t, repo, 3, request.NewRequestParams{
		Title: "Gamma 100% faster", Content: "perf", Priority: vo.PriorityHigh,
	}, baseTime.Add(2*time.Hour))

	status := vo.StatusDone
	high := vo.PriorityHigh
	customerID := uint(10)
	tagID := uint(20)

	tests := []struct {
		name   string
		filter request.ListFilter
		want   []string
	}{
		{"default newest first", request.ListFilter{}, []string{"REQ-00003", "REQ-00002", "REQ-00001"}},
		{"status", request.ListFilter{Status: &status}, []string{"REQ-00002"}},
		{"priority", request.ListFilter{Priority: &high}, []string{"REQ-00003", "REQ-00002"}},
		{"customer", request.ListFilter{CustomerID: &customerID}, []string{"REQ-00001"}},
		{"tag", request.ListFilter{TagID: &tagID}, []string{"REQ-00002"}},
		{"search reporter", request.ListFilter{Search: "sato"}, []string{"REQ-00001"}},
		{"search literal percent", request.ListFilter{Search: "100%"}, []string{"REQ-00003"}},
		{"sort title asc", request.ListFilter{SortBy: "title", SortOrder: "asc"}, []string{"REQ-00001", "REQ-00002", "REQ-00003"}},
		{"camelCase alias", request.ListFilter{SortBy: "requestId", SortOrder: "asc"}, []string{"REQ-00001", "REQ-00002", "REQ-00003"}},
		{"unknown sort falls back", request.ListFilter{SortBy: "id; DROP TABLE requests"}, []string{"REQ-00003", "REQ-00002", "REQ-00001"}},
		{"page two", request.ListFilter{Page: 2, PageSize: 2}, []string{"REQ-00001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			numbers := make([]string, 0, len(items))
			for _, item := range items {
				numbers = append(numbers, item.Number())
			}
			assert.Equal(t, tt.want, numbers)
			if tt.filter.PageSize == 0 {
				assert.Equal(t, int64(len(tt.want)), total)
			} else {
				assert.Equal(t, int64(3), total)
			}
		})
	}
}

func TestRequestRepository_FindSimilarAndSummaries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db, logger.NewLogger())
	ctx := context.Background()

	first := createRequest(t, repo, 1, request.NewRequestParams{Title: "Dark mode", Content: "Night theme"}, baseTime)
	createRequest(t, repo, 2, request.NewRequestParams{Title: "Theme editor", Content: "Custom colors"}, baseTime.Add(time.Minute))
	createRequest(t, repo, 3, request.NewRequestParams{Title: "Billing", Content: "Invoices"}, baseTime.Add(2*time.Minute))

	found, err := repo.FindSimilar(ctx, request.SimilarQuery{Content: "theme"}, 5)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.FindSimilar(ctx, request.SimilarQuery{Title: "dark", Content: "theme"}, 5)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, first.ID(), found[0].ID())

	found, err = repo.FindSimilar(ctx, request.SimilarQuery{Content: "e"}, 2)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	summaries, err := repo.GetSummaries(ctx, []uint{first.ID(), 999})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, request.Summary{ID: first.ID(), Number: "REQ-00001", Title: "Dark mode"}, summaries[0])

	max, err := repo.MaxSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), max)
}

func TestRequestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db, logger.NewLogger())
	ctx := context.Background()

	req := createRequest(t, repo, 1, request.NewRequestParams{Title: "t", Content: "c", TagIDs: []uint{1}}, baseTime)
	require.NoError(t, repo.Delete(ctx, req.ID()))

	_, err := repo.GetByID(ctx, req.ID())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetAppError(err).Type)

	var links int64
	require.NoError(t, db.Model(&models.RequestTagModel{}).Count(&links).Error)
	assert.Zero(t, links)

	err = repo.Delete(ctx, req.ID())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetAppError(err).Type)
}

func TestStatsRepository(t *testing.T) {
	db := setupTestDB(t)
	stats := NewStatsRepository(db)
	ctx := context.Background()

	t.Run("empty collection", func(t *testing.T) {
		byStatus, err := stats.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Empty(t, byStatus)
		top, err := stats.TopTags(ctx, 10)
		require.NoError(t, err)
		assert.NotNil(t, top)
		assert.Empty(t, top)
		total, err := stats.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	customers := NewCustomerRepository(db, logger.NewLogger())
	tags := NewTagRepository(db, logger.NewLogger())
	repo := NewRequestRepository(db, logger.NewLogger())

	acme := createCustomer(t, customers, "Yamada", "Acme", "y@acme.test")
	ui := createTag(t, tags, "ui", tagvo.CategoryFunctionalArea)
	api := createTag(t, tags, "api", tagvo.CategoryFunctionalArea)

	createRequest(t, repo, 1, request.NewRequestParams{Title: "a", Content: "a", TagIDs: []uint{ui.ID(), api.ID()}, CustomerIDs: []uint{acme.ID()}}, baseTime.AddDate(0, -2, 0))
	createRequest(t, repo, 2, request.NewRequestParams{Title: "b", Content: "b", TagIDs: []uint{ui.ID()}, CustomerIDs: []uint{acme.ID(), 999}}, baseTime)
	createRequest(t, repo, 3, request.NewRequestParams{Title: "c", Content: "c", Status: vo.StatusDone, Priority: vo.PriorityUrgent, TagIDs: []uint{998}}, baseTime)

	byStatus, err := stats.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []request.StatusCount{
		{Status: vo.StatusNew, Count: 2},
		{Status: vo.StatusDone, Count: 1},
	}, byStatus)

	byPriority, err := stats.CountByPriority(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []request.PriorityCount{
		{Priority: vo.PriorityMedium, Count: 2},
		{Priority: vo.PriorityUrgent, Count: 1},
	}, byPriority)

	topTags, err := stats.TopTags(ctx, 10)
	require.NoError(t, err)
	require.Len(t, topTags, 2, "dangling tag ids are skipped")
	assert.Equal(t, "ui", topTags[0].Name)
	assert.Equal(t, int64(2), topTags[0].Count)
	assert.Equal(t, tag.DefaultColor, topTags[0].Color)

	topCustomers, err := stats.TopCustomers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, topCustomers, 1)
	assert.Equal(t, request.CustomerCount{CustomerID: acme.ID(), Name: "Yamada", Company: "Acme", Count: 2}, topCustomers[0])

	since := baseTime.AddDate(0, -1, 0)
	recent, err := stats.CountSince(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, int64(2), recent)

	stamps, err := stats.CreatedSince(ctx, since)
	require.NoError(t, err)
	assert.Len(t, stamps, 2)

	total, err := stats.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
