package usecases

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/reqtrack/reqtrack/internal/domain/customer"
	"github.com/reqtrack/reqtrack/internal/domain/request"
	"github.com/reqtrack/reqtrack/internal/domain/tag"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
)

// mockRequestRepository keeps requests in memory unless a Func overrides
// the call.
type mockRequestRepository struct {
	mu       sync.Mutex
	items    map[uint]*request.Request
	nextID   uint
	updates  int
	lastList request.ListFilter

	CreateFunc      func(ctx context.Context, r *request.Request) error
	UpdateFunc      func(ctx context.Context, r *request.Request) error
	ListFunc        func(ctx context.Context, filter request.ListFilter) ([]*request.Request, int64, error)
	FindSimilarFunc func(ctx context.Context, q request.SimilarQuery, limit int) ([]*request.Request, error)
}

func newMockRequestRepository(existing ...*request.Request) *mockRequestRepository {
	m := &mockRequestRepository{items: map[uint]*request.Request{}, nextID: 100}
	for _, r := range existing {
		m.items[r.ID()] = r
	}
	return m
}

func (m *mockRequestRepository) Create(ctx context.Context, r *request.Request) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.SetID(m.nextID)
	m.items[r.ID()] = r
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *request.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	m.items[r.ID()] = r
	return nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return errors.NewNotFoundError("Request not found")
	}
	delete(m.items, id)
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return nil, errors.NewNotFoundError("Request not found")
	}
	return r, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.ListFilter) ([]*request.Request, int64, error) {
	m.lastList = filter
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRequestRepository) FindSimilar(ctx context.Context, q request.SimilarQuery, limit int) ([]*request.Request, error) {
	if m.FindSimilarFunc != nil {
		return m.FindSimilarFunc(ctx, q, limit)
	}
	return nil, nil
}

func (m *mockRequestRepository) GetSummaries(ctx context.Context, ids []uint) ([]request.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []request.Summary
	for _, id := range ids {
		if r, ok := m.items[id]; ok {
			out = append(out, request.Summary{ID: r.ID(), Number: r.Number(), Title: r.Title()})
		}
	}
	return out, nil
}

type counterAllocator struct {
	mu    sync.Mutex
	value int64
	err   error
}

func (a *counterAllocator) Next(ctx context.Context, name string) (int64, error) {
	if a.err != nil {
		return 0, a.err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.value++
	return a.value, nil
}

type inlineTx struct {
	calls int
}

func (t *inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type stubCustomerRepository struct {
	customer.Repository
	items []*customer.Customer
}

func (s stubCustomerRepository) GetByIDs(ctx context.Context, ids []uint) ([]*customer.Customer, error) {
	var out []*customer.Customer
	for _, c := range s.items {
		if slices.Contains(ids, c.ID()) {
			out = append(out, c)
		}
	}
	return out, nil
}

type stubTagRepository struct {
	tag.Repository
	items []*tag.Tag
}

func (s stubTagRepository) GetByIDs(ctx context.Context, ids []uint) ([]*tag.Tag, error) {
	var out []*tag.Tag
	for _, t := range s.items {
		if slices.Contains(ids, t.ID()) {
			out = append(out, t)
		}
	}
	return out, nil
}

type stubUserRepository struct {
	user.Repository
	items []*user.User
}

func (s stubUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range s.items {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("User not found")
}

func (s stubUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, u := range s.items {
		if slices.Contains(ids, u.ID()) {
			out = append(out, u)
		}
	}
	return out, nil
}

type sentMail struct {
	kind      string
	to        string
	requestID uint
	oldStatus string
	newStatus string
	author    string
}

type captureNotifier struct {
	sent chan sentMail
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{sent: make(chan sentMail, 4)}
}

func (n *captureNotifier) SendStatusChanged(to string, requestID uint, number, title, oldStatus, newStatus string) error {
	n.sent <- sentMail{kind: "status", to: to, requestID: requestID, oldStatus: oldStatus, newStatus: newStatus}
	return nil
}

func (n *captureNotifier) SendCommentAdded(to string, requestID uint, number, title, author, content string) error {
	n.sent <- sentMail{kind: "comment", to: to, requestID: requestID, author: author}
	return nil
}

func (n *captureNotifier) wait() (sentMail, bool) {
	select {
	case m := <-n.sent:
		return m, true
	case <-time.After(2 * time.Second):
		return sentMail{}, false
	}
}

func (n *captureNotifier) none() bool {
	select {
	case <-n.sent:
		return false
	case <-time.After(100 * time.Millisecond):
		return true
	}
}

type stubStats struct {
	byStatus   []request.StatusCount
	byPriority []request.PriorityCount
	tags       []request.TagCount
	customers  []request.CustomerCount
	created    []time.Time
	total      int64
	thisMonth  int64
	since      time.Time
	err        error
}

func (s *stubStats) CountByStatus(ctx context.Context) ([]request.StatusCount, error) {
	return s.byStatus, s.err
}

func (s *stubStats) CountByPriority(ctx context.Context) ([]request.PriorityCount, error) {
	return s.byPriority, nil
}

func (s *stubStats) TopTags(ctx context.Context, limit int) ([]request.TagCount, error) {
	return s.tags, nil
}

func (s *stubStats) TopCustomers(ctx context.Context, limit int) ([]request.CustomerCount, error) {
	return s.customers, nil
}

func (s *stubStats) CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	s.since = since
	return s.created, nil
}

func (s *stubStats) Count(ctx context.Context) (int64, error) {
	return s.total, nil
}

func (s *stubStats) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return s.thisMonth, nil
}
