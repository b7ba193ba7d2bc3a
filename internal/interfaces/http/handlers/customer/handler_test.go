package customer

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqtrack/reqtrack/internal/application/customer/dto"
	"github.com/reqtrack/reqtrack/internal/application/customer/usecases"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/testutil"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
)

type mockCreate struct {
	got usecases.CreateCustomerCommand
	err error
}

func (m *mockCreate) Execute(ctx context.Context, cmd usecases.CreateCustomerCommand) (*dto.CustomerDTO, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.CustomerDTO{ID: 1, Name: cmd.Name}, nil
}

type mockUpdate struct {
	got usecases.UpdateCustomerCommand
}

func (m *mockUpdate) Execute(ctx context.Context, cmd usecases.UpdateCustomerCommand) (*dto.CustomerDTO, error) {
	m.got = cmd
	return &dto.CustomerDTO{ID: cmd.ID}, nil
}

type mockDelete struct{ err error }

func (m *mockDelete) Execute(ctx context.Context, id uint) error { return m.err }

type mockGet struct{}

func (mockGet) Execute(ctx context.Context, id uint) (*dto.CustomerDTO, error) {
	if id != 1 {
		return nil, errors.NewNotFoundError("Customer not found")
	}
	return &dto.CustomerDTO{ID: 1}, nil
}

type mockList struct{}

func (mockList) Execute(ctx context.Context, q usecases.ListCustomersQuery) (*usecases.ListCustomersResult, error) {
	return &usecases.ListCustomersResult{Customers: []dto.CustomerDTO{}, Total: 0}, nil
}

type mockSearch struct{ got string }

func (m *mockSearch) Execute(ctx context.Context, query string) ([]dto.CustomerDTO, error) {
	m.got = query
	if query == "" {
		return nil, errors.NewBadRequestError("Search query is required")
	}
	return []dto.CustomerDTO{{ID: 1}}, nil
}

func newTestHandler() (*Handler, *mockCreate, *mockUpdate, *mockDelete, *mockSearch) {
	create, update, del, search := &mockCreate{}, &mockUpdate{}, &mockDelete{}, &mockSearch{}
	return NewHandler(create, update, del, mockGet{}, mockList{}, search, testutil.NewMockLogger()), create, update, del, search
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		ucErr      error
		wantStatus int
	}{
		{"success", map[string]string{"name": "Hanako", "company": "ACME", "email": "h@acme.jp"}, nil, http.StatusCreated},
		{"missing company", map[string]string{"name": "Hanako", "email": "h@acme.jp"}, nil, http.StatusBadRequest},
		{"invalid email", map[string]string{"name": "Hanako", "company": "ACME", "email": "nope"}, nil, http.StatusBadRequest},
		{"duplicate email", map[string]string{"name": "Hanako", "company": "ACME", "email": "h@acme.jp"}, errors.NewConflictError("Customer email already exists"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, create, _, _, _ := newTestHandler()
			create.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodPost, "/api/customers", tt.body)
			testutil.SetAuthContext(c, 1)
			h.Create(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandler_Update(t *testing.T) {
	h, _, update, _, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPut, "/api/customers/4", map[string]string{"phone": "03-1111"})
	testutil.SetURLParam(c, "id", "4")
	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), update.got.ID)
	assert.Equal(t, "03-1111", update.got.Phone)
	assert.Empty(t, update.got.Name)
}

func TestHandler_GetAndDelete(t *testing.T) {
	h, _, _, del, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/customers/x", nil)
	testutil.SetURLParam(c, "id", "x")
	h.Get(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/customers/2", nil)
	testutil.SetURLParam(c, "id", "2")
	h.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	del.err = errors.NewNotFoundError("Customer not found")
	c, w = testutil.NewTestContext(http.MethodDelete, "/api/customers/2", nil)
	testutil.SetURLParam(c, "id", "2")
	h.Delete(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Search(t *testing.T) {
	h, _, _, _, search := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/customers/search", nil)
	testutil.SetQueryParams(c, map[string]string{"query": "acm"})
	h.Search(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acm", search.got)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/customers/search", nil)
	h.Search(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}
