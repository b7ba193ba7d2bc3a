package user

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqtrack/reqtrack/internal/application/identity/dto"
	"github.com/reqtrack/reqtrack/internal/application/identity/usecases"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/testutil"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
)

type mockRegisterUseCase struct {
	result *dto.AuthResultDTO
	err    error
	got    usecases.RegisterUserCommand
}

func (m *mockRegisterUseCase) Execute(ctx context.Context, cmd usecases.RegisterUserCommand) (*dto.AuthResultDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockLoginUseCase struct {
	result *dto.AuthResultDTO
	err    error
}

func (m *mockLoginUseCase) Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.AuthResultDTO, error) {
	return m.result, m.err
}

type mockGetProfileUseCase struct {
	result *dto.UserDTO
	err    error
	got    uint
}

func (m *mockGetProfileUseCase) Execute(ctx context.Context, q usecases.GetProfileQuery) (*dto.UserDTO, error) {
	m.got = q.UserID
	return m.result, m.err
}

type mockListUsersUseCase struct {
	result *usecases.ListUsersResult
	err    error
	got    usecases.ListUsersQuery
}

func (m *mockListUsersUseCase) Execute(ctx context.Context, q usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
	m.got = q
	return m.result, m.err
}

type handlerMocks struct {
	register *mockRegisterUseCase
	login    *mockLoginUseCase
	profile  *mockGetProfileUseCase
	list     *mockListUsersUseCase
}

func newTestHandler() (*Handler, *handlerMocks) {
	m := &handlerMocks{
		register: &mockRegisterUseCase{},
		login:    &mockLoginUseCase{},
		profile:  &mockGetProfileUseCase{},
		list:     &mockListUsersUseCase{},
	}
	return NewHandler(m.register, m.login, m.profile, m.list, testutil.NewMockLogger()), m
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		ucErr      error
		wantStatus int
	}{
		{"success", map[string]string{"name": "Taro", "email": "t@example.com", "password": "secret1"}, nil, http.StatusCreated},
		{"short password", map[string]string{"name": "Taro", "email": "t@example.com", "password": "123"}, nil, http.StatusBadRequest},
		{"missing email", map[string]string{"name": "Taro", "password": "secret1"}, nil, http.StatusBadRequest},
		{"malformed json", "{", nil, http.StatusBadRequest},
		{"duplicate", map[string]string{"name": "Taro", "email": "t@example.com", "password": "secret1"}, errors.NewConflictError("User already exists"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			m.register.result = &dto.AuthResultDTO{User: dto.UserDTO{ID: 1, Name: "Taro"}, Token: "tok"}
			m.register.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodPost, "/api/users", tt.body)
			h.Register(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, tt.wantStatus == http.StatusCreated, resp.Success)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	h, m := newTestHandler()
	m.login.err = errors.NewUnauthorizedError("Invalid email or password")

	c, w := testutil.NewTestContext(http.MethodPost, "/api/users/login", map[string]string{"email": "t@example.com", "password": "bad"})
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Invalid email or password", resp.Error.Message)

	m.login.err = nil
	m.login.result = &dto.AuthResultDTO{Token: "tok"}
	c, w = testutil.NewTestContext(http.MethodPost, "/api/users/login", map[string]string{"email": "t@example.com", "password": "secret1"})
	h.Login(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetProfile(t *testing.T) {
	h, m := newTestHandler()
	m.profile.result = &dto.UserDTO{ID: 3, Name: "Taro"}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/users/profile", nil)
	h.GetProfile(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/users/profile", nil)
	testutil.SetAuthContext(c, 3)
	h.GetProfile(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), m.profile.got)
}

func TestHandler_ListUsers(t *testing.T) {
	h, m := newTestHandler()
	m.list.result = &usecases.ListUsersResult{Users: []dto.UserDTO{{ID: 1}}, Total: 1}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/users", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "limit": "5"})
	h.ListUsers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListUsersQuery{Page: 2, PageSize: 5}, m.list.got)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(1), data.Total)
	assert.Equal(t, 2, data.Page)
}
