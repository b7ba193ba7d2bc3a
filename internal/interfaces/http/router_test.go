package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/reqtrack/reqtrack/internal/infrastructure/config"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/models"
	sharedConfig "github.com/reqtrack/reqtrack/internal/shared/config"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{BaseURL: "http://localhost:5000"},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "router-test-secret", ExpDays: 1},
		},
		Sequence: sharedConfig.SequenceConfig{Backend: sharedConfig.SequenceBackendDB},
		Storage: sharedConfig.StorageConfig{
			Driver:      sharedConfig.StorageDriverLocal,
			UploadDir:   t.TempDir(),
			MaxUploadMB: 1,
		},
	}

	c, err := NewContainer(context.Background(), db, nil, cfg, logger.NewNopLogger())
	require.NoError(t, err)
	r := NewRouter(c)
	r.SetupRoutes()
	return r.Engine()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Type string `json:"type"`
	} `json:"error"`
}

func call(t *testing.T, e *gin.Engine, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func TestRouter_RequestLifecycle(t *testing.T) {
	e := newTestRouter(t)

	code, _ := call(t, e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, e, http.MethodGet, "/api/requests", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := call(t, e, http.MethodPost, "/api/users", "", map[string]string{
		"name": "Sato", "email": "sato@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, code)
	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)

	code, _ = call(t, e, http.MethodGet, "/api/users", auth.Token, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = call(t, e, http.MethodPost, "/api/customers", auth.Token, map[string]string{
		"name": "Tanaka", "company": "ACME", "email": "tanaka@acme.jp",
	})
	require.Equal(t, http.StatusCreated, code)
	var cust struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cust))

	code, env = call(t, e, http.MethodPost, "/api/requests", auth.Token, map[string]any{
		"title":     "CSV export",
		"content":   "Please support CSV export",
		"customers": []uint{cust.ID},
	})
	require.Equal(t, http.StatusCreated, code)
	var created struct {
		ID            uint   `json:"id"`
		RequestNumber string `json:"request_number"`
		Status        string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "REQ-00001", created.RequestNumber)
	assert.Equal(t, "new", created.Status)

	path := "/api/requests/" + jsonNumber(created.ID)
	code, env = call(t, e, http.MethodPut, path, auth.Token, map[string]any{"status": "planned"})
	require.Equal(t, http.StatusOK, code)
	var updated struct {
		Status  string            `json:"status"`
		History []json.RawMessage `json:"history"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "planned", updated.Status)
	assert.Len(t, updated.History, 1)

	code, env = call(t, e, http.MethodPut, path, auth.Token, map[string]any{"customers": nil})
	require.Equal(t, http.StatusOK, code)
	var cleared struct {
		Customers []json.RawMessage `json:"customers"`
		History   []struct {
			Field string `json:"field"`
		} `json:"history"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cleared))
	assert.Empty(t, cleared.Customers)
	require.Len(t, cleared.History, 2)
	assert.Equal(t, "customers", cleared.History[1].Field)

	code, _ = call(t, e, http.MethodPost, path+"/comments", auth.Token, map[string]any{"content": "queued for Q3"})
	assert.Equal(t, http.StatusCreated, code)

	code, env = call(t, e, http.MethodGet, "/api/requests/stats", auth.Token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	code, _ = call(t, e, http.MethodDelete, path, auth.Token, nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = call(t, e, http.MethodGet, path, auth.Token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Type)
}

func jsonNumber(id uint) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}
