package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqtrack/reqtrack/internal/shared/authorization"
)

var now = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Taro", "T@Example.com", "hash", now)
	require.NoError(t, err)
	assert.Equal(t, "t@example.com", u.Email())
	assert.Equal(t, authorization.RoleUser, u.Role())

	_, err = NewUser("", "t@example.com", "hash", now)
	assert.Error(t, err)
	_, err = NewUser("Taro", "t@", "hash", now)
	assert.Error(t, err)
	_, err = NewUser("Taro", "t@example.com", "", now)
	assert.Error(t, err)
}

func TestReconstructUser_NormalizesRole(t *testing.T) {
	u, err := ReconstructUser(1, "Taro", "t@example.com", "h", "superuser", now, now)
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleUser, u.Role())

	u.PromoteToAdmin(now)
	assert.True(t, u.Role().IsAdmin())

	_, err = ReconstructUser(0, "Taro", "t@example.com", "h", "user", now, now)
	assert.Error(t, err)
}

func TestReplacePasswordHash(t *testing.T) {
	u, err := NewUser("Taro", "t@example.com", "old", now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, u.ReplacePasswordHash("new", later))
	assert.Equal(t, "new", u.PasswordHash())
	assert.Equal(t, later, u.UpdatedAt())

	assert.Error(t, u.ReplacePasswordHash("", later))
	assert.Equal(t, "new", u.PasswordHash())
}
