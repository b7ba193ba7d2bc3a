package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	tagvo "github.com/reqtrack/reqtrack/internal/domain/tag/valueobjects"
	"github.com/reqtrack/reqtrack/internal/infrastructure/auth"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/models"
	"github.com/reqtrack/reqtrack/internal/infrastructure/repository"
	"github.com/reqtrack/reqtrack/internal/shared/authorization"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

const sample = `
users:
  - name: Admin
    email: Admin@Example.com
    password: secret1
    role: admin
  - name: Taro
    email: taro@example.com
    password: secret1
customers:
  - name: Yamada
    company: Acme
    email: yamada@acme.test
tags:
  - name: billing
    category: 機能領域
  - name: vip
    color: "#FF0000"
    category: customer_attribute
`

func TestSeeder_ApplyIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))

	log := logger.NewLogger()
	users := repository.NewUserRepository(db, log)
	tags := repository.NewTagRepository(db, log)
	seeder := NewSeeder(users, repository.NewCustomerRepository(db, log), tags, auth.NewBcryptPasswordHasher(4), log)

	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	ctx := context.Background()
	res, err := seeder.Apply(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, Result{Users: 2, Customers: 1, Tags: 2}, res)

	res, err = seeder.Apply(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	admin, err := users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin, admin.Role())

	taro, err := users.GetByEmail(ctx, "taro@example.com")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleUser, taro.Role())

	byCategory, err := tags.ListByCategory(ctx, tagvo.CategoryCustomerAttribute)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "#ff0000", byCategory[0].Color())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("users: [unterminated"))
	assert.Error(t, err)
}
