package http

import (
	"gorm.io/gorm"

	"github.com/reqtrack/reqtrack/internal/infrastructure/repository"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type repositories struct {
	user     *repository.UserRepository
	customer *repository.CustomerRepository
	tag      *repository.TagRepository
	request  *repository.RequestRepository
	stats    *repository.StatsRepository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db, log),
		customer: repository.NewCustomerRepository(db, log),
		tag:      repository.NewTagRepository(db, log),
		request:  repository.NewRequestRepository(db, log),
		stats:    repository.NewStatsRepository(db),
	}
}
