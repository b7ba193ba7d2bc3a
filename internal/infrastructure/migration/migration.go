package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/reqtrack/reqtrack/internal/shared/config"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy named in configuration. Unknown names fall
// back to goose.
func NewManager(cfg config.MigrationConfig, db config.DatabaseConfig) *Manager {
	if strings.ToLower(cfg.Strategy) == config.MigrationStrategyAuto {
		return NewManagerWithStrategy(NewAutoMigrateStrategy())
	}
	return NewManagerWithStrategy(NewVersionedStrategy(cfg, db))
}

// NewVersionedStrategy returns the script based strategy for cfg: golang-migrate
// when configured, goose otherwise. The auto strategy keeps no versions, so
// down, status and create use goose for it.
func NewVersionedStrategy(cfg config.MigrationConfig, db config.DatabaseConfig) Versioned {
	if strings.ToLower(cfg.Strategy) == config.MigrationStrategyGolangMigrate {
		return NewGolangMigrateStrategy(db)
	}
	return NewGooseStrategy(db.Driver)
}

// VersionedScriptsDir is where Create writes new scripts for the strategy,
// relative to this package.
func VersionedScriptsDir(s Versioned, driver string) string {
	if _, ok := s.(*GolangMigrateStrategy); ok {
		return GolangMigrateScriptsDir(driver)
	}
	return ScriptsDir(driver)
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
