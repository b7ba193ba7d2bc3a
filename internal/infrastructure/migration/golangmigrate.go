package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/gorm"

	"github.com/reqtrack/reqtrack/internal/shared/config"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

// GolangMigrateStrategy runs the paired .up.sql/.down.sql scripts embedded
// under scripts/golang-migrate/<driver>. Versions live in schema_migrations,
// separate from goose_db_version, so only one strategy should own a database.
//
// MySQL and PostgreSQL get a dedicated connection pool opened from the DSN
// because the migrate drivers pin a connection and close the pool on Close.
// SQLite reuses the gorm pool so in-memory databases stay visible, and that
// pool is never closed here.
type GolangMigrateStrategy struct {
	db     config.DatabaseConfig
	logger logger.Interface
}

func NewGolangMigrateStrategy(db config.DatabaseConfig) *GolangMigrateStrategy {
	return &GolangMigrateStrategy{
		db:     db,
		logger: logger.NewLogger().With("component", "migration.golang-migrate"),
	}
}

// GolangMigrateScriptsDir is the embedded directory for driver.
func GolangMigrateScriptsDir(driver string) string {
	return "scripts/golang-migrate/" + driver
}

func (s *GolangMigrateStrategy) GetName() string {
	return "golang_migrate"
}

// instance builds a migrate.Migrate and the func that releases it.
func (s *GolangMigrateStrategy) instance(db *gorm.DB) (*migrate.Migrate, func(), error) {
	src, err := iofs.New(scripts, GolangMigrateScriptsDir(s.db.Driver))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open migration scripts: %w", err)
	}

	var (
		driver   database.Driver
		name     string
		ownsPool bool
	)
	switch s.db.Driver {
	case config.DriverSQLite:
		sqlDB, err := db.DB()
		if err != nil {
			_ = src.Close()
			return nil, nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		name = "sqlite3"
		driver, err = migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
		if err != nil {
			_ = src.Close()
			return nil, nil, fmt.Errorf("failed to create sqlite migrate driver: %w", err)
		}
	case config.DriverMySQL:
		name, ownsPool = "mysql", true
		driver, err = openOwned("mysql", mysqlMultiStatementDSN(s.db.GetDSN()), func(pool *sql.DB) (database.Driver, error) {
			return migratemysql.WithInstance(pool, &migratemysql.Config{})
		})
	case config.DriverPostgres:
		name, ownsPool = "pgx5", true
		driver, err = openOwned("pgx", s.db.GetDSN(), func(pool *sql.DB) (database.Driver, error) {
			return migratepgx.WithInstance(pool, &migratepgx.Config{})
		})
	default:
		err = fmt.Errorf("unsupported database driver for migrations: %s", s.db.Driver)
	}
	if err != nil {
		_ = src.Close()
		return nil, nil, err
	}

	m, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		_ = src.Close()
		if ownsPool {
			_ = driver.Close()
		}
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	m.Log = migrateLogger{s.logger}

	release := func() {
		if ownsPool {
			_, _ = m.Close()
			return
		}
		_ = src.Close()
	}
	return m, release, nil
}

func openOwned(sqlDriver, dsn string, wrap func(*sql.DB) (database.Driver, error)) (database.Driver, error) {
	pool, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection for migrations: %w", sqlDriver, err)
	}
	driver, err := wrap(pool)
	if err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to create %s migrate driver: %w", sqlDriver, err)
	}
	return driver, nil
}

// mysqlMultiStatementDSN enables multi statement execution, which the
// golang-migrate mysql driver needs to run a whole script in one Exec.
func mysqlMultiStatementDSN(dsn string) string {
	if strings.Contains(dsn, "multiStatements=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&multiStatements=true"
	}
	return dsn + "?multiStatements=true"
}

func (s *GolangMigrateStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting golang-migrate migration", "driver", s.db.Driver)

	m, release, err := s.instance(db)
	if err != nil {
		return err
	}
	defer release()

	from, dirty, err := s.version(m)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", from)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	to, _, err := s.version(m)
	if err != nil {
		return err
	}
	s.logger.Infow("migration completed successfully", "from_version", from, "to_version", to)
	return nil
}

func (s *GolangMigrateStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	m, release, err := s.instance(db)
	if err != nil {
		return err
	}
	defer release()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("down migration failed", "error", err)
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GolangMigrateStrategy) GetVersion(db *gorm.DB) (int64, error) {
	m, release, err := s.instance(db)
	if err != nil {
		return 0, err
	}
	defer release()

	v, _, err := s.version(m)
	return v, err
}

func (s *GolangMigrateStrategy) Status(db *gorm.DB) error {
	m, release, err := s.instance(db)
	if err != nil {
		return err
	}
	defer release()

	v, dirty, err := s.version(m)
	if err != nil {
		return err
	}
	s.logger.Infow("migration status", "strategy", s.GetName(), "version", v, "dirty", dirty)
	return nil
}

// version reports 0 for a database that has never been migrated.
func (s *GolangMigrateStrategy) version(m *migrate.Migrate) (int64, bool, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return int64(v), dirty, nil
}

var migrationFileVersion = regexp.MustCompile(`^(\d+)_.+\.(up|down)\.sql$`)

// Create writes an empty up/down pair into dir on disk, numbered after the
// highest version already there.
func (s *GolangMigrateStrategy) Create(dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create migration dir: %w", err)
	}

	next := 1
	entries, err := fs.ReadDir(os.DirFS(dir), ".")
	if err != nil {
		return fmt.Errorf("failed to read migration dir: %w", err)
	}
	for _, e := range entries {
		match := migrationFileVersion.FindStringSubmatch(e.Name())
		if match == nil {
			continue
		}
		if v, err := strconv.Atoi(match[1]); err == nil && v >= next {
			next = v + 1
		}
	}

	base := fmt.Sprintf("%06d_%s", next, strings.ReplaceAll(strings.ToLower(name), " ", "_"))
	for _, suffix := range []string{".up.sql", ".down.sql"} {
		path := filepath.Join(dir, base+suffix)
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("failed to create migration: %w", err)
		}
	}

	s.logger.Infow("migration created successfully", "name", base, "dir", dir)
	return nil
}

// migrateLogger routes golang-migrate's output into the structured logger.
type migrateLogger struct {
	log logger.Interface
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.log.Infow(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool {
	return false
}
