// Package sequence allocates the counters behind request numbers.
package sequence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/models"
	"github.com/reqtrack/reqtrack/internal/shared/db"
)

// DBAllocator increments a row in the sequences table. Inside the caller's
// transaction the row lock is held until commit, so concurrent creators are
// serialised and a rolled back creation releases its number.
type DBAllocator struct {
	db  *gorm.DB
	txm *db.TransactionManager
}

func NewDBAllocator(gdb *gorm.DB) *DBAllocator {
	return &DBAllocator{db: gdb, txm: db.NewTransactionManager(gdb)}
}

func (a *DBAllocator) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := a.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, a.db)

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.SequenceModel{Name: name, Value: 0}).Error; err != nil {
			return fmt.Errorf("failed to initialise sequence %s: %w", name, err)
		}

		if err := tx.Model(&models.SequenceModel{}).
			Where("name = ?", name).
			Update("value", gorm.Expr("value + 1")).Error; err != nil {
			return fmt.Errorf("failed to increment sequence %s: %w", name, err)
		}

		var row models.SequenceModel
		if err := tx.Where("name = ?", name).First(&row).Error; err != nil {
			return fmt.Errorf("failed to read sequence %s: %w", name, err)
		}
		value = row.Value
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}
