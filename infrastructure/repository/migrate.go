package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the ledger and read model tables and seeds the ID counters.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&jobRow{},
		&referralRow{},
		&counterRow{},
		&eventRow{},
		&tokenAccountRow{},
		&tokenAllowanceRow{},
		&disputeRow{},
		&jobProjectionRow{},
		&referralProjectionRow{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	counters := []counterRow{{Name: counterJob}, {Name: counterReferral}}
	if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&counters).Error; err != nil {
		return fmt.Errorf("seed counters: %w", err)
	}
	return nil
}

// nextCounterValue increments a named counter under a row lock and returns the new value.
func nextCounterValue(ctx context.Context, db *gorm.DB, name string) (uint64, error) {
	var row counterRow
	err := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		Take(&row).Error
	if err != nil {
		return 0, err
	}

	row.Value++
	err = db.WithContext(ctx).
		Model(&counterRow{}).
		Where("name = ?", name).
		Update("value", row.Value).Error
	if err != nil {
		return 0, err
	}
	return row.Value, nil
}
