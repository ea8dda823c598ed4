// Package sequencerepo implements the day-scoped order number counter on
// Postgres. Each calendar day has one counter row; allocation is a single
// atomic upsert, so concurrent order creations can never observe the same
// sequence value.
package sequencerepo

import (
	"context"
	"time"

	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

const dayFormat = "060102"

// OrderSequenceDTO represents one calendar day's counter row.
type OrderSequenceDTO struct {
	Day      string `gorm:"primaryKey;size:6"`
	Sequence int
}

// TableName specifies the database table name for sequence counters.
func (OrderSequenceDTO) TableName() string {
	return "order_sequences"
}

// GormOrderSequence implements OrderSequence using GORM.
type GormOrderSequence struct {
	db *gorm.DB
}

// NewGormOrderSequence creates a new GORM order sequence allocator.
func NewGormOrderSequence(db *gorm.DB) *GormOrderSequence {
	return &GormOrderSequence{db: db}
}

// Next atomically allocates the next sequence number for the given day.
// The upsert increments and returns in one statement, so two transactions
// allocating concurrently are serialized by the row lock and always receive
// distinct values. Values allocated by transactions that later roll back are
// lost; gaps are acceptable, duplicates are not.
func (s *GormOrderSequence) Next(ctx context.Context, day time.Time) (int, error) {
	var sequence int
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_sequences (day, sequence)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE
		SET sequence = order_sequences.sequence + 1
		RETURNING sequence
	`, day.Format(dayFormat)).Scan(&sequence).Error
	if err != nil {
		return 0, err
	}

	// 9999 per day is the order number format's capacity.
	if sequence > 9999 {
		return 0, errs.NewValueIsOutOfRangeError("sequence", sequence, 1, 9999)
	}

	return sequence, nil
}
