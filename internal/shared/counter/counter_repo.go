package counter

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Counter is a per-scope, per-period usage counter, e.g. quotes created by one
// user in one calendar month.
type Counter struct {
	Scope     string    `gorm:"column:scope;type:varchar(128);primaryKey"`
	Period    string    `gorm:"column:period;type:varchar(16);primaryKey"`
	Value     int64     `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Counter) TableName() string {
	return "quota_counters"
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	// IncrementWithin adds one to the counter unless it already reached limit.
	// ok is false when the limit was reached and nothing changed.
	IncrementWithin(ctx context.Context, scope, period string, limit int64) (value int64, ok bool, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) IncrementWithin(ctx context.Context, scope, period string, limit int64) (int64, bool, error) {
	if limit < 1 {
		return 0, false, nil
	}

	var values []int64

	// Single statement: the conflict branch only fires below the limit, so two
	// concurrent callers can never both take the last slot.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO quota_counters (scope, period, value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (scope, period) DO UPDATE
		SET value = quota_counters.value + 1, updated_at = now()
		WHERE quota_counters.value < ?
		RETURNING value
	`, scope, period, limit).Scan(&values).Error
	if err != nil {
		return 0, false, err
	}

	if len(values) == 0 {
		return limit, false, nil
	}

	return values[0], true, nil
}
