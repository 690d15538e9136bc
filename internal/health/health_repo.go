package health

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Ping(ctx context.Context) error
	ListTables(ctx context.Context, limit int) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *repository) ListTables(ctx context.Context, limit int) ([]string, error) {
	var tables []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema()
		ORDER BY table_name
		LIMIT ?
	`, limit).Scan(&tables).Error
	return tables, err
}
