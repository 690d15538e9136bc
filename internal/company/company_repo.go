package company

import (
	"context"

	"go-smbops/internal/shared/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Company) error
	List(ctx context.Context, q string, limit int) ([]Company, error)
	// Update replaces the editable fields and reports how many rows matched.
	Update(ctx context.Context, id uuid.UUID, req CompanyRequest) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) List(ctx context.Context, q string, limit int) ([]Company, error) {
	var companies []Company
	db := r.db.WithContext(ctx).Model(&Company{})
	if q != "" {
		db = db.Where("name ILIKE ?", query.Contains(q))
	}
	err := db.Order("created_at DESC").Limit(query.Limit(limit)).Find(&companies).Error
	return companies, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, req CompanyRequest) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Company{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":   req.Name,
			"domain": req.Domain,
			"notes":  req.Notes,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Company{}).Error
}
