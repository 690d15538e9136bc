package quote

import (
	"context"

	"go-smbops/internal/shared/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=quote_repo.go -destination=mock/quote_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, q *Quote) error
	GetOwned(ctx context.Context, id uuid.UUID, ownerID string) (*Quote, error)
	GetByPublicToken(ctx context.Context, token string) (*Quote, error)
	ListOwned(ctx context.Context, ownerID string, q ListQuotesQuery) ([]Quote, error)
	// UpdateOwned replaces the editable fields of a quote owned by ownerID and
	// reports how many rows matched.
	UpdateOwned(ctx context.Context, id uuid.UUID, ownerID string, q *Quote) (int64, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, ownerID string) error
	RecentOwned(ctx context.Context, ownerID string, n int) ([]Quote, error)
	CountOwned(ctx context.Context, ownerID string) (int64, error)
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

func (r *repository) Create(ctx context.Context, q *Quote) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) GetOwned(ctx context.Context, id uuid.UUID, ownerID string) (*Quote, error) {
	var q Quote
	err := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *repository) GetByPublicToken(ctx context.Context, token string) (*Quote, error) {
	var q Quote
	if err := r.db.WithContext(ctx).Where("public_token = ?", token).First(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *repository) ListOwned(ctx context.Context, ownerID string, q ListQuotesQuery) ([]Quote, error) {
	var quotes []Quote
	db := r.db.WithContext(ctx).Where("created_by = ?", ownerID)
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.Q != "" {
		db = db.Where("company_name ILIKE ?", query.Contains(q.Q))
	}
	err := db.Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

func (r *repository) UpdateOwned(ctx context.Context, id uuid.UUID, ownerID string, q *Quote) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Quote{}).
		Where("id = ? AND created_by = ?", id, ownerID).
		Updates(map[string]any{
			"contact_id":   q.ContactID,
			"company_id":   q.CompanyID,
			"company_name": q.CompanyName,
			"items":        q.Items,
			"currency":     q.Currency,
			"status":       q.Status,
			"total":        q.Total,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteOwned(ctx context.Context, id uuid.UUID, ownerID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		Delete(&Quote{}).Error
}

func (r *repository) RecentOwned(ctx context.Context, ownerID string, n int) ([]Quote, error) {
	var quotes []Quote
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Limit(n).
		Find(&quotes).Error
	return quotes, err
}

func (r *repository) CountOwned(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Quote{}).Where("created_by = ?", ownerID).Count(&count).Error
	return count, err
}
