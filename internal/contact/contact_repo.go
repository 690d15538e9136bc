package contact

import (
	"context"
	"encoding/json"
	"time"

	"go-smbops/internal/shared/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const exportBatchSize = 500

//go:generate mockgen -source=contact_repo.go -destination=mock/contact_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Contact) error
	List(ctx context.Context, q ListContactsQuery) ([]Contact, error)
	// Update replaces the editable fields, leaving interactions alone, and
	// reports how many rows matched.
	Update(ctx context.Context, id uuid.UUID, req ContactRequest, at time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AppendInteraction(ctx context.Context, id uuid.UUID, it Interaction) (int64, error)
	FindInBatches(ctx context.Context, fn func(batch []Contact) error) error
	Recent(ctx context.Context, n int) ([]Contact, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) List(ctx context.Context, q ListContactsQuery) ([]Contact, error) {
	var contacts []Contact
	db := r.db.WithContext(ctx).Model(&Contact{})
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.Q != "" {
		db = db.Where("name ILIKE ?", query.Contains(q.Q))
	}
	err := db.Order("created_at DESC").Limit(query.Limit(q.Limit)).Find(&contacts).Error
	return contacts, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, req ContactRequest, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Contact{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":         req.Name,
			"email":        req.Email,
			"phone":        req.Phone,
			"company_id":   req.CompanyID,
			"company_name": req.CompanyName,
			"status":       req.Status,
			"notes":        req.Notes,
			"updated_at":   at,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Contact{}).Error
}

// AppendInteraction concatenates in SQL so concurrent appends never lose entries.
func (r *repository) AppendInteraction(ctx context.Context, id uuid.UUID, it Interaction) (int64, error) {
	payload, err := json.Marshal([]Interaction{it})
	if err != nil {
		return 0, err
	}

	res := r.db.WithContext(ctx).
		Model(&Contact{}).
		Where("id = ?", id).
		UpdateColumn("interactions", gorm.Expr("COALESCE(interactions, '[]'::jsonb) || CAST(? AS jsonb)", string(payload)))
	return res.RowsAffected, res.Error
}

func (r *repository) FindInBatches(ctx context.Context, fn func(batch []Contact) error) error {
	var batch []Contact
	return r.db.WithContext(ctx).
		FindInBatches(&batch, exportBatchSize, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		}).Error
}

func (r *repository) Recent(ctx context.Context, n int) ([]Contact, error) {
	var contacts []Contact
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(n).Find(&contacts).Error
	return contacts, err
}

func (r *repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Contact{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
