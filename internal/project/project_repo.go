package project

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Project) error
	ListOwned(ctx context.Context, ownerID string) ([]Project, error)
	UpdateOwned(ctx context.Context, id uuid.UUID, ownerID string, req ProjectRequest) (int64, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, ownerID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) ListOwned(ctx context.Context, ownerID string) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) UpdateOwned(ctx context.Context, id uuid.UUID, ownerID string, req ProjectRequest) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]any{
			"name":        req.Name,
			"description": req.Description,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteOwned(ctx context.Context, id uuid.UUID, ownerID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&Project{}).Error
}
