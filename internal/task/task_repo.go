package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Task) error
	List(ctx context.Context, q ListTasksQuery) ([]Task, error)
	Update(ctx context.Context, id uuid.UUID, req TaskRequest, at time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Recent(ctx context.Context, n int) ([]Task, error)
	CountByStatus(ctx context.Context, statuses []string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) List(ctx context.Context, q ListTasksQuery) ([]Task, error) {
	var tasks []Task
	db := r.db.WithContext(ctx)
	if q.ProjectID != "" {
		db = db.Where("project_id = ?", q.ProjectID)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	err := db.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, req TaskRequest, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"project_id":  req.ProjectID,
			"title":       req.Title,
			"description": req.Description,
			"assignee_id": req.AssigneeID,
			"due_date":    req.DueDate,
			"priority":    req.Priority,
			"status":      req.Status,
			"updated_at":  at,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Task{}).Error
}

func (r *repository) Recent(ctx context.Context, n int) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(n).Find(&tasks).Error
	return tasks, err
}

func (r *repository) CountByStatus(ctx context.Context, statuses []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Task{}).Where("status IN ?", statuses).Count(&count).Error
	return count, err
}
