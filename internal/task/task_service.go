package task

import (
	"context"
	"time"

	"go-smbops/internal/shared/contextutil"
	taskerrors "go-smbops/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req TaskRequest) (TaskResponse, error)
	List(ctx context.Context, q ListTasksQuery) ([]TaskResponse, error)
	Update(ctx context.Context, id string, req TaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, req TaskRequest) (TaskResponse, error) {
	now := s.now().UTC()
	withDefaults(&req)

	t := &Task{
		ID:          uuid.New(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to create task", zap.Error(err))
		return TaskResponse{}, err
	}

	return MapToResponse(t), nil
}

func (s *service) List(ctx context.Context, q ListTasksQuery) ([]TaskResponse, error) {
	tasks, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	res := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		res = append(res, MapToResponse(&tasks[i]))
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, req TaskRequest) (TaskResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	withDefaults(&req)
	now := s.now().UTC()

	matched, err := s.repo.Update(ctx, uid, req, now)
	if err != nil {
		return TaskResponse{}, err
	}
	if matched == 0 {
		return TaskResponse{}, taskerrors.ErrTaskNotFound
	}

	return TaskResponse{
		ID:          id,
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
		UpdatedAt:   &now,
	}, nil
}

// Delete is a no-op when the task does not exist.
func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return taskerrors.ErrInvalidTaskID
	}
	return s.repo.Delete(ctx, uid)
}

func withDefaults(req *TaskRequest) {
	if req.Priority == "" {
		req.Priority = PriorityMedium
	}
	if req.Status == "" {
		req.Status = StatusToDo
	}
}

func MapToResponse(t *Task) TaskResponse {
	res := TaskResponse{
		ID:          t.ID.String(),
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		AssigneeID:  t.AssigneeID,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Status:      t.Status,
	}
	if !t.CreatedAt.IsZero() {
		c := t.CreatedAt
		res.CreatedAt = &c
	}
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		res.UpdatedAt = &u
	}
	return res
}
