package project

import (
	"context"
	"time"

	projecterrors "go-smbops/internal/project/errors"
	"go-smbops/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, callerID string, req ProjectRequest) (ProjectResponse, error)
	List(ctx context.Context, callerID string) ([]ProjectResponse, error)
	Update(ctx context.Context, id, callerID string, req ProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id, callerID string) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, callerID string, req ProjectRequest) (ProjectResponse, error) {
	p := &Project{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     callerID,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to create project", zap.Error(err))
		return ProjectResponse{}, err
	}

	return mapToResponse(p), nil
}

func (s *service) List(ctx context.Context, callerID string) ([]ProjectResponse, error) {
	projects, err := s.repo.ListOwned(ctx, callerID)
	if err != nil {
		return nil, err
	}

	res := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		res = append(res, mapToResponse(&projects[i]))
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id, callerID string, req ProjectRequest) (ProjectResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}

	matched, err := s.repo.UpdateOwned(ctx, uid, callerID, req)
	if err != nil {
		return ProjectResponse{}, err
	}
	if matched == 0 {
		return ProjectResponse{}, projecterrors.ErrProjectNotFound
	}

	return ProjectResponse{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     callerID,
	}, nil
}

func (s *service) Delete(ctx context.Context, id, callerID string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return projecterrors.ErrInvalidProjectID
	}
	return s.repo.DeleteOwned(ctx, uid, callerID)
}

func mapToResponse(p *Project) ProjectResponse {
	res := ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
	}
	if !p.CreatedAt.IsZero() {
		t := p.CreatedAt
		res.CreatedAt = &t
	}
	return res
}
