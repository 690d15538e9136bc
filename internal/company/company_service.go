package company

import (
	"context"
	"time"

	companyerrors "go-smbops/internal/company/errors"
	"go-smbops/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, callerID string, req CompanyRequest) (CompanyResponse, error)
	List(ctx context.Context, q ListCompaniesQuery) ([]CompanyResponse, error)
	Update(ctx context.Context, id string, req CompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, callerID string, req CompanyRequest) (CompanyResponse, error) {
	c := &Company{
		ID:        uuid.New(),
		Name:      req.Name,
		Domain:    req.Domain,
		Notes:     req.Notes,
		CreatedBy: callerID,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to create company", zap.Error(err))
		return CompanyResponse{}, err
	}

	return mapToResponse(c), nil
}

func (s *service) List(ctx context.Context, q ListCompaniesQuery) ([]CompanyResponse, error) {
	companies, err := s.repo.List(ctx, q.Q, q.Limit)
	if err != nil {
		return nil, err
	}

	res := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		res = append(res, mapToResponse(&companies[i]))
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, req CompanyRequest) (CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	matched, err := s.repo.Update(ctx, uid, req)
	if err != nil {
		return CompanyResponse{}, err
	}
	if matched == 0 {
		return CompanyResponse{}, companyerrors.ErrCompanyNotFound
	}

	return CompanyResponse{
		ID:     id,
		Name:   req.Name,
		Domain: req.Domain,
		Notes:  req.Notes,
	}, nil
}

// Delete is a no-op when the company does not exist.
func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return companyerrors.ErrInvalidCompanyID
	}
	return s.repo.Delete(ctx, uid)
}

func mapToResponse(c *Company) CompanyResponse {
	return CompanyResponse{
		ID:     c.ID.String(),
		Name:   c.Name,
		Domain: c.Domain,
		Notes:  c.Notes,
	}
}
