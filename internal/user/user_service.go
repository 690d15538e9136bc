package user

import (
	"context"
	"strings"
	"time"

	"go-smbops/internal/domain"
	"go-smbops/internal/shared/contextutil"
	usererrors "go-smbops/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

// Create stores a new active user. An empty role becomes Admin.
func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	email := strings.TrimSpace(req.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	if exists {
		return UserResponse{}, usererrors.ErrEmailAlreadyRegistered
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleAdmin
	}

	now := s.now().UTC()
	u := &User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     email,
		Role:      role,
		Password:  hashed,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		log.Warn("failed to create user", zap.String("email", email), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	log.Info("user created", zap.String("user_id", u.ID.String()), zap.String("role", role))
	return ToResponse(u), nil
}

func (s *service) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]UserResponse, 0, len(users))
	for i := range users {
		res = append(res, ToResponse(&users[i]))
	}
	return res, nil
}

func ToResponse(u *User) UserResponse {
	return UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func ToIdentity(u *User) domain.Identity {
	return domain.Identity{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
