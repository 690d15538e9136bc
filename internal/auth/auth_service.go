package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-smbops/internal/auth/errors"
	"go-smbops/internal/domain"
	"go-smbops/internal/shared/contextutil"
	"go-smbops/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	Resolve(ctx context.Context, token string) (domain.Identity, error)
}

type service struct {
	sessions Repository
	userRepo user.Repository
	users    user.Service
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(sessions Repository, userRepo user.Repository, users user.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		sessions: sessions,
		userRepo: userRepo,
		users:    users,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleAdmin
	}

	created, err := s.users.Create(ctx, user.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return AuthResponse{}, err
	}

	token, err := s.startSession(ctx, created.ID)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{Token: token, User: created}, nil
}

// Login mints a new session on every call; earlier sessions stay valid.
func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if err != nil {
		return AuthResponse{}, err
	}

	if !user.CheckPassword(u.Password, password) {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.startSession(ctx, u.ID.String())
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{Token: token, User: user.ToResponse(u)}, nil
}

func (s *service) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, autherrors.ErrMissingToken
	}

	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		return domain.Identity{}, err
	}
	if session == nil {
		return domain.Identity{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(session.UserID)
	if err != nil {
		return domain.Identity{}, autherrors.ErrInvalidSessionUser
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Identity{}, autherrors.ErrInvalidSessionUser
	}
	if err != nil {
		return domain.Identity{}, err
	}

	return user.ToIdentity(u), nil
}

func (s *service) startSession(ctx context.Context, userID string) (string, error) {
	token, err := NewToken(SessionTokenBytes)
	if err != nil {
		return "", err
	}

	if err := s.sessions.SaveSession(ctx, token, Session{UserID: userID, CreatedAt: s.now().UTC()}); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to store session", zap.String("user_id", userID), zap.Error(err))
		return "", err
	}
	return token, nil
}
