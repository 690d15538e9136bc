package settings

import (
	"context"
	"time"

	"go-smbops/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Service interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Put(ctx context.Context, req SettingsRequest) (SettingsResponse, error)
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{repo: repo, sf: &singleflight.Group{}, now: time.Now, logger: l}
}

func (s *service) Get(ctx context.Context) (SettingsResponse, error) {
	// Shared by every waiter; detached from this caller's cancellation.
	readCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(SingletonKey, func() (interface{}, error) {
		stored, err := s.repo.Get(readCtx)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			d := Defaults()
			stored = &d
		}
		return mapToResponse(stored), nil
	})
	if err != nil {
		return SettingsResponse{}, err
	}

	return v.(SettingsResponse), nil
}

// Put replaces the whole document. Blank language or theme fall back to the
// defaults.
func (s *service) Put(ctx context.Context, req SettingsRequest) (SettingsResponse, error) {
	row := &Settings{
		Key:         SingletonKey,
		CompanyName: req.CompanyName,
		Language:    req.Language,
		Theme:       req.Theme,
		UpdatedAt:   s.now().UTC(),
	}
	if row.Language == "" {
		row.Language = DefaultLanguage
	}
	if row.Theme == "" {
		row.Theme = DefaultTheme
	}

	if err := s.repo.Upsert(ctx, row); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to save settings", zap.Error(err))
		return SettingsResponse{}, err
	}

	return mapToResponse(row), nil
}

func mapToResponse(s *Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName: s.CompanyName,
		Language:    s.Language,
		Theme:       s.Theme,
	}
}
