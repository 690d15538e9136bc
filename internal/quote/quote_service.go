package quote

import (
	"context"
	"errors"
	"time"

	"go-smbops/internal/auth"
	quoteerrors "go-smbops/internal/quote/errors"
	"go-smbops/internal/shared/contextutil"
	"go-smbops/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ShareTokenBytes = 16
	quotaPeriod     = "2006-01"
)

//go:generate mockgen -source=quote_service.go -destination=mock/quote_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, callerID string, req QuoteRequest) (QuoteResponse, error)
	List(ctx context.Context, callerID string, q ListQuotesQuery) ([]QuoteResponse, error)
	Get(ctx context.Context, id, callerID string) (QuoteResponse, error)
	Update(ctx context.Context, id, callerID string, req QuoteRequest) (QuoteResponse, error)
	Delete(ctx context.Context, id, callerID string) error
	GetPublic(ctx context.Context, token string) (QuoteResponse, error)
}

type Config struct {
	FreeQuotesPerMonth int64
}

// Metrics receives quote lifecycle events. obs.Metrics satisfies it.
type Metrics interface {
	QuoteCreated()
	QuotaRejected()
}

type noopMetrics struct{}

func (noopMetrics) QuoteCreated()  {}
func (noopMetrics) QuotaRejected() {}

type service struct {
	db       *gorm.DB
	repo     Repository
	counters counter.Repository
	cfg      Config
	metrics  Metrics
	now      func() time.Time
	newToken func() (string, error)
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	counters counter.Repository,
	cfg Config,
	metrics Metrics,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("quote.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("quote.service")
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &service{
		db:       db,
		repo:     repo,
		counters: counters,
		cfg:      cfg,
		metrics:  metrics,
		now:      time.Now,
		newToken: func() (string, error) { return auth.NewToken(ShareTokenBytes) },
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, callerID string, req QuoteRequest) (QuoteResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	now := s.now().UTC()

	token, err := s.newToken()
	if err != nil {
		log.Error("failed to mint share token", zap.Error(err))
		return QuoteResponse{}, err
	}

	items := itemsFromRequest(req.Items)
	q := &Quote{
		ID:          uuid.New(),
		ContactID:   req.ContactID,
		CompanyID:   req.CompanyID,
		CompanyName: req.CompanyName,
		Items:       items,
		Currency:    currencyOrDefault(req.Currency),
		Status:      statusOrDefault(req.Status),
		Total:       ComputeTotal(items),
		PublicToken: token,
		CreatedBy:   callerID,
		CreatedAt:   now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, ok, err := s.counters.WithTx(tx).IncrementWithin(ctx, "quote:"+callerID, now.Format(quotaPeriod), s.cfg.FreeQuotesPerMonth)
		if err != nil {
			return err
		}
		if !ok {
			return quoteerrors.QuotaExceeded(s.cfg.FreeQuotesPerMonth)
		}
		return s.repo.WithTx(tx).Create(ctx, q)
	})
	if err != nil {
		if errors.Is(err, quoteerrors.ErrQuotaExceeded) {
			s.metrics.QuotaRejected()
			log.Info("quote quota exhausted", zap.String("user_id", callerID))
			return QuoteResponse{}, err
		}
		log.Error("failed to create quote", zap.Error(err))
		return QuoteResponse{}, err
	}

	s.metrics.QuoteCreated()
	return MapToResponse(q), nil
}

func (s *service) List(ctx context.Context, callerID string, q ListQuotesQuery) ([]QuoteResponse, error) {
	quotes, err := s.repo.ListOwned(ctx, callerID, q)
	if err != nil {
		return nil, err
	}

	res := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		res = append(res, MapToResponse(&quotes[i]))
	}
	return res, nil
}

func (s *service) Get(ctx context.Context, id, callerID string) (QuoteResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return QuoteResponse{}, quoteerrors.ErrInvalidQuoteID
	}

	q, err := s.repo.GetOwned(ctx, uid, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuoteResponse{}, quoteerrors.ErrQuoteNotFound
		}
		return QuoteResponse{}, err
	}
	return MapToResponse(q), nil
}

func (s *service) Update(ctx context.Context, id, callerID string, req QuoteRequest) (QuoteResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return QuoteResponse{}, quoteerrors.ErrInvalidQuoteID
	}

	items := itemsFromRequest(req.Items)
	changes := &Quote{
		ContactID:   req.ContactID,
		CompanyID:   req.CompanyID,
		CompanyName: req.CompanyName,
		Items:       items,
		Currency:    currencyOrDefault(req.Currency),
		Status:      statusOrDefault(req.Status),
		Total:       ComputeTotal(items),
	}

	affected, err := s.repo.UpdateOwned(ctx, uid, callerID, changes)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to update quote", zap.Error(err))
		return QuoteResponse{}, err
	}
	if affected == 0 {
		return QuoteResponse{}, quoteerrors.ErrQuoteNotFound
	}

	updated, err := s.repo.GetOwned(ctx, uid, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuoteResponse{}, quoteerrors.ErrQuoteNotFound
		}
		return QuoteResponse{}, err
	}
	return MapToResponse(updated), nil
}

// Delete does not hand the quota slot back.
func (s *service) Delete(ctx context.Context, id, callerID string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return quoteerrors.ErrInvalidQuoteID
	}
	return s.repo.DeleteOwned(ctx, uid, callerID)
}

func (s *service) GetPublic(ctx context.Context, token string) (QuoteResponse, error) {
	if token == "" {
		return QuoteResponse{}, quoteerrors.ErrPublicQuoteNotFound
	}

	q, err := s.repo.GetByPublicToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuoteResponse{}, quoteerrors.ErrPublicQuoteNotFound
		}
		return QuoteResponse{}, err
	}
	return MapToResponse(q), nil
}

func MapToResponse(q *Quote) QuoteResponse {
	items := []Item(q.Items)
	if items == nil {
		items = []Item{}
	}
	res := QuoteResponse{
		ID:          q.ID.String(),
		ContactID:   q.ContactID,
		CompanyID:   q.CompanyID,
		CompanyName: q.CompanyName,
		Items:       items,
		Currency:    q.Currency,
		Status:      q.Status,
		Total:       q.Total,
		PublicToken: q.PublicToken,
		CreatedBy:   q.CreatedBy,
	}
	if !q.CreatedAt.IsZero() {
		t := q.CreatedAt
		res.CreatedAt = &t
	}
	return res
}

func currencyOrDefault(c string) string {
	if c == "" {
		return DefaultCurrency
	}
	return c
}

func statusOrDefault(s string) string {
	if s == "" {
		return StatusDraft
	}
	return s
}
