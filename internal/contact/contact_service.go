package contact

import (
	"context"
	"io"
	"time"

	contacterrors "go-smbops/internal/contact/errors"
	"go-smbops/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, callerID string, req ContactRequest) (ContactResponse, error)
	List(ctx context.Context, q ListContactsQuery) ([]ContactResponse, error)
	Update(ctx context.Context, id string, req ContactRequest) (ContactResponse, error)
	Delete(ctx context.Context, id string) error
	AddInteraction(ctx context.Context, id, callerID string, req InteractionRequest) error
	Import(ctx context.Context, callerID string, data []byte) (ImportResult, error)
	Export(ctx context.Context, w io.Writer) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("contact.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contact.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, callerID string, req ContactRequest) (ContactResponse, error) {
	now := s.now().UTC()
	c := &Contact{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CompanyID:    req.CompanyID,
		CompanyName:  req.CompanyName,
		Status:       statusOrDefault(req.Status),
		Notes:        req.Notes,
		Interactions: []Interaction{},
		CreatedBy:    callerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to create contact", zap.Error(err))
		return ContactResponse{}, err
	}

	return MapToResponse(c), nil
}

func (s *service) List(ctx context.Context, q ListContactsQuery) ([]ContactResponse, error) {
	contacts, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	res := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		res = append(res, MapToResponse(&contacts[i]))
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, req ContactRequest) (ContactResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ContactResponse{}, contacterrors.ErrInvalidContactID
	}

	req.Status = statusOrDefault(req.Status)
	matched, err := s.repo.Update(ctx, uid, req, s.now().UTC())
	if err != nil {
		return ContactResponse{}, err
	}
	if matched == 0 {
		return ContactResponse{}, contacterrors.ErrContactNotFound
	}

	return ContactResponse{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CompanyID:   req.CompanyID,
		CompanyName: req.CompanyName,
		Status:      req.Status,
		Notes:       req.Notes,
	}, nil
}

// Delete is a no-op when the contact does not exist.
func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return contacterrors.ErrInvalidContactID
	}
	return s.repo.Delete(ctx, uid)
}

func (s *service) AddInteraction(ctx context.Context, id, callerID string, req InteractionRequest) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return contacterrors.ErrInvalidContactID
	}

	date := s.now().UTC()
	if req.Date != nil {
		date = req.Date.UTC()
	}

	matched, err := s.repo.AppendInteraction(ctx, uid, Interaction{
		Type:    req.Type,
		Content: req.Content,
		Date:    date,
		UserID:  &callerID,
	})
	if err != nil {
		return err
	}
	if matched == 0 {
		return contacterrors.ErrContactNotFound
	}
	return nil
}

// Import inserts one contact per CSV row that has a name.
func (s *service) Import(ctx context.Context, callerID string, data []byte) (ImportResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rows, err := ParseCSV(data)
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	for _, row := range rows {
		if row.Name == "" {
			continue
		}

		now := s.now().UTC()
		c := &Contact{
			ID:           uuid.New(),
			Name:         row.Name,
			Email:        optional(row.Email),
			Phone:        optional(row.Phone),
			CompanyName:  optional(row.Company),
			Status:       NormalizeStatus(row.Status),
			Notes:        optional(row.Notes),
			Interactions: []Interaction{},
			CreatedBy:    callerID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.repo.Create(ctx, c); err != nil {
			log.Error("contact import stopped", zap.Int("inserted", result.Inserted), zap.Error(err))
			return result, err
		}
		result.Inserted++
	}

	log.Info("contacts imported", zap.Int("rows", len(rows)), zap.Int("inserted", result.Inserted))
	return result, nil
}

func (s *service) Export(ctx context.Context, w io.Writer) error {
	cw := newCSVWriter(w)
	if err := cw.writeHeader(); err != nil {
		return err
	}

	err := s.repo.FindInBatches(ctx, func(batch []Contact) error {
		for i := range batch {
			if err := cw.writeContact(&batch[i]); err != nil {
				return err
			}
		}
		return cw.flush()
	})
	if err != nil {
		return err
	}

	return cw.flush()
}

func statusOrDefault(status string) string {
	if status == "" {
		return StatusProspect
	}
	return status
}

func MapToResponse(c *Contact) ContactResponse {
	interactions := []Interaction(c.Interactions)
	if interactions == nil {
		interactions = []Interaction{}
	}
	createdAt := c.CreatedAt
	updatedAt := c.UpdatedAt

	return ContactResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		CompanyID:    c.CompanyID,
		CompanyName:  c.CompanyName,
		Status:       c.Status,
		Notes:        c.Notes,
		Interactions: interactions,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    &createdAt,
		UpdatedAt:    &updatedAt,
	}
}
