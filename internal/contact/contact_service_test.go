package contact_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"go-smbops/internal/contact"
	contacterrors "go-smbops/internal/contact/errors"
	contactMock "go-smbops/internal/contact/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func setupService(t *testing.T) (*contactMock.MockRepository, contact.Service) {
	ctrl := gomock.NewController(t)
	repo := contactMock.NewMockRepository(ctrl)
	return repo, contact.NewService(repo, zap.NewNop())
}

func TestService_Create(t *testing.T) {
	repo, svc := setupService(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *contact.Contact) error {
			assert.Equal(t, contact.StatusProspect, c.Status)
			assert.Empty(t, c.Interactions)
			assert.NotNil(t, c.Interactions)
			assert.Equal(t, "u-1", c.CreatedBy)
			return nil
		})

	res, err := svc.Create(context.Background(), "u-1", contact.ContactRequest{Name: "Ada", Email: strPtr("ada@example.com")})

	assert.NoError(t, err)
	assert.Equal(t, "Ada", res.Name)
	assert.Equal(t, contact.StatusProspect, res.Status)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success defaults status", func(t *testing.T) {
		repo, svc := setupService(t)

		repo.EXPECT().
			Update(gomock.Any(), id, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req contact.ContactRequest, at time.Time) (int64, error) {
				assert.Equal(t, contact.StatusProspect, req.Status)
				assert.False(t, at.IsZero())
				return 1, nil
			})

		res, err := svc.Update(ctx, id.String(), contact.ContactRequest{Name: "Ada"})

		assert.NoError(t, err)
		assert.Equal(t, id.String(), res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupService(t)

		repo.EXPECT().Update(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := svc.Update(ctx, id.String(), contact.ContactRequest{Name: "Ada"})

		assert.ErrorIs(t, err, contacterrors.ErrContactNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.Update(ctx, "bad", contact.ContactRequest{Name: "Ada"})

		assert.ErrorIs(t, err, contacterrors.ErrInvalidContactID)
	})
}

func TestService_AddInteraction(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("stamps caller and date", func(t *testing.T) {
		repo, svc := setupService(t)

		repo.EXPECT().
			AppendInteraction(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, it contact.Interaction) (int64, error) {
				assert.Equal(t, "call", it.Type)
				assert.Equal(t, "u-1", *it.UserID)
				assert.False(t, it.Date.IsZero())
				return 1, nil
			})

		err := svc.AddInteraction(ctx, id.String(), "u-1", contact.InteractionRequest{Type: "call", Content: "intro"})

		assert.NoError(t, err)
	})

	t.Run("keeps supplied date", func(t *testing.T) {
		repo, svc := setupService(t)
		when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		repo.EXPECT().
			AppendInteraction(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, it contact.Interaction) (int64, error) {
				assert.True(t, when.Equal(it.Date))
				return 1, nil
			})

		err := svc.AddInteraction(ctx, id.String(), "u-1", contact.InteractionRequest{Type: "note", Content: "x", Date: &when})

		assert.NoError(t, err)
	})

	t.Run("contact absent", func(t *testing.T) {
		repo, svc := setupService(t)

		repo.EXPECT().AppendInteraction(gomock.Any(), id, gomock.Any()).Return(int64(0), nil)

		err := svc.AddInteraction(ctx, id.String(), "u-1", contact.InteractionRequest{Type: "email", Content: "hi"})

		assert.ErrorIs(t, err, contacterrors.ErrContactNotFound)
	})
}

func TestService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("rows without name are skipped", func(t *testing.T) {
		repo, svc := setupService(t)
		data := []byte("name,email,status\nAda,ada@example.com,client\n,ghost@example.com,Client\nBob,,weird\n")

		var created []*contact.Contact
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *contact.Contact) error {
				created = append(created, c)
				return nil
			}).
			Times(2)

		res, err := svc.Import(ctx, "u-1", data)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Inserted)
		assert.Equal(t, contact.StatusClient, created[0].Status)
		assert.Equal(t, contact.StatusProspect, created[1].Status)
		assert.Nil(t, created[1].Email)
	})

	t.Run("invalid encoding", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.Import(ctx, "u-1", []byte{0xff, 0xfe, 0xfd})

		assert.ErrorIs(t, err, contacterrors.ErrInvalidEncoding)
	})

	t.Run("insert failure reports progress", func(t *testing.T) {
		repo, svc := setupService(t)

		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down")),
		)

		res, err := svc.Import(ctx, "u-1", []byte("name\nAda\nBob\nCy\n"))

		assert.Error(t, err)
		assert.Equal(t, 1, res.Inserted)
	})
}

func TestService_Export(t *testing.T) {
	t.Run("writes header and every batch", func(t *testing.T) {
		repo, svc := setupService(t)

		repo.EXPECT().
			FindInBatches(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func([]contact.Contact) error) error {
				if err := fn([]contact.Contact{{Name: "Ada", Email: strPtr("ada@example.com"), CompanyName: strPtr("Acme"), Status: "Client"}}); err != nil {
					return err
				}
				return fn([]contact.Contact{{Name: "Bob, Jr.", Status: "Prospect", Notes: strPtr("met at fair")}})
			})

		var buf bytes.Buffer
		err := svc.Export(context.Background(), &buf)

		assert.NoError(t, err)
		assert.Equal(t,
			"name,email,phone,company,status,notes\n"+
				"Ada,ada@example.com,,Acme,Client,\n"+
				"\"Bob, Jr.\",,,,Prospect,met at fair\n",
			buf.String())
	})

	t.Run("repository error", func(t *testing.T) {
		repo, svc := setupService(t)

		repo.EXPECT().FindInBatches(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		var buf bytes.Buffer
		assert.Error(t, svc.Export(context.Background(), &buf))
	})
}
