package user_test

import (
	"context"
	"errors"
	"testing"

	"go-smbops/internal/user"
	usererrors "go-smbops/internal/user/errors"
	userMock "go-smbops/internal/user/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupService(t *testing.T) (*userMock.MockRepository, user.Service) {
	ctrl := gomock.NewController(t)
	mockRepo := userMock.NewMockRepository(ctrl)
	return mockRepo, user.NewService(mockRepo, zap.NewNop())
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	req := user.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret123",
	}

	t.Run("success defaults role to Admin", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().ExistsByEmail(gomock.Any(), req.Email).Return(false, nil)
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.NotEqual(t, uuid.Nil, u.ID)
				assert.Equal(t, "Admin", u.Role)
				assert.True(t, u.IsActive)
				assert.NotEqual(t, req.Password, u.Password)
				assert.True(t, user.CheckPassword(u.Password, req.Password))
				return nil
			})

		res, err := svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "ada@example.com", res.Email)
		assert.Equal(t, "Admin", res.Role)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("keeps explicit role", func(t *testing.T) {
		mockRepo, svc := setupService(t)
		employeeReq := req
		employeeReq.Role = "Employee"

		mockRepo.EXPECT().ExistsByEmail(gomock.Any(), req.Email).Return(false, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(ctx, employeeReq)

		assert.NoError(t, err)
		assert.Equal(t, "Employee", res.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().ExistsByEmail(gomock.Any(), req.Email).Return(true, nil)

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, usererrors.ErrEmailAlreadyRegistered)
	})

	t.Run("unique violation on insert maps to conflict", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().ExistsByEmail(gomock.Any(), req.Email).Return(false, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, usererrors.ErrEmailAlreadyRegistered)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().ExistsByEmail(gomock.Any(), req.Email).Return(false, errors.New("db down"))

		_, err := svc.Create(ctx, req)

		assert.EqualError(t, err, "db down")
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().FindAll(gomock.Any()).Return([]user.User{
			{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Role: "Admin"},
			{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", Role: "Employee"},
		}, nil)

		res, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "Employee", res[1].Role)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))

		res, err := svc.List(ctx)

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestPassword(t *testing.T) {
	hashed, err := user.HashPassword("secret123")

	assert.NoError(t, err)
	assert.True(t, user.CheckPassword(hashed, "secret123"))
	assert.False(t, user.CheckPassword(hashed, "wrong"))
}
