package project_test

import (
	"context"
	"testing"

	"go-smbops/internal/project"
	projecterrors "go-smbops/internal/project/errors"
	projectMock "go-smbops/internal/project/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupService(t *testing.T) (*projectMock.MockRepository, project.Service) {
	ctrl := gomock.NewController(t)
	repo := projectMock.NewMockRepository(ctrl)
	return repo, project.NewService(repo, zap.NewNop())
}

func TestService_Create_OwnedByCaller(t *testing.T) {
	repo, svc := setupService(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *project.Project) error {
			assert.Equal(t, "u-1", p.OwnerID)
			assert.NotEqual(t, uuid.Nil, p.ID)
			return nil
		})

	res, err := svc.Create(context.Background(), "u-1", project.ProjectRequest{Name: "Website"})

	assert.NoError(t, err)
	assert.Equal(t, "u-1", res.OwnerID)
	assert.NotNil(t, res.CreatedAt)
}

func TestService_List(t *testing.T) {
	repo, svc := setupService(t)

	repo.EXPECT().ListOwned(gomock.Any(), "u-1").Return([]project.Project{
		{ID: uuid.New(), Name: "B", OwnerID: "u-1"},
		{ID: uuid.New(), Name: "A", OwnerID: "u-1"},
	}, nil)

	res, err := svc.List(context.Background(), "u-1")

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "B", res[0].Name)
}

func TestService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("project of another user", func(t *testing.T) {
		repo, svc := setupService(t)

		repo.EXPECT().UpdateOwned(gomock.Any(), id, "u-2", gomock.Any()).Return(int64(0), nil)

		_, err := svc.Update(context.Background(), id.String(), "u-2", project.ProjectRequest{Name: "X"})

		assert.ErrorIs(t, err, projecterrors.ErrProjectNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.Update(context.Background(), "abc", "u-1", project.ProjectRequest{Name: "X"})

		assert.ErrorIs(t, err, projecterrors.ErrInvalidProjectID)
	})
}

func TestService_Delete(t *testing.T) {
	repo, svc := setupService(t)
	id := uuid.New()

	repo.EXPECT().DeleteOwned(gomock.Any(), id, "u-1").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id.String(), "u-1"))
}
