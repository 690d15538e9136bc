package task_test

import (
	"context"
	"regexp"
	"testing"

	"go-smbops/internal/shared/testutil"
	"go-smbops/internal/task"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRepository_List(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := task.NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tasks" WHERE project_id = $1 AND status = $2 ORDER BY created_at DESC`)).
		WithArgs("p-1", "In Progress").
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "title", "status"}).
			AddRow(uuid.NewString(), "p-1", "Wireframes", "In Progress"))

	res, err := repo.List(context.Background(), task.ListTasksQuery{ProjectID: "p-1", Status: "In Progress"})

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByStatus(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := task.NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "tasks" WHERE status IN ($1,$2)`)).
		WithArgs("To Do", "In Progress").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.CountByStatus(context.Background(), task.PendingStatuses)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
