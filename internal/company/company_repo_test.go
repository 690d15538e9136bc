package company_test

import (
	"context"
	"regexp"
	"testing"

	"go-smbops/internal/company"
	"go-smbops/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRepository_List(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := company.NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "companies" WHERE name ILIKE $1 ORDER BY created_at DESC LIMIT`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(uuid.NewString(), "Acme"))

	res, err := repo.List(context.Background(), "ac", 0)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := company.NewRepository(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "companies" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	matched, err := repo.Update(context.Background(), id, company.CompanyRequest{Name: "Acme"})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), matched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := company.NewRepository(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "companies" WHERE id = $1`)).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
