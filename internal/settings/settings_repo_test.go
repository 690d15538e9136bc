package settings_test

import (
	"context"
	"regexp"
	"testing"

	"go-smbops/internal/settings"
	"go-smbops/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRepository_Get(t *testing.T) {
	t.Run("no row yet", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := settings.NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "settings" WHERE key = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"key", "company_name", "language", "theme"}))

		s, err := repo.Get(context.Background())

		assert.NoError(t, err)
		assert.Nil(t, s)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stored row", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := settings.NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "settings" WHERE key = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"key", "company_name", "language", "theme"}).
				AddRow("default", "Acme", "en", "dark"))

		s, err := repo.Get(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "dark", s.Theme)
	})
}

func TestRepository_Upsert(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := settings.NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "settings"`) + `.*` + regexp.QuoteMeta(`ON CONFLICT ("key") DO UPDATE SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &settings.Settings{Language: "en", Theme: "light"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
