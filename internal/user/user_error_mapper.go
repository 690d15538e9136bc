package user

import (
	"errors"
	"strings"

	usererrors "go-smbops/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usererrors.ErrEmailAlreadyRegistered
	}

	if strings.Contains(strings.ToLower(err.Error()), "uq_users_email") {
		return usererrors.ErrEmailAlreadyRegistered
	}

	return err
}
