package leavecomment

import (
	"errors"

	leavecommenterrors "github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/leavecomment/errors"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return leavecommenterrors.ErrLeaveCommentReferenceMissing.WithCause(err)
	}

	return leavecommenterrors.ErrLeaveCommentPersistFailed.WithCause(err)
}
