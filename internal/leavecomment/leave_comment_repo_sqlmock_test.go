package leavecomment_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/leavecomment"
	leavecommenterrors "github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/leavecomment/errors"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_PostgresFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign key violation on save", func(t *testing.T) {
		db, mock := newMockGormDB(t)
		repo := leavecomment.NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "leave_request_comments"`)).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_leave_request_comments_leave_request"})

		saved, err := repo.Save(ctx, leavecomment.NewLeaveRequestComment(42, "hello", time.Now().UTC(), 1, nil))

		assert.Nil(t, saved)
		assert.ErrorIs(t, err, leavecommenterrors.ErrLeaveCommentReferenceMissing)
		assert.Equal(t, apperror.CodePersistence, apperror.ToHTTP(err).Code)

		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connection failure on search", func(t *testing.T) {
		db, mock := newMockGormDB(t)
		repo := leavecomment.NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "leave_request_comments"`)).
			WillReturnError(errors.New("connection reset by peer"))

		comments, err := repo.Search(ctx, leavecomment.NewSearchFilterParams(1))

		assert.Nil(t, comments)
		assert.ErrorIs(t, err, leavecommenterrors.ErrLeaveCommentPersistFailed)
		assert.Equal(t, "Failed to store leave request comment", apperror.ToHTTP(err).Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connection failure on count", func(t *testing.T) {
		db, mock := newMockGormDB(t)
		repo := leavecomment.NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "leave_request_comments"`)).
			WillReturnError(errors.New("connection reset by peer"))

		total, err := repo.Count(ctx, leavecomment.NewSearchFilterParams(1))

		assert.Zero(t, total)
		assert.ErrorIs(t, err, leavecommenterrors.ErrLeaveCommentPersistFailed)
	})

	t.Run("leave request lookup", func(t *testing.T) {
		db, mock := newMockGormDB(t)
		repo := leavecomment.NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "leave_requests" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "emp_number"}))

		lr, err := repo.FindLeaveRequestByID(ctx, 6)

		require.NoError(t, err)
		assert.Nil(t, lr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
