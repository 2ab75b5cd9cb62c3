package leavecomment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/leavecomment"
	leavecommenterrors "github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/leavecomment/errors"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentIDs(comments []leavecomment.LeaveRequestComment) []int64 {
	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	return ids
}

func int64Ptr(v int64) *int64 { return &v }

func TestRepository_FindLeaveRequestByID(t *testing.T) {
	repo := leavecomment.NewRepository(testdb.OpenSeeded(t))
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		lr, err := repo.FindLeaveRequestByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, lr)
		assert.Equal(t, testdb.OwnerEmpNumber, lr.EmpNumber)
		assert.Equal(t, "2010-08-30", lr.DateApplied.Format("2006-01-02"))
	})

	t.Run("missing id returns nil", func(t *testing.T) {
		lr, err := repo.FindLeaveRequestByID(ctx, testdb.MissingLeaveRequestID)
		assert.NoError(t, err)
		assert.Nil(t, lr)
	})
}

func TestRepository_Search(t *testing.T) {
	repo := leavecomment.NewRepository(testdb.OpenSeeded(t))
	ctx := context.Background()

	t.Run("default order is oldest first with id tie-break", func(t *testing.T) {
		comments, err := repo.Search(ctx, leavecomment.NewSearchFilterParams(1))
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 4, 1, 3}, commentIDs(comments))
	})

	t.Run("repeated search returns the same order", func(t *testing.T) {
		params := leavecomment.NewSearchFilterParams(1)
		first, err := repo.Search(ctx, params)
		require.NoError(t, err)
		second, err := repo.Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, commentIDs(first), commentIDs(second))
	})

	t.Run("created at descending keeps id ascending for ties", func(t *testing.T) {
		params := leavecomment.NewSearchFilterParams(1)
		params.SortOrder = leavecomment.SortOrderDesc
		comments, err := repo.Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 1, 2, 4}, commentIDs(comments))
	})

	t.Run("sort by id descending", func(t *testing.T) {
		params := leavecomment.NewSearchFilterParams(1)
		params.SortField = leavecomment.SortFieldID
		params.SortOrder = leavecomment.SortOrderDesc
		comments, err := repo.Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 3, 2, 1}, commentIDs(comments))
	})

	t.Run("offset and limit", func(t *testing.T) {
		params := leavecomment.NewSearchFilterParams(1)
		params.Offset = 1
		params.Limit = 2
		comments, err := repo.Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 1}, commentIDs(comments))
	})

	t.Run("offset without limit", func(t *testing.T) {
		params := leavecomment.NewSearchFilterParams(1)
		params.Offset = 3
		params.Limit = 0
		comments, err := repo.Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, commentIDs(comments))
	})

	t.Run("empty leave request", func(t *testing.T) {
		params := leavecomment.NewSearchFilterParams(testdb.EmptyLeaveRequestID)
		comments, err := repo.Search(ctx, params)
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)

		total, err := repo.Count(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("creator relations are loaded", func(t *testing.T) {
		comments, err := repo.Search(ctx, leavecomment.NewSearchFilterParams(1))
		require.NoError(t, err)

		byID := map[int64]leavecomment.LeaveRequestComment{}
		for _, c := range comments {
			byID[c.ID] = c
		}
		require.NotNil(t, byID[1].CreatedByEmployee)
		assert.Equal(t, "Kayla", byID[1].CreatedByEmployee.FirstName)
		require.NotNil(t, byID[1].CreatedByUser)
		assert.Equal(t, "admin", byID[1].CreatedByUser.UserName)
	})

	t.Run("comment by user without employee", func(t *testing.T) {
		comments, err := repo.Search(ctx, leavecomment.NewSearchFilterParams(4))
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Nil(t, comments[0].CreatedByEmpNumber)
		assert.Nil(t, comments[0].CreatedByEmployee)
		require.NotNil(t, comments[0].CreatedByUser)
		assert.Equal(t, "system", comments[0].CreatedByUser.UserName)
	})
}

func TestRepository_Count(t *testing.T) {
	repo := leavecomment.NewRepository(testdb.OpenSeeded(t))
	ctx := context.Background()

	params := leavecomment.NewSearchFilterParams(1)
	params.Limit = 2
	params.Offset = 1

	total, err := repo.Count(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	params.Limit = 0
	params.Offset = 0
	all, err := repo.Search(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, total, int64(len(all)))
}

func TestRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("success - stored comment is listed unchanged", func(t *testing.T) {
		repo := leavecomment.NewRepository(testdb.OpenSeeded(t))
		createdAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

		saved, err := repo.Save(ctx, leavecomment.NewLeaveRequestComment(
			1, "Back on Monday", createdAt, testdb.SupervisorUserID, int64Ptr(testdb.SupervisorEmpNumber),
		))
		require.NoError(t, err)
		assert.Equal(t, int64(8), saved.ID)
		require.NotNil(t, saved.CreatedByEmployee)
		assert.Equal(t, "Renukshan", saved.CreatedByEmployee.FirstName)

		params := leavecomment.NewSearchFilterParams(1)
		comments, err := repo.Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 4, 1, 3, 8}, commentIDs(comments))

		listed := comments[4]
		assert.Equal(t, "Back on Monday", listed.Comment)
		assert.True(t, createdAt.Equal(listed.CreatedAt))
		assert.Equal(t, testdb.SupervisorUserID, listed.CreatedByUserID)
		require.NotNil(t, listed.CreatedByEmpNumber)
		assert.Equal(t, testdb.SupervisorEmpNumber, *listed.CreatedByEmpNumber)
	})

	t.Run("negative - missing leave request", func(t *testing.T) {
		repo := leavecomment.NewRepository(testdb.OpenSeeded(t))

		saved, err := repo.Save(ctx, leavecomment.NewLeaveRequestComment(
			999, "orphan", time.Now().UTC(), testdb.AdminUserID, nil,
		))
		assert.Nil(t, saved)
		assert.True(t, errors.Is(err, leavecommenterrors.ErrLeaveCommentPersistFailed))
	})
}
