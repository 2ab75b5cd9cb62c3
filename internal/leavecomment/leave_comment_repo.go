package leavecomment

import (
	"context"
	"errors"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/leave"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_comment_repo.go -destination=mock/leave_comment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindLeaveRequestByID(ctx context.Context, id int64) (*leave.LeaveRequest, error)
	Search(ctx context.Context, params SearchFilterParams) ([]LeaveRequestComment, error)
	Count(ctx context.Context, params SearchFilterParams) (int64, error)
	Save(ctx context.Context, comment *LeaveRequestComment) (*LeaveRequestComment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// FindLeaveRequestByID returns nil without an error when the leave request does not exist.
func (r *repository) FindLeaveRequestByID(ctx context.Context, id int64) (*leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := r.db.WithContext(ctx).First(&lr, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &lr, nil
}

func (r *repository) filtered(ctx context.Context, params SearchFilterParams) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&LeaveRequestComment{}).
		Where("leave_request_comments.leave_request_id = ?", params.LeaveRequestID)
}

func (r *repository) Search(ctx context.Context, params SearchFilterParams) ([]LeaveRequestComment, error) {
	q := r.filtered(ctx, params).
		Preload("CreatedByEmployee").
		Preload("CreatedByUser")

	for _, o := range params.orderClauses() {
		q = q.Order(o)
	}
	if params.Limit > 0 {
		q = q.Limit(params.Limit)
	}
	if params.Offset > 0 {
		q = q.Offset(params.Offset)
	}

	comments := make([]LeaveRequestComment, 0)
	if err := q.Find(&comments).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return comments, nil
}

func (r *repository) Count(ctx context.Context, params SearchFilterParams) (int64, error) {
	var total int64
	if err := r.filtered(ctx, params).Count(&total).Error; err != nil {
		return 0, mapRepositoryError(err)
	}
	return total, nil
}

// Save inserts the comment, or updates it when the id is set, and returns the stored
// row with its creator relations loaded.
func (r *repository) Save(ctx context.Context, comment *LeaveRequestComment) (*LeaveRequestComment, error) {
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Save(comment).Error; err != nil {
		return nil, mapRepositoryError(err)
	}

	var stored LeaveRequestComment
	err := db.
		Preload("CreatedByEmployee").
		Preload("CreatedByUser").
		First(&stored, "id = ?", comment.ID).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &stored, nil
}
