package leavecomment

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/events"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/leave"
	leavecommenterrors "github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/leavecomment/errors"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/messaging/kafka"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/rbac"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/apperror"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/contextutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const aggregateLeaveRequestComment = "leave_request_comment"

//go:generate mockgen -source=leave_comment_service.go -destination=mock/leave_comment_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, principal contextutil.Principal, leaveRequestID int64, q ListLeaveCommentQuery) (ListResult, error)
	Create(ctx context.Context, principal contextutil.Principal, leaveRequestID int64, req CreateLeaveCommentRequest) (LeaveCommentResponse, error)
	Delete(ctx context.Context, principal contextutil.Principal, leaveRequestID int64) error
}

type service struct {
	db       *gorm.DB
	repo     Repository
	access   rbac.AccessChecker
	outbox   kafka.OutboxRepository
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, access rbac.AccessChecker, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, access, nil, time.Now, logger...)
}

// NewServiceWithOutbox also queues a comment-added event with every stored comment.
// now supplies comment timestamps.
func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	access rbac.AccessChecker,
	outboxRepo kafka.OutboxRepository,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave_comment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave_comment.service")
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		db:       db,
		repo:     repo,
		access:   access,
		outbox:   outboxRepo,
		validate: apperror.NewValidator(),
		now:      now,
		logger:   l,
	}
}

// authorize loads the leave request and checks the principal may see it.
// Missing requests are reported before access is evaluated.
func (s *service) authorize(ctx context.Context, p contextutil.Principal, leaveRequestID int64) (*leave.LeaveRequest, error) {
	lr, err := s.repo.FindLeaveRequestByID(ctx, leaveRequestID)
	if err != nil {
		s.logger.Error("find leave request failed", zap.Int64("leave_request_id", leaveRequestID), zap.Error(err))
		return nil, err
	}
	if lr == nil {
		return nil, leavecommenterrors.ErrLeaveRequestNotFound
	}

	if s.access.IsSelf(p, lr.EmpNumber) {
		return lr, nil
	}

	ok, err := s.access.IsEmployeeAccessible(ctx, p, lr.EmpNumber)
	if err != nil {
		s.logger.Error("leave request access check failed",
			zap.Int64("leave_request_id", leaveRequestID),
			zap.Int64("user_id", p.UserID),
			zap.Error(err),
		)
		return nil, err
	}
	if !ok {
		s.logger.Warn("leave request access denied",
			zap.Int64("leave_request_id", leaveRequestID),
			zap.Int64("user_id", p.UserID),
		)
		return nil, leavecommenterrors.ErrLeaveRequestForbidden
	}
	return lr, nil
}

func (s *service) searchParams(leaveRequestID int64, q ListLeaveCommentQuery) (SearchFilterParams, error) {
	q.SortOrder = strings.ToUpper(strings.TrimSpace(q.SortOrder))
	if err := s.validate.Struct(q); err != nil {
		return SearchFilterParams{}, apperror.MapValidationError(err)
	}

	params := NewSearchFilterParams(leaveRequestID)
	if q.SortField != "" {
		params.SortField = q.SortField
	}
	if q.SortOrder != "" {
		params.SortOrder = q.SortOrder
	}
	if q.Offset != "" {
		offset, err := strconv.Atoi(q.Offset)
		if err != nil {
			return SearchFilterParams{}, apperror.FieldOutOfRange("Offset")
		}
		params.Offset = offset
	}
	if q.Limit != "" {
		limit, err := strconv.Atoi(q.Limit)
		if err != nil || limit > MaxLimit {
			return SearchFilterParams{}, apperror.FieldOutOfRange("Limit")
		}
		params.Limit = limit
	}
	return params, nil
}

func (s *service) List(
	ctx context.Context,
	p contextutil.Principal,
	leaveRequestID int64,
	q ListLeaveCommentQuery,
) (ListResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("list leave comments requested",
		zap.Int64("leave_request_id", leaveRequestID),
		zap.Int64("user_id", p.UserID),
	)

	if _, err := s.authorize(ctx, p, leaveRequestID); err != nil {
		return ListResult{}, err
	}

	params, err := s.searchParams(leaveRequestID, q)
	if err != nil {
		return ListResult{}, err
	}

	comments, err := s.repo.Search(ctx, params)
	if err != nil {
		log.Error("search leave comments failed", zap.Error(err))
		return ListResult{}, err
	}
	total, err := s.repo.Count(ctx, params)
	if err != nil {
		log.Error("count leave comments failed", zap.Error(err))
		return ListResult{}, err
	}

	return ListResult{
		Items:  mapToListResponse(comments),
		Total:  total,
		Offset: params.Offset,
		Limit:  params.Limit,
	}, nil
}

func (s *service) Create(
	ctx context.Context,
	p contextutil.Principal,
	leaveRequestID int64,
	req CreateLeaveCommentRequest,
) (LeaveCommentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create leave comment requested",
		zap.String("request_id", rid),
		zap.Int64("leave_request_id", leaveRequestID),
		zap.Int64("user_id", p.UserID),
	)

	lr, err := s.authorize(ctx, p, leaveRequestID)
	if err != nil {
		return LeaveCommentResponse{}, err
	}

	if len(req.TypeErrors) > 0 {
		return LeaveCommentResponse{}, apperror.InvalidJSONField(req.TypeErrors[0])
	}
	if err := s.validate.Struct(req); err != nil {
		return LeaveCommentResponse{}, apperror.MapValidationError(err)
	}

	var empNumber *int64
	if p.HasEmployee() {
		n := p.EmpNumber
		empNumber = &n
	}
	comment := NewLeaveRequestComment(leaveRequestID, req.Comment, s.now().UTC(), p.UserID, empNumber)

	var saved *LeaveRequestComment
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stored, err := s.repo.WithTx(tx).Save(ctx, comment)
		if err != nil {
			return err
		}
		saved = stored

		if s.outbox == nil {
			return nil
		}
		return s.queueCommentAdded(ctx, tx, rid, lr, stored)
	})
	if err != nil {
		log.Error("create leave comment persist failed",
			zap.String("request_id", rid),
			zap.Int64("leave_request_id", leaveRequestID),
			zap.Error(err),
		)
		return LeaveCommentResponse{}, mapRepositoryError(err)
	}

	log.Info("create leave comment success",
		zap.String("request_id", rid),
		zap.Int64("leave_request_id", leaveRequestID),
		zap.Int64("comment_id", saved.ID),
	)
	return mapToResponse(*saved), nil
}

func (s *service) queueCommentAdded(
	ctx context.Context,
	tx *gorm.DB,
	rid string,
	lr *leave.LeaveRequest,
	c *LeaveRequestComment,
) error {
	event := events.LeaveCommentAddedEvent{
		EventType:          events.LeaveCommentAddedEventType,
		CommentID:          c.ID,
		LeaveRequestID:     lr.ID,
		OwnerEmpNumber:     lr.EmpNumber,
		Comment:            c.Comment,
		CreatedByUserID:    c.CreatedByUserID,
		CreatedByEmpNumber: c.CreatedByEmpNumber,
		OccurredAt:         c.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: aggregateLeaveRequestComment,
		AggregateID:   strconv.FormatInt(c.ID, 10),
		EventType:     event.EventType,
		Topic:         events.LeaveCommentAddedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// Delete is not supported for comments; no lookup is made.
func (s *service) Delete(ctx context.Context, p contextutil.Principal, leaveRequestID int64) error {
	s.logger.Debug("delete leave comments rejected",
		zap.Int64("leave_request_id", leaveRequestID),
		zap.Int64("user_id", p.UserID),
	)
	return leavecommenterrors.ErrDeleteNotImplemented
}
