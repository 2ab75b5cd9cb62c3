package notification

import (
	"context"
	"fmt"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/employee"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/events"

	"go.uber.org/zap"
)

const leaveCommentSubject = "New comment on your leave request"

// LeaveCommentNotifier tells the owner of a leave request that someone else commented on it.
type LeaveCommentNotifier struct {
	employees employee.Repository
	notifier  Notifier
	logger    *zap.Logger
}

func NewLeaveCommentNotifier(employees employee.Repository, notifier Notifier, logger ...*zap.Logger) *LeaveCommentNotifier {
	l := zap.L().Named("notification.leave_comment")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.leave_comment")
	}
	return &LeaveCommentNotifier{employees: employees, notifier: notifier, logger: l}
}

// NotifyCommentAdded returns nil without sending when the owner wrote the comment,
// no longer exists, or has no work email.
func (n *LeaveCommentNotifier) NotifyCommentAdded(ctx context.Context, ev events.LeaveCommentAddedEvent) error {
	if ev.CreatedByEmpNumber != nil && *ev.CreatedByEmpNumber == ev.OwnerEmpNumber {
		n.logger.Debug("skip notification for own comment", zap.Int64("comment_id", ev.CommentID))
		return nil
	}

	owner, err := n.employees.FindByEmpNumber(ctx, ev.OwnerEmpNumber)
	if err != nil {
		return err
	}
	if owner == nil || owner.WorkEmail == nil || *owner.WorkEmail == "" {
		n.logger.Debug("skip notification, owner has no email",
			zap.Int64("comment_id", ev.CommentID),
			zap.Int64("owner_emp_number", ev.OwnerEmpNumber),
		)
		return nil
	}

	author := "An administrator"
	if ev.CreatedByEmpNumber != nil {
		e, err := n.employees.FindByEmpNumber(ctx, *ev.CreatedByEmpNumber)
		if err != nil {
			return err
		}
		if e != nil {
			author = e.FullName()
		}
	}

	body := fmt.Sprintf(
		"Hi %s,\n\n%s commented on your leave request #%d:\n\n%s\n",
		owner.FirstName, author, ev.LeaveRequestID, ev.Comment,
	)

	return n.notifier.Send(ctx, Message{
		To:      *owner.WorkEmail,
		Subject: leaveCommentSubject,
		Body:    body,
	})
}
