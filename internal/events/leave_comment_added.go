package events

import "time"

const (
	LeaveCommentAddedTopic     = "hr.leave.comment.v1"
	LeaveCommentAddedEventType = "leave_request.comment_added"
)

// LeaveCommentAddedEvent is published after a comment is stored on a leave request.
type LeaveCommentAddedEvent struct {
	EventType          string    `json:"event_type"`
	CommentID          int64     `json:"comment_id"`
	LeaveRequestID     int64     `json:"leave_request_id"`
	OwnerEmpNumber     int64     `json:"owner_emp_number"`
	Comment            string    `json:"comment"`
	CreatedByUserID    int64     `json:"created_by_user_id"`
	CreatedByEmpNumber *int64    `json:"created_by_emp_number,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}
