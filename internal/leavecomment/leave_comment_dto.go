package leavecomment

type CreateLeaveCommentRequest struct {
	Comment string `json:"comment" validate:"required,max=255"`

	// TypeErrors names body fields sent with the wrong JSON type. They are
	// reported after the access check, like every other rule.
	TypeErrors []string `json:"-"`
}

// ListLeaveCommentQuery keeps the raw query values; the service validates and
// converts them after the access check.
type ListLeaveCommentQuery struct {
	SortField string `form:"sortField" validate:"omitempty,oneof=leaveRequestComment.createdAt leaveRequestComment.id"`
	SortOrder string `form:"sortOrder" validate:"omitempty,oneof=ASC DESC"`
	Offset    string `form:"offset" validate:"omitempty,number"`
	Limit     string `form:"limit" validate:"omitempty,number"`
}

type LeaveRequestRef struct {
	ID int64 `json:"id"`
}

type CommentEmployeeResponse struct {
	EmpNumber     int64   `json:"emp_number"`
	EmployeeID    *string `json:"employee_id"`
	FirstName     string  `json:"first_name"`
	MiddleName    string  `json:"middle_name"`
	LastName      string  `json:"last_name"`
	TerminationID *int64  `json:"termination_id"`
}

type CommentUserResponse struct {
	ID       int64  `json:"id"`
	UserName string `json:"user_name"`
}

type LeaveCommentResponse struct {
	ID                int64                    `json:"id"`
	LeaveRequest      LeaveRequestRef          `json:"leave_request"`
	Comment           string                   `json:"comment"`
	Date              string                   `json:"date"`
	Time              string                   `json:"time"`
	CreatedAt         string                   `json:"created_at"`
	CreatedByEmployee *CommentEmployeeResponse `json:"created_by_employee"`
	CreatedByUser     CommentUserResponse      `json:"created_by_user"`
}

type ListResult struct {
	Items  []LeaveCommentResponse
	Total  int64
	Offset int
	Limit  int
}
