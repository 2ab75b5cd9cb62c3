package leavecomment

import "time"

func mapToResponse(c LeaveRequestComment) LeaveCommentResponse {
	createdAt := c.CreatedAt.UTC()
	resp := LeaveCommentResponse{
		ID:           c.ID,
		LeaveRequest: LeaveRequestRef{ID: c.LeaveRequestID},
		Comment:      c.Comment,
		Date:         createdAt.Format("2006-01-02"),
		Time:         createdAt.Format("15:04"),
		CreatedAt:    createdAt.Format(time.RFC3339),
		CreatedByUser: CommentUserResponse{
			ID: c.CreatedByUserID,
		},
	}
	if c.CreatedByUser != nil {
		resp.CreatedByUser.UserName = c.CreatedByUser.UserName
	}
	if c.CreatedByEmployee != nil {
		resp.CreatedByEmployee = &CommentEmployeeResponse{
			EmpNumber:     c.CreatedByEmployee.EmpNumber,
			EmployeeID:    c.CreatedByEmployee.EmployeeID,
			FirstName:     c.CreatedByEmployee.FirstName,
			MiddleName:    c.CreatedByEmployee.MiddleName,
			LastName:      c.CreatedByEmployee.LastName,
			TerminationID: c.CreatedByEmployee.TerminationID,
		}
	}
	return resp
}

func mapToListResponse(comments []LeaveRequestComment) []LeaveCommentResponse {
	res := make([]LeaveCommentResponse, len(comments))
	for i, c := range comments {
		res[i] = mapToResponse(c)
	}
	return res
}
