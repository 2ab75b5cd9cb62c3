package leavecomment

import "strings"

const (
	SortFieldCreatedAt = "leaveRequestComment.createdAt"
	SortFieldID        = "leaveRequestComment.id"

	SortOrderAsc  = "ASC"
	SortOrderDesc = "DESC"

	DefaultLimit = 50
	MaxLimit     = 500
)

var sortColumns = map[string]string{
	SortFieldCreatedAt: "leave_request_comments.created_at",
	SortFieldID:        "leave_request_comments.id",
}

// SearchFilterParams selects the comments of one leave request. Limit 0 means no limit.
type SearchFilterParams struct {
	LeaveRequestID int64
	SortField      string
	SortOrder      string
	Offset         int
	Limit          int
}

func NewSearchFilterParams(leaveRequestID int64) SearchFilterParams {
	return SearchFilterParams{
		LeaveRequestID: leaveRequestID,
		SortField:      SortFieldCreatedAt,
		SortOrder:      SortOrderAsc,
		Offset:         0,
		Limit:          DefaultLimit,
	}
}

func IsAllowedSortField(field string) bool {
	_, ok := sortColumns[field]
	return ok
}

func (p SearchFilterParams) orderClauses() []string {
	col, ok := sortColumns[p.SortField]
	if !ok {
		col = sortColumns[SortFieldCreatedAt]
	}
	dir := SortOrderAsc
	if strings.EqualFold(p.SortOrder, SortOrderDesc) {
		dir = SortOrderDesc
	}

	clauses := []string{col + " " + dir}
	if col != sortColumns[SortFieldID] {
		clauses = append(clauses, sortColumns[SortFieldID]+" "+SortOrderAsc)
	}
	return clauses
}
