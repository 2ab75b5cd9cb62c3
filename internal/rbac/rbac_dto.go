package rbac

import "strconv"

const (
	ResourceEmployee = "employee"
	ActionAccess     = "access"
)

type EnforceRequest struct {
	Subject  string `json:"subject"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

func UserSubject(userID int64) string {
	return "user:" + strconv.FormatInt(userID, 10)
}

func RoleSubject(roleID int64) string {
	return "role:" + strconv.FormatInt(roleID, 10)
}
