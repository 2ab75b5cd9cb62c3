package leavecomment

import (
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/employee"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/leave"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/user"
)

const MaxCommentLength = 255

type LeaveRequestComment struct {
	ID                 int64               `gorm:"primaryKey;autoIncrement"`
	LeaveRequestID     int64               `gorm:"not null"`
	LeaveRequest       *leave.LeaveRequest `gorm:"foreignKey:LeaveRequestID"`
	Comment            string              `gorm:"type:varchar(255);not null"`
	CreatedAt          time.Time           `gorm:"not null"`
	CreatedByUserID    int64               `gorm:"not null"`
	CreatedByUser      *user.User          `gorm:"foreignKey:CreatedByUserID"`
	CreatedByEmpNumber *int64
	CreatedByEmployee  *employee.Employee `gorm:"foreignKey:CreatedByEmpNumber;references:EmpNumber"`
}

func (LeaveRequestComment) TableName() string { return "leave_request_comments" }

// NewLeaveRequestComment sets foreign keys by id only; related rows are not loaded.
func NewLeaveRequestComment(
	leaveRequestID int64,
	comment string,
	createdAt time.Time,
	createdByUserID int64,
	createdByEmpNumber *int64,
) *LeaveRequestComment {
	return &LeaveRequestComment{
		LeaveRequestID:     leaveRequestID,
		Comment:            comment,
		CreatedAt:          createdAt,
		CreatedByUserID:    createdByUserID,
		CreatedByEmpNumber: createdByEmpNumber,
	}
}
