package leave

import (
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/employee"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
	StatusTaken     = "TAKEN"
)

type LeaveRequest struct {
	ID          int64              `gorm:"primaryKey;autoIncrement"`
	EmpNumber   int64              `gorm:"not null;index:idx_leave_requests_emp_number"`
	Employee    *employee.Employee `gorm:"foreignKey:EmpNumber;references:EmpNumber"`
	DateApplied time.Time          `gorm:"type:date;not null"`
	Status      string             `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Comments    *string            `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LeaveRequest) TableName() string { return "leave_requests" }
