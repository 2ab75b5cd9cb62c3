package employee

import (
	"strings"
	"time"
)

type Employee struct {
	EmpNumber     int64   `gorm:"primaryKey;autoIncrement"`
	EmployeeID    *string `gorm:"type:varchar(50)"`
	FirstName     string  `gorm:"type:varchar(100);not null"`
	MiddleName    string  `gorm:"type:varchar(100);not null;default:''"`
	LastName      string  `gorm:"type:varchar(100);not null"`
	WorkEmail     *string `gorm:"type:varchar(255)"`
	TerminationID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Employee) TableName() string { return "employees" }

func (e Employee) FullName() string {
	parts := []string{e.FirstName, e.MiddleName, e.LastName}
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			names = append(names, p)
		}
	}
	return strings.Join(names, " ")
}

func (e Employee) IsPastEmployee() bool {
	return e.TerminationID != nil
}
