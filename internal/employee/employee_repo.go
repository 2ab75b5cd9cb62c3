package employee

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByEmpNumber(ctx context.Context, empNumber int64) (*Employee, error)
	IsSupervisorOf(ctx context.Context, supEmpNumber, subEmpNumber int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByEmpNumber returns nil without an error when the employee does not exist.
func (r *repository) FindByEmpNumber(ctx context.Context, empNumber int64) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "emp_number = ?", empNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) IsSupervisorOf(ctx context.Context, supEmpNumber, subEmpNumber int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("report_to").
		Where("sup_emp_number = ?", supEmpNumber).
		Where("sub_emp_number = ?", subEmpNumber).
		Count(&count).Error
	return count > 0, err
}
