package rbac

import (
	"context"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/employee"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/contextutil"
	"go.uber.org/zap"
)

//go:generate mockgen -source=access_checker.go -destination=mock/access_checker_mock.go -package=mock
type AccessChecker interface {
	// IsSelf reports whether the principal is linked to the given employee.
	IsSelf(p contextutil.Principal, empNumber int64) bool
	// IsEmployeeAccessible reports whether the principal may act on the employee's
	// records through a role grant or by supervising them.
	IsEmployeeAccessible(ctx context.Context, p contextutil.Principal, empNumber int64) (bool, error)
}

type accessChecker struct {
	rbac      Service
	employees employee.Repository
	logger    *zap.Logger
}

func NewAccessChecker(rbac Service, employees employee.Repository, logger ...*zap.Logger) AccessChecker {
	l := zap.L().Named("rbac.access")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.access")
	}
	return &accessChecker{rbac: rbac, employees: employees, logger: l}
}

func (a *accessChecker) IsSelf(p contextutil.Principal, empNumber int64) bool {
	return p.HasEmployee() && p.EmpNumber == empNumber
}

func (a *accessChecker) IsEmployeeAccessible(ctx context.Context, p contextutil.Principal, empNumber int64) (bool, error) {
	allowed, err := a.rbac.Enforce(ctx, EnforceRequest{
		Subject:  UserSubject(p.UserID),
		Resource: ResourceEmployee,
		Action:   ActionAccess,
	})
	if err != nil {
		return false, err
	}
	if allowed {
		return true, nil
	}

	if !p.HasEmployee() {
		return false, nil
	}

	supervises, err := a.employees.IsSupervisorOf(ctx, p.EmpNumber, empNumber)
	if err != nil {
		a.logger.Error("supervisor lookup failed",
			zap.Int64("supervisor", p.EmpNumber),
			zap.Int64("subordinate", empNumber),
			zap.Error(err),
		)
		return false, err
	}
	return supervises, nil
}
