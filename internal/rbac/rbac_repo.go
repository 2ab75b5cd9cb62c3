package rbac

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetUserRoles(ctx context.Context) ([]UserRoleRow, error)
	GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type UserRoleRow struct {
	UserID int64
	RoleID int64
}

type RolePermissionRow struct {
	RoleID   int64
	Resource string
	Action   string
}

// GetUserRoles skips users flagged as deleted.
func (r *repository) GetUserRoles(ctx context.Context) ([]UserRoleRow, error) {
	var result []UserRoleRow

	err := r.db.WithContext(ctx).
		Table("user_roles").
		Select("user_roles.user_id, user_roles.role_id").
		Joins("JOIN users ON users.id = user_roles.user_id").
		Where("users.deleted = ?", false).
		Order("user_roles.user_id, user_roles.role_id").
		Scan(&result).Error

	return result, err
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Order("role_permissions.role_id, permissions.resource, permissions.action").
		Scan(&result).Error

	return result, err
}
