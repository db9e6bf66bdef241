package repository

import (
	"context"

	"gorm.io/gorm"

	"gymcore/internal/model"
)

// RoleRepository defines role persistence operations. Roles are a fixed set
// written only by seeding.
type RoleRepository interface {
	FirstOrCreate(ctx context.Context, role *model.Role) error
	List(ctx context.Context) ([]model.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository builds a GORM-backed repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FirstOrCreate(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Where("id = ?", role.ID).FirstOrCreate(role).Error
}

func (r *roleRepository) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}
