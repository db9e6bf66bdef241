package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gymcore/internal/model"
)

// MembershipRepository defines membership persistence operations.
type MembershipRepository interface {
	Create(ctx context.Context, m *model.Membership) error
	// UpdateLatestForUser rewrites the user's most recent membership row and
	// returns the number of rows affected. Zero means the user has no
	// membership row yet.
	UpdateLatestForUser(ctx context.Context, userID, planID uint, joinDate, expiryDate time.Time, status string) (int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.Membership, error)
	FindLatestByUser(ctx context.Context, userID uint) (*model.Membership, error)
	List(ctx context.Context) ([]model.Membership, error)
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository builds a GORM-backed repository.
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, m *model.Membership) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// UpdateLatestForUser targets the newest row by creation time, not by bare
// max(id): recency must not depend on auto-increment ordering.
func (r *membershipRepository) UpdateLatestForUser(ctx context.Context, userID, planID uint, joinDate, expiryDate time.Time, status string) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		`UPDATE memberships
		 SET plan_id = ?, join_date = ?, expiry_date = ?, status = ?, updated_at = ?
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		planID, joinDate, expiryDate, status, time.Now(), userID,
	)
	return res.RowsAffected, res.Error
}

func (r *membershipRepository) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *membershipRepository) FindByID(ctx context.Context, id uint) (*model.Membership, error) {
	var m model.Membership
	if err := r.db.WithContext(ctx).Preload("Plan").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *membershipRepository) FindLatestByUser(ctx context.Context, userID uint) (*model.Membership, error) {
	var m model.Membership
	if err := r.db.WithContext(ctx).Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *membershipRepository) List(ctx context.Context) ([]model.Membership, error) {
	var memberships []model.Membership
	if err := r.db.WithContext(ctx).Preload("Plan").Preload("User").
		Order("id DESC").Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}
