package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gymcore/internal/model"
)

// ClassRepository defines class persistence operations.
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	// UpdateOwned updates a class only when it belongs to the given trainer
	// and returns the number of rows affected.
	UpdateOwned(ctx context.Context, id, trainerUserID uint, name string, scheduleTime time.Time, capacity int) (int64, error)
	DeleteOwned(ctx context.Context, id, trainerUserID uint) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
	ListByTrainer(ctx context.Context, trainerUserID uint) ([]model.Class, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository builds a GORM-backed repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) UpdateOwned(ctx context.Context, id, trainerUserID uint, name string, scheduleTime time.Time, capacity int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Class{}).
		Where("id = ? AND trainer_user_id = ?", id, trainerUserID).
		Updates(map[string]interface{}{
			"name":          name,
			"schedule_time": scheduleTime,
			"capacity":      capacity,
		})
	return res.RowsAffected, res.Error
}

func (r *classRepository) DeleteOwned(ctx context.Context, id, trainerUserID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND trainer_user_id = ?", id, trainerUserID).
		Delete(&model.Class{})
	return res.RowsAffected, res.Error
}

func (r *classRepository) FindByID(ctx context.Context, id uint) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).Preload("Trainer").First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) List(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	if err := r.db.WithContext(ctx).Preload("Trainer").
		Order("schedule_time DESC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) ListByTrainer(ctx context.Context, trainerUserID uint) ([]model.Class, error) {
	var classes []model.Class
	if err := r.db.WithContext(ctx).
		Where("trainer_user_id = ?", trainerUserID).
		Order("schedule_time DESC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}
