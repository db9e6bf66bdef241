package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
)

// TrainerRepository defines trainer persistence operations.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *model.Trainer) error
	Update(ctx context.Context, trainer *model.Trainer) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.Trainer, error)
	FindByUserID(ctx context.Context, userID uint) (*model.Trainer, error)
	List(ctx context.Context) ([]model.Trainer, error)
}

type trainerRepository struct {
	db *gorm.DB
}

// NewTrainerRepository builds a GORM-backed repository.
func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) Create(ctx context.Context, trainer *model.Trainer) error {
	if err := r.db.WithContext(ctx).Create(trainer).Error; err != nil {
		// unique index on user_id: one trainer profile per user
		if isDuplicateEntry(err) {
			return apperrors.ErrDuplicateTrainer
		}
		return err
	}
	return nil
}

func (r *trainerRepository) Update(ctx context.Context, trainer *model.Trainer) error {
	return r.db.WithContext(ctx).Save(trainer).Error
}

func (r *trainerRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Trainer{}, id)
	return res.RowsAffected, res.Error
}

func (r *trainerRepository) FindByID(ctx context.Context, id uint) (*model.Trainer, error) {
	var trainer model.Trainer
	if err := r.db.WithContext(ctx).Preload("User").First(&trainer, id).Error; err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) FindByUserID(ctx context.Context, userID uint) (*model.Trainer, error) {
	var trainer model.Trainer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&trainer).Error; err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) List(ctx context.Context) ([]model.Trainer, error) {
	var trainers []model.Trainer
	if err := r.db.WithContext(ctx).Preload("User").
		Order("created_at DESC").Find(&trainers).Error; err != nil {
		return nil, err
	}
	return trainers, nil
}
