package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
	"gymcore/internal/repository"
)

// TrainerService handles trainer profiles.
type TrainerService interface {
	Create(ctx context.Context, userID uint, specialization string, certifications *string) (*model.Trainer, error)
	Update(ctx context.Context, id uint, specialization string, certifications *string) (*model.Trainer, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Trainer, error)
	List(ctx context.Context) ([]model.Trainer, error)
}

type trainerService struct {
	trainerRepo repository.TrainerRepository
	userRepo    repository.UserRepository
}

// NewTrainerService creates a new trainer service.
func NewTrainerService(trainerRepo repository.TrainerRepository, userRepo repository.UserRepository) TrainerService {
	return &trainerService{
		trainerRepo: trainerRepo,
		userRepo:    userRepo,
	}
}

// Create attaches a trainer profile to an existing user. One profile per user;
// the unique index on user_id is the duplicate check.
func (s *trainerService) Create(ctx context.Context, userID uint, specialization string, certifications *string) (*model.Trainer, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	trainer := &model.Trainer{
		UserID:         userID,
		Specialization: specialization,
		Certifications: certifications,
	}
	if err := s.trainerRepo.Create(ctx, trainer); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateTrainer) {
			return nil, err
		}
		return nil, fmt.Errorf("create trainer: %w", err)
	}
	return trainer, nil
}

func (s *trainerService) Update(ctx context.Context, id uint, specialization string, certifications *string) (*model.Trainer, error) {
	trainer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	trainer.Specialization = specialization
	trainer.Certifications = certifications
	if err := s.trainerRepo.Update(ctx, trainer); err != nil {
		return nil, fmt.Errorf("update trainer: %w", err)
	}
	return trainer, nil
}

func (s *trainerService) Delete(ctx context.Context, id uint) error {
	affected, err := s.trainerRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete trainer: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTrainerNotFound
	}
	return nil
}

func (s *trainerService) Get(ctx context.Context, id uint) (*model.Trainer, error) {
	trainer, err := s.trainerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

func (s *trainerService) List(ctx context.Context) ([]model.Trainer, error) {
	return s.trainerRepo.List(ctx)
}
