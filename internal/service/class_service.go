package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
	"gymcore/internal/repository"
)

const defaultClassCapacity = 20

// ClassInput carries class fields from the boundary.
type ClassInput struct {
	Name         string
	ScheduleTime time.Time
	Capacity     int
}

// ClassService handles scheduled classes. Mutations are scoped to the owning
// trainer: a trainer can only touch their own classes.
type ClassService interface {
	Create(ctx context.Context, trainerUserID uint, in ClassInput) (*model.Class, error)
	Update(ctx context.Context, id, trainerUserID uint, in ClassInput) error
	Delete(ctx context.Context, id, trainerUserID uint) error
	Get(ctx context.Context, id uint) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
	ListByTrainer(ctx context.Context, trainerUserID uint) ([]model.Class, error)
}

type classService struct {
	repo repository.ClassRepository
}

// NewClassService creates a new class service.
func NewClassService(repo repository.ClassRepository) ClassService {
	return &classService{repo: repo}
}

func (s *classService) Create(ctx context.Context, trainerUserID uint, in ClassInput) (*model.Class, error) {
	capacity := in.Capacity
	if capacity <= 0 {
		capacity = defaultClassCapacity
	}

	class := &model.Class{
		Name:          in.Name,
		TrainerUserID: trainerUserID,
		ScheduleTime:  in.ScheduleTime,
		Capacity:      capacity,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}
	return class, nil
}

// Update rewrites a class owned by the caller. Zero rows affected means the
// class does not exist or belongs to another trainer; both read as not found
// so ownership cannot be probed.
func (s *classService) Update(ctx context.Context, id, trainerUserID uint, in ClassInput) error {
	capacity := in.Capacity
	if capacity <= 0 {
		capacity = defaultClassCapacity
	}

	affected, err := s.repo.UpdateOwned(ctx, id, trainerUserID, in.Name, in.ScheduleTime, capacity)
	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}

func (s *classService) Delete(ctx context.Context, id, trainerUserID uint) error {
	affected, err := s.repo.DeleteOwned(ctx, id, trainerUserID)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}

func (s *classService) Get(ctx context.Context, id uint) (*model.Class, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, err
	}
	return class, nil
}

func (s *classService) List(ctx context.Context) ([]model.Class, error) {
	return s.repo.List(ctx)
}

func (s *classService) ListByTrainer(ctx context.Context, trainerUserID uint) ([]model.Class, error) {
	return s.repo.ListByTrainer(ctx, trainerUserID)
}
