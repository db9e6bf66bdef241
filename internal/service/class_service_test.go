package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
)

// MockClassRepository is a mock implementation of ClassRepository.
type MockClassRepository struct {
	mock.Mock
}

func (m *MockClassRepository) Create(ctx context.Context, class *model.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepository) UpdateOwned(ctx context.Context, id, trainerUserID uint, name string, scheduleTime time.Time, capacity int) (int64, error) {
	args := m.Called(ctx, id, trainerUserID, name, scheduleTime, capacity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClassRepository) DeleteOwned(ctx context.Context, id, trainerUserID uint) (int64, error) {
	args := m.Called(ctx, id, trainerUserID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClassRepository) FindByID(ctx context.Context, id uint) (*model.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Class), args.Error(1)
}

func (m *MockClassRepository) List(ctx context.Context) ([]model.Class, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Class), args.Error(1)
}

func (m *MockClassRepository) ListByTrainer(ctx context.Context, trainerUserID uint) ([]model.Class, error) {
	args := m.Called(ctx, trainerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Class), args.Error(1)
}

func TestClassService_Create_DefaultsCapacity(t *testing.T) {
	repo := new(MockClassRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Class")).
		Run(func(args mock.Arguments) {
			class := args.Get(1).(*model.Class)
			assert.Equal(t, defaultClassCapacity, class.Capacity)
			assert.Equal(t, uint(5), class.TrainerUserID)
		}).
		Return(nil)

	svc := NewClassService(repo)
	class, err := svc.Create(context.Background(), 5, ClassInput{
		Name:         "Morning Yoga",
		ScheduleTime: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, defaultClassCapacity, class.Capacity)
	repo.AssertExpectations(t)
}

// A trainer touching a class they do not own gets not-found, same as a class
// that does not exist.
func TestClassService_Update_NotOwned(t *testing.T) {
	repo := new(MockClassRepository)
	repo.On("UpdateOwned", mock.Anything, uint(9), uint(5), "Spin", mock.Anything, 15).
		Return(int64(0), nil)

	svc := NewClassService(repo)
	err := svc.Update(context.Background(), 9, 5, ClassInput{
		Name:         "Spin",
		ScheduleTime: time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
		Capacity:     15,
	})

	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
}

func TestClassService_Delete_NotOwned(t *testing.T) {
	repo := new(MockClassRepository)
	repo.On("DeleteOwned", mock.Anything, uint(9), uint(5)).Return(int64(0), nil)

	svc := NewClassService(repo)
	assert.ErrorIs(t, svc.Delete(context.Background(), 9, 5), apperrors.ErrClassNotFound)
}
