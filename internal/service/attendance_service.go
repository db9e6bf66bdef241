package service

import (
	"context"
	"fmt"
	"time"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
	"gymcore/internal/repository"
)

// AttendanceService handles attendance records.
type AttendanceService interface {
	Mark(ctx context.Context, userID, classID uint, date time.Time, status string) (*model.Attendance, error)
	Update(ctx context.Context, id uint, date time.Time, status string) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]model.Attendance, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Attendance, error)
}

type attendanceService struct {
	repo repository.AttendanceRepository
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(repo repository.AttendanceRepository) AttendanceService {
	return &attendanceService{repo: repo}
}

func (s *attendanceService) Mark(ctx context.Context, userID, classID uint, date time.Time, status string) (*model.Attendance, error) {
	record := &model.Attendance{
		UserID:  userID,
		ClassID: classID,
		Date:    date,
		Status:  status,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("mark attendance: %w", err)
	}
	return record, nil
}

func (s *attendanceService) Update(ctx context.Context, id uint, date time.Time, status string) error {
	affected, err := s.repo.Update(ctx, id, date, status)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}

func (s *attendanceService) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}

func (s *attendanceService) List(ctx context.Context) ([]model.Attendance, error) {
	return s.repo.List(ctx)
}

func (s *attendanceService) ListByUser(ctx context.Context, userID uint) ([]model.Attendance, error) {
	return s.repo.ListByUser(ctx, userID)
}
