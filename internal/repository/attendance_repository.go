package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gymcore/internal/model"
)

// AttendanceRepository defines attendance persistence operations.
type AttendanceRepository interface {
	Create(ctx context.Context, a *model.Attendance) error
	Update(ctx context.Context, id uint, date time.Time, status string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	List(ctx context.Context) ([]model.Attendance, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository builds a GORM-backed repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, a *model.Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *attendanceRepository) Update(ctx context.Context, id uint, date time.Time, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"date": date, "status": status})
	return res.RowsAffected, res.Error
}

func (r *attendanceRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Attendance{}, id)
	return res.RowsAffected, res.Error
}

func (r *attendanceRepository) List(ctx context.Context) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := r.db.WithContext(ctx).Preload("User").Preload("Class").
		Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID uint) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := r.db.WithContext(ctx).Preload("Class").
		Where("user_id = ?", userID).
		Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
