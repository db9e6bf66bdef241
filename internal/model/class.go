package model

import "time"

// Class is a scheduled session owned by one trainer.
type Class struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	TrainerUserID uint      `json:"trainer_user_id" gorm:"not null;index"`
	ScheduleTime  time.Time `json:"schedule_time" gorm:"not null"`
	Capacity      int       `json:"capacity" gorm:"not null;default:20"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	Trainer *User `json:"trainer,omitempty" gorm:"foreignKey:TrainerUserID"`
}
