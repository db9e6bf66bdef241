package model

import "time"

// Attendance status values.
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
)

// Attendance marks one user's status for one class on one date.
type Attendance struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ClassID   uint      `json:"class_id" gorm:"not null;index"`
	Date      time.Time `json:"date" gorm:"type:date;not null"`
	Status    string    `json:"status" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Class *Class `json:"class,omitempty" gorm:"foreignKey:ClassID"`
}
