package model

import "time"

// Trainer extends a User (role trainer) with specialization details.
type Trainer struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Specialization string    `json:"specialization" gorm:"size:255;not null"`
	Certifications *string   `json:"certifications,omitempty" gorm:"size:1024"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
