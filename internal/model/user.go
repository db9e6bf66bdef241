package model

import "time"

// User represents an identity record: a member, trainer or administrator.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Phone        *string   `json:"phone,omitempty" gorm:"size:50"`
	RoleID       uint      `json:"role_id" gorm:"not null;default:3;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Role *Role `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

// RoleTier returns the user's role as the tagged enumeration.
func (u *User) RoleTier() RoleID {
	return RoleID(u.RoleID)
}
