package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership status values. Status is only ever set at write time; nothing
// transitions active rows to expired when expiry_date passes. Callers that
// need expiry enforcement must compare ExpiryDate against the current date.
const (
	MembershipStatusActive    = "active"
	MembershipStatusExpired   = "expired"
	MembershipStatusCancelled = "cancelled"
)

// Membership binds one user to one plan for a computed date range.
// Invariant: ExpiryDate = JoinDate + plan.DurationDays calendar days,
// computed when the row is written.
type Membership struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Reference  uuid.UUID `json:"reference" gorm:"type:char(36);uniqueIndex;not null"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	PlanID     uint      `json:"plan_id" gorm:"not null"`
	JoinDate   time.Time `json:"join_date" gorm:"type:date;not null"`
	ExpiryDate time.Time `json:"expiry_date" gorm:"type:date;not null"`
	Status     string    `json:"status" gorm:"size:20;not null;default:'active'"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Plan *Plan `json:"plan,omitempty" gorm:"foreignKey:PlanID"`
}

// BeforeCreate assigns the membership reference code.
func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.Reference == uuid.Nil {
		m.Reference = uuid.New()
	}
	return nil
}
