package models

import "time"

// Contact represents a phonebook entry owned by a single user.
// The phone number is stored in normalized form (digits plus an optional
// leading '+'), and a user cannot have two contacts with the same number.
// Different users may store the same number independently.
type Contact struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	PhoneNumber string    `json:"phone_number" gorm:"type:varchar(20);not null;uniqueIndex:uq_phone_number_user_id" validate:"required"`
	Email       string    `json:"email,omitempty" gorm:"type:varchar(255)" validate:"omitempty,email"`
	Address     string    `json:"address,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:uq_phone_number_user_id"`
}
