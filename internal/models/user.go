package models

import "time"

// User represents a registered account in the phonebook.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(50);not null" validate:"required,min=3,max=50"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"` // No json output for security
	CreatedAt    time.Time `json:"created_at"`

	// Contacts owned by this user. Deleting the user deletes them too.
	Contacts []Contact `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
