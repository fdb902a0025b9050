package repositories

import "phonebook/internal/models"

// ContactRepository defines the interface for contact data access.
// Every method that addresses an existing contact takes the owner's user ID
// and only ever sees that user's records.
type ContactRepository interface {
	// GetAllByOwner lists the owner's contacts ordered by insertion,
	// paginated by skip/limit. A non-empty search restricts the result to
	// contacts whose name or phone number contains it, case-insensitively.
	GetAllByOwner(ownerID uint, skip, limit int, search string) ([]models.Contact, error)
	GetByID(ownerID, id uint) (*models.Contact, error)
	// GetByPhone finds the owner's contact holding the given normalized
	// phone number, if any.
	GetByPhone(ownerID uint, phone string) (*models.Contact, error)
	Create(contact *models.Contact) error
	Update(contact *models.Contact) error
	Delete(ownerID, id uint) error
}
