package repositories

import (
	"errors"
	"fmt"
	"strings"

	"phonebook/internal/models"

	"gorm.io/gorm"
)

// GORMContactRepository is a GORM implementation of ContactRepository.
type GORMContactRepository struct {
	db *gorm.DB
}

// NewGORMContactRepository creates a new instance of GORMContactRepository.
func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{
		db: db,
	}
}

// GetAllByOwner retrieves the owner's contacts, ordered by ID (insertion
// order), with optional case-insensitive search over name and phone number.
func (r *GORMContactRepository) GetAllByOwner(ownerID uint, skip, limit int, search string) ([]models.Contact, error) {
	query := r.db.Where("user_id = ?", ownerID)

	if search != "" {
		// LOWER on both sides keeps the match case-insensitive regardless of
		// the backing database's collation.
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(phone_number) LIKE ?", pattern, pattern)
	}

	var contacts []models.Contact
	if err := query.Order("id").Offset(skip).Limit(limit).Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts for user %d: %w", ownerID, err)
	}
	return contacts, nil
}

// GetByID retrieves a single contact by its ID, scoped to the owner.
func (r *GORMContactRepository) GetByID(ownerID, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "id = ? AND user_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contact by ID %d: %w", id, err)
	}
	return &contact, nil
}

// GetByPhone retrieves the owner's contact with the given normalized phone
// number.
func (r *GORMContactRepository) GetByPhone(ownerID uint, phone string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "user_id = ? AND phone_number = ?", ownerID, phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact with phone %s: %w", phone, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contact by phone %s: %w", phone, err)
	}
	return &contact, nil
}

// Create inserts a new contact. The store assigns ID and CreatedAt. A
// violation of the (user_id, phone_number) unique index is reported as
// ErrDuplicateKey.
func (r *GORMContactRepository) Create(contact *models.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create contact %s: %w", contact.PhoneNumber, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// Update persists all fields of an existing contact.
func (r *GORMContactRepository) Update(contact *models.Contact) error {
	res := r.db.Save(contact)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("update contact %d: %w", contact.ID, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound for a missing row, so we
		// check RowsAffected.
		return fmt.Errorf("contact with ID %d for update: %w", contact.ID, ErrNotFound)
	}
	return nil
}

// Delete permanently removes the owner's contact with the given ID.
func (r *GORMContactRepository) Delete(ownerID, id uint) error {
	res := r.db.Delete(&models.Contact{}, "id = ? AND user_id = ?", id, ownerID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete contact %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("contact with ID %d for deletion: %w", id, ErrNotFound)
	}
	return nil
}
