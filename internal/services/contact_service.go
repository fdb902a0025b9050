package services

import (
	"errors"
	"fmt"
	"log"

	"phonebook/internal/models"
	"phonebook/internal/repositories"
	"phonebook/pkg/rabbitmq"
)

// DefaultListLimit caps a listing when the caller does not ask for a
// specific page size.
const DefaultListLimit = 100

// ContactUpdate carries a partial update. Nil fields are left untouched.
type ContactUpdate struct {
	Name        *string
	PhoneNumber *string
	Email       *string
	Address     *string
}

// ContactService handles business logic for a user's contacts. Every
// operation is scoped to the owning user; contacts belonging to other users
// are indistinguishable from missing ones.
type ContactService struct {
	repo     repositories.ContactRepository
	mqClient *rabbitmq.Client
}

// NewContactService creates a new ContactService. mqClient may be nil, in
// which case no lifecycle events are published.
func NewContactService(repo repositories.ContactRepository, mqClient *rabbitmq.Client) *ContactService {
	return &ContactService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// ListContacts returns the owner's contacts in insertion order, paginated by
// skip/limit. Negative skip is clamped to 0 and a non-positive limit falls
// back to DefaultListLimit. A non-empty search keeps only contacts whose
// name or phone number contains it, case-insensitively.
func (s *ContactService) ListContacts(owner *models.User, skip, limit int, search string) ([]models.Contact, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.GetAllByOwner(owner.ID, skip, limit, search)
}

// CreateContact normalizes the phone number and persists a new contact for
// the owner. It fails with ErrInvalidPhoneFormat or ErrDuplicatePhone.
func (s *ContactService) CreateContact(owner *models.User, contact models.Contact) (*models.Contact, error) {
	phone, err := NormalizePhone(contact.PhoneNumber)
	if err != nil {
		return nil, err
	}

	// Pre-check for a friendly error; the (user_id, phone_number) unique
	// index closes the race between this lookup and the insert.
	if existing, err := s.repo.GetByPhone(owner.ID, phone); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePhone, phone)
	}

	contact.PhoneNumber = phone
	contact.UserID = owner.ID
	if err := s.repo.Create(&contact); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePhone, phone)
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.publishEvent("contact.created", &contact)
	return &contact, nil
}

// GetContact returns the owner's contact with the given ID, or
// ErrContactNotFound.
func (s *ContactService) GetContact(owner *models.User, id uint) (*models.Contact, error) {
	contact, err := s.repo.GetByID(owner.ID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrContactNotFound, id)
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// UpdateContact applies a partial update to the owner's contact. Only
// non-nil fields overwrite; a new phone number is re-normalized and checked
// for duplicates among the owner's other contacts.
func (s *ContactService) UpdateContact(owner *models.User, id uint, update ContactUpdate) (*models.Contact, error) {
	contact, err := s.GetContact(owner, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		contact.Name = *update.Name
	}
	if update.PhoneNumber != nil {
		phone, err := NormalizePhone(*update.PhoneNumber)
		if err != nil {
			return nil, err
		}
		// Duplicate check is scoped to the owner and excludes the contact
		// being updated, so saving a contact with its own number is a no-op
		// and other users' numbers never block this one.
		if existing, err := s.repo.GetByPhone(owner.ID, phone); err == nil && existing != nil && existing.ID != contact.ID {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePhone, phone)
		}
		contact.PhoneNumber = phone
	}
	if update.Email != nil {
		contact.Email = *update.Email
	}
	if update.Address != nil {
		contact.Address = *update.Address
	}

	if err := s.repo.Update(contact); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateKey):
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePhone, contact.PhoneNumber)
		case errors.Is(err, repositories.ErrNotFound):
			return nil, fmt.Errorf("%w: id %d", ErrContactNotFound, id)
		default:
			return nil, fmt.Errorf("failed to update contact: %w", err)
		}
	}

	s.publishEvent("contact.updated", contact)
	return contact, nil
}

// DeleteContact permanently removes the owner's contact with the given ID.
func (s *ContactService) DeleteContact(owner *models.User, id uint) error {
	// Load first so the published event can carry the contact details.
	contact, err := s.GetContact(owner, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(owner.ID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrContactNotFound, id)
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	s.publishEvent("contact.deleted", contact)
	return nil
}

// publishEvent emits a contact lifecycle event. Publication is best-effort:
// a broker failure is logged and never surfaced to the API caller.
func (s *ContactService) publishEvent(action string, contact *models.Contact) {
	if s.mqClient == nil {
		return
	}
	event := rabbitmq.ContactEvent{
		Action:      action,
		ContactID:   contact.ID,
		UserID:      contact.UserID,
		Name:        contact.Name,
		PhoneNumber: contact.PhoneNumber,
	}
	if err := s.mqClient.PublishContactEvent(event); err != nil {
		log.Printf("Warning: failed to publish %s event for contact %d: %v", action, contact.ID, err)
	}
}
