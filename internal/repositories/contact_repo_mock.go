package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"phonebook/internal/models"
)

// MockContactRepository is an in-memory implementation of ContactRepository.
// It mirrors the store semantics the GORM implementation relies on (ID
// assignment, ownership scoping, the per-user phone uniqueness index) so
// services can be tested without a database.
type MockContactRepository struct {
	contacts map[uint]models.Contact
	nextID   uint
	mu       sync.RWMutex
}

// NewMockContactRepository creates a new instance of MockContactRepository.
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{
		contacts: make(map[uint]models.Contact),
		nextID:   1,
	}
}

// GetAllByOwner returns the owner's contacts in insertion (ID) order.
func (r *MockContactRepository) GetAllByOwner(ownerID uint, skip, limit int, search string) ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []models.Contact
	for _, c := range r.contacts {
		if c.UserID != ownerID {
			continue
		}
		if search != "" {
			needle := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(c.Name), needle) &&
				!strings.Contains(strings.ToLower(c.PhoneNumber), needle) {
				continue
			}
		}
		owned = append(owned, c)
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	if skip >= len(owned) {
		return []models.Contact{}, nil
	}
	owned = owned[skip:]
	if limit < len(owned) {
		owned = owned[:limit]
	}
	return owned, nil
}

// GetByID returns the owner's contact with the given ID.
func (r *MockContactRepository) GetByID(ownerID, id uint) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contact, ok := r.contacts[id]
	if !ok || contact.UserID != ownerID {
		return nil, fmt.Errorf("contact with ID %d: %w", id, ErrNotFound)
	}
	return &contact, nil
}

// GetByPhone returns the owner's contact with the given normalized phone
// number.
func (r *MockContactRepository) GetByPhone(ownerID uint, phone string) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contacts {
		if c.UserID == ownerID && c.PhoneNumber == phone {
			contact := c
			return &contact, nil
		}
	}
	return nil, fmt.Errorf("contact with phone %s: %w", phone, ErrNotFound)
}

// Create adds a new contact, assigning ID and CreatedAt like the store does.
func (r *MockContactRepository) Create(contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contacts {
		if c.UserID == contact.UserID && c.PhoneNumber == contact.PhoneNumber {
			return fmt.Errorf("create contact %s: %w", contact.PhoneNumber, ErrDuplicateKey)
		}
	}

	contact.ID = r.nextID
	r.nextID++
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}
	r.contacts[contact.ID] = *contact
	return nil
}

// Update modifies an existing contact.
func (r *MockContactRepository) Update(contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[contact.ID]; !ok {
		return fmt.Errorf("contact with ID %d for update: %w", contact.ID, ErrNotFound)
	}
	for _, c := range r.contacts {
		if c.ID != contact.ID && c.UserID == contact.UserID && c.PhoneNumber == contact.PhoneNumber {
			return fmt.Errorf("update contact %d: %w", contact.ID, ErrDuplicateKey)
		}
	}
	r.contacts[contact.ID] = *contact
	return nil
}

// Delete removes the owner's contact with the given ID.
func (r *MockContactRepository) Delete(ownerID, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact, ok := r.contacts[id]
	if !ok || contact.UserID != ownerID {
		return fmt.Errorf("contact with ID %d for deletion: %w", id, ErrNotFound)
	}
	delete(r.contacts, id)
	return nil
}
