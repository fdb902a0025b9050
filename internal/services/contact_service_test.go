package services_test

import (
	"testing"

	"phonebook/internal/models"
	"phonebook/internal/repositories"
	"phonebook/internal/services"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func newContactService() *services.ContactService {
	// nil MQ client: event publication is optional and skipped in tests
	return services.NewContactService(repositories.NewMockContactRepository(), nil)
}

func TestContactService_CreateContact(t *testing.T) {
	service := newContactService()
	owner := &models.User{ID: 1, Username: "alice"}
	other := &models.User{ID: 2, Username: "bob"}

	// Phone numbers are normalized before storage
	created, err := service.CreateContact(owner, models.Contact{Name: "Jane", PhoneNumber: "123-456-7890"})
	assert.NoError(t, err)
	assert.Equal(t, "1234567890", created.PhoneNumber)
	assert.Equal(t, owner.ID, created.UserID)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// Invalid phone numbers are rejected
	_, err = service.CreateContact(owner, models.Contact{Name: "Bad", PhoneNumber: "abc"})
	assert.ErrorIs(t, err, services.ErrInvalidPhoneFormat)

	// A second contact colliding after normalization is a duplicate
	_, err = service.CreateContact(owner, models.Contact{Name: "Janet", PhoneNumber: "(123) 456 7890"})
	assert.ErrorIs(t, err, services.ErrDuplicatePhone)

	// A different user may store the same number
	_, err = service.CreateContact(other, models.Contact{Name: "Jane", PhoneNumber: "123-456-7890"})
	assert.NoError(t, err)
}

func TestContactService_GetContact(t *testing.T) {
	service := newContactService()
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}

	created, err := service.CreateContact(owner, models.Contact{Name: "Jane", PhoneNumber: "+15551234567"})
	assert.NoError(t, err)

	got, err := service.GetContact(owner, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Jane", got.Name)

	// A missing ID and another user's ID are indistinguishable
	_, err = service.GetContact(owner, created.ID+100)
	assert.ErrorIs(t, err, services.ErrContactNotFound)
	_, err = service.GetContact(other, created.ID)
	assert.ErrorIs(t, err, services.ErrContactNotFound)
}

func TestContactService_UpdateContact(t *testing.T) {
	service := newContactService()
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}

	jane, err := service.CreateContact(owner, models.Contact{Name: "Jane", PhoneNumber: "5550100", Email: "jane@example.com"})
	assert.NoError(t, err)
	_, err = service.CreateContact(owner, models.Contact{Name: "John", PhoneNumber: "5550199"})
	assert.NoError(t, err)

	// Only provided fields are overwritten
	updated, err := service.UpdateContact(owner, jane.ID, services.ContactUpdate{
		PhoneNumber: strPtr("555-0101"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "5550101", updated.PhoneNumber)
	assert.Equal(t, "Jane", updated.Name)
	assert.Equal(t, "jane@example.com", updated.Email)

	// Re-saving a contact with its own number is not a duplicate
	updated, err = service.UpdateContact(owner, jane.ID, services.ContactUpdate{
		Name:        strPtr("Jane Doe"),
		PhoneNumber: strPtr("555-0101"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)

	// Moving to a number held by another of the owner's contacts is blocked
	_, err = service.UpdateContact(owner, jane.ID, services.ContactUpdate{PhoneNumber: strPtr("5550199")})
	assert.ErrorIs(t, err, services.ErrDuplicatePhone)

	// Invalid phone numbers are rejected on update too
	_, err = service.UpdateContact(owner, jane.ID, services.ContactUpdate{PhoneNumber: strPtr("abc")})
	assert.ErrorIs(t, err, services.ErrInvalidPhoneFormat)

	// Another user cannot see or update the contact
	_, err = service.UpdateContact(other, jane.ID, services.ContactUpdate{Name: strPtr("Hijacked")})
	assert.ErrorIs(t, err, services.ErrContactNotFound)

	// Uniqueness is per owner: another user may take the same number
	bobs, err := service.CreateContact(other, models.Contact{Name: "Jane", PhoneNumber: "5550123"})
	assert.NoError(t, err)
	_, err = service.UpdateContact(other, bobs.ID, services.ContactUpdate{PhoneNumber: strPtr("555-0101")})
	assert.NoError(t, err)
}

func TestContactService_DeleteContact(t *testing.T) {
	service := newContactService()
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}

	created, err := service.CreateContact(owner, models.Contact{Name: "Jane", PhoneNumber: "5550100"})
	assert.NoError(t, err)

	// Another user cannot delete it
	err = service.DeleteContact(other, created.ID)
	assert.ErrorIs(t, err, services.ErrContactNotFound)

	err = service.DeleteContact(owner, created.ID)
	assert.NoError(t, err)

	_, err = service.GetContact(owner, created.ID)
	assert.ErrorIs(t, err, services.ErrContactNotFound)
	err = service.DeleteContact(owner, created.ID)
	assert.ErrorIs(t, err, services.ErrContactNotFound)
}

func TestContactService_ListContacts(t *testing.T) {
	service := newContactService()
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}

	seed := []models.Contact{
		{Name: "Jane", PhoneNumber: "5550100"},
		{Name: "John", PhoneNumber: "5550101"},
		{Name: "Anna", PhoneNumber: "7770000"},
		{Name: "mr five", PhoneNumber: "8885550"},
	}
	for _, c := range seed {
		_, err := service.CreateContact(owner, c)
		assert.NoError(t, err)
	}
	_, err := service.CreateContact(other, models.Contact{Name: "Jane", PhoneNumber: "5550100"})
	assert.NoError(t, err)

	// Only the owner's contacts are visible, in insertion order
	contacts, err := service.ListContacts(owner, 0, 0, "")
	assert.NoError(t, err)
	assert.Len(t, contacts, 4)
	assert.Equal(t, "Jane", contacts[0].Name)
	assert.Equal(t, "mr five", contacts[3].Name)

	// Search matches name or phone number, case-insensitively
	contacts, err = service.ListContacts(owner, 0, 0, "555")
	assert.NoError(t, err)
	assert.Len(t, contacts, 3)
	for _, c := range contacts {
		assert.NotEqual(t, "Anna", c.Name)
	}

	contacts, err = service.ListContacts(owner, 0, 0, "JANE")
	assert.NoError(t, err)
	assert.Len(t, contacts, 1)
	assert.Equal(t, "Jane", contacts[0].Name)

	// Pagination, with negative values clamped
	contacts, err = service.ListContacts(owner, 1, 2, "")
	assert.NoError(t, err)
	assert.Len(t, contacts, 2)
	assert.Equal(t, "John", contacts[0].Name)
	assert.Equal(t, "Anna", contacts[1].Name)

	contacts, err = service.ListContacts(owner, -5, -5, "")
	assert.NoError(t, err)
	assert.Len(t, contacts, 4)

	contacts, err = service.ListContacts(owner, 10, 0, "")
	assert.NoError(t, err)
	assert.Empty(t, contacts)
}
