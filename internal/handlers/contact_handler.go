package handlers

import (
	"errors"
	"fmt"
	"log"

	"phonebook/internal/middleware"
	"phonebook/internal/models"
	"phonebook/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles HTTP requests for a user's contacts. All routes it
// registers assume the AuthRequired middleware already resolved the caller.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the contact routes with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	contactRoutes := router.Group("/contacts")
	contactRoutes.Get("/", h.HandleListContacts)
	contactRoutes.Post("/", h.HandleCreateContact)
	contactRoutes.Get("/:id", h.HandleGetContact)
	contactRoutes.Put("/:id", h.HandleUpdateContact)
	contactRoutes.Delete("/:id", h.HandleDeleteContact)
}

// CreateContactRequest represents the request body for creating a contact.
type CreateContactRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
}

// UpdateContactRequest represents the request body for a partial update.
// Absent fields are left unchanged.
type UpdateContactRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address"`
}

// HandleListContacts lists the caller's contacts with optional search and
// skip/limit pagination.
func (h *ContactHandler) HandleListContacts(c *fiber.Ctx) error {
	owner := middleware.CurrentUser(c)

	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", services.DefaultListLimit)
	search := c.Query("search")

	contacts, err := h.service.ListContacts(owner, skip, limit, search)
	if err != nil {
		log.Printf("Error listing contacts for user %d: %v", owner.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve contacts",
		})
	}
	return c.JSON(contacts)
}

// HandleCreateContact creates a new contact for the caller.
func (h *ContactHandler) HandleCreateContact(c *fiber.Ctx) error {
	owner := middleware.CurrentUser(c)

	var req CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create contact request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	// Validate the contact payload
	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	contact, err := h.service.CreateContact(owner, models.Contact{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
	})
	if err != nil {
		log.Printf("Error creating contact for user %d: %v", owner.ID, err)
		if errors.Is(err, services.ErrInvalidPhoneFormat) || errors.Is(err, services.ErrDuplicatePhone) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not create contact",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create contact",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(contact)
}

// HandleGetContact retrieves a single contact owned by the caller.
func (h *ContactHandler) HandleGetContact(c *fiber.Ctx) error {
	owner := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid contact ID",
		})
	}

	contact, err := h.service.GetContact(owner, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Contact not found",
			})
		}
		log.Printf("Error getting contact %d for user %d: %v", id, owner.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve contact",
		})
	}
	return c.JSON(contact)
}

// HandleUpdateContact applies a partial update to a contact owned by the
// caller.
func (h *ContactHandler) HandleUpdateContact(c *fiber.Ctx) error {
	owner := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid contact ID",
		})
	}

	var req UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update contact request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	// Validate the provided fields
	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	contact, err := h.service.UpdateContact(owner, uint(id), services.ContactUpdate{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContactNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Contact not found",
			})
		case errors.Is(err, services.ErrInvalidPhoneFormat), errors.Is(err, services.ErrDuplicatePhone):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not update contact",
				"error":   err.Error(),
			})
		default:
			log.Printf("Error updating contact %d for user %d: %v", id, owner.ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update contact",
			})
		}
	}
	return c.JSON(contact)
}

// HandleDeleteContact permanently removes a contact owned by the caller.
func (h *ContactHandler) HandleDeleteContact(c *fiber.Ctx) error {
	owner := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid contact ID",
		})
	}

	if err := h.service.DeleteContact(owner, uint(id)); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Contact not found",
			})
		}
		log.Printf("Error deleting contact %d for user %d: %v", id, owner.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete contact",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
