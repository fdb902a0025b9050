package services

import "errors"

// Domain errors returned by the services. Handlers translate them into HTTP
// status codes with errors.Is; everything else is treated as an internal
// failure.
var (
	// ErrUsernameTaken and ErrEmailTaken are registration conflicts.
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so login failures do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUnauthorized covers every token failure: bad signature, expired,
	// malformed claims, or a subject that no longer matches a user.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrInvalidPhoneFormat indicates a phone number that does not survive
	// normalization.
	ErrInvalidPhoneFormat = errors.New("invalid phone number format")

	// ErrDuplicatePhone indicates the owner already has a contact with the
	// same normalized phone number.
	ErrDuplicatePhone = errors.New("phone number already exists")

	// ErrContactNotFound indicates no contact with the requested ID is owned
	// by the calling user.
	ErrContactNotFound = errors.New("contact not found")
)
