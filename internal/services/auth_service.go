package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"phonebook/internal/models"
	"phonebook/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService. tokenTTL bounds the lifetime of
// every issued token.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns a
// signed access token for them. It fails with ErrUsernameTaken or
// ErrEmailTaken when the account already exists.
func (s *AuthService) Register(username, email, password string) (string, error) {
	// Pre-check for friendlier errors. The unique indexes in the store are
	// what actually guarantee uniqueness under concurrent registrations.
	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return "", fmt.Errorf("%w: %s", ErrUsernameTaken, username)
	}
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return "", fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			// A concurrent request won the race after our pre-checks; report
			// whichever field collided.
			if taken, lookupErr := s.userRepo.GetByUsername(username); lookupErr == nil && taken != nil {
				return "", fmt.Errorf("%w: %s", ErrUsernameTaken, username)
			}
			return "", fmt.Errorf("%w: %s", ErrEmailTaken, email)
		}
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	return s.generateToken(user.Username)
}

// Login authenticates a user and returns a freshly signed access token.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return "", ErrInvalidCredentials
	}

	// bcrypt comparison is constant-time; the plaintext is never compared.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(user.Username)
}

// CurrentUser verifies a bearer token and resolves it to the user it was
// issued for. Any failure (bad signature, expired token, unknown subject)
// yields ErrUnauthorized. It performs no writes.
func (s *AuthService) CurrentUser(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrUnauthorized)
	}

	user, err := s.userRepo.GetByUsername(subject)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown subject", ErrUnauthorized)
	}
	return user, nil
}

// generateToken signs a token carrying the username as subject, expiring
// after the configured TTL.
func (s *AuthService) generateToken(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": now.Add(s.tokenTTL).Unix(),
		"iat": now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}
