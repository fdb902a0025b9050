package middleware

import (
	"log"
	"strings"

	"phonebook/internal/models"
	"phonebook/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CurrentUserKey is the Fiber locals key under which AuthRequired stores the
// resolved *models.User.
const CurrentUserKey = "current_user"

// AuthRequired is a Fiber middleware that checks for a valid bearer token
// and resolves it to the owning user. Handlers behind it can rely on
// CurrentUser returning a non-nil user.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		user, err := authService.CurrentUser(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		// Store the resolved user in Fiber context for subsequent handlers
		c.Locals(CurrentUserKey, user)

		return c.Next()
	}
}

// CurrentUser retrieves the user resolved by AuthRequired from the request
// context. It returns nil when the middleware did not run.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(CurrentUserKey).(*models.User)
	return user
}
