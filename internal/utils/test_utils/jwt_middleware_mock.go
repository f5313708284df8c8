// internal/utils/test_utils/jwt_middleware_mock.go
package test_utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
)

// MockJWTMiddleware stands in for middleware.Protected: it stores claims for the
// given user in c.Locals("user") without looking at any header.
func MockJWTMiddleware(userID int, username string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := &utils.JwtClaims{
			UserID:   userID,
			Username: username,
		}
		c.Locals("user", claims)
		return c.Next()
	}
}
