// internal/middleware/auth.go
package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

// Messages sent in the "detail" field, worded like the backend's.
const (
	MsgNotAuthenticated   = "Not authenticated"
	MsgInvalidCredentials = "Could not validate credentials"
	MsgForbiddenUser      = "Not allowed to access another user's data"
)

// Protected makes sure the request carries a valid bearer token and stores the
// claims in c.Locals("user"). It must run before any handler that reads the user.
func Protected(jwt *utils.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// --- 1. Token from the Authorization header ---
		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			zlog.Warn().Str("path", c.Path()).Str("ip", c.IP()).Msg("Protected route access attempt without token")
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIError{Detail: MsgNotAuthenticated})
		}

		// --- 2. Signature, algorithm and expiry ---
		claims, err := jwt.ValidateJWT(tokenString)
		if err != nil {
			zlog.Warn().Err(err).Str("path", c.Path()).Str("ip", c.IP()).Msg("Protected route access attempt with invalid token")
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIError{Detail: MsgInvalidCredentials})
		}

		c.Locals("user", claims)
		zlog.Debug().Str("username", claims.Username).Int("user_id", claims.UserID).Msg("JWT authenticated, proceeding")
		return c.Next()
	}
}

// SameUser rejects requests whose numeric path parameter param names a user other
// than the authenticated one. Protected must run first.
func SameUser(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*utils.JwtClaims)
		if !ok {
			zlog.Error().Str("path", c.Path()).Str("ip", c.IP()).Msg("User claims not found in context during authorization. Ensure Protected middleware runs first.")
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIError{Detail: MsgNotAuthenticated})
		}

		requested, err := strconv.Atoi(c.Params(param))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.APIError{Detail: "Invalid " + param})
		}

		if requested != claims.UserID {
			zlog.Warn().Int("user_id", claims.UserID).Int("requested_user_id", requested).Str("path", c.Path()).Msg("Authorization failed: user id mismatch")
			return c.Status(fiber.StatusForbidden).JSON(models.APIError{Detail: MsgForbiddenUser})
		}
		return c.Next()
	}
}
