// internal/utils/jwt.go
package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	zlog "github.com/rs/zerolog/log"
)

// JwtClaims is the token payload. The subject carries the user id as a string,
// like the backend's tokens do; UserID duplicates it for convenience.
type JwtClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 tokens with a fixed secret.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl, issuer: "jardin-devserver"}
}

// GenerateJWT creates a signed token for the given user.
func (m *JWTManager) GenerateJWT(userID int, username, email string) (string, error) {
	now := time.Now()
	claims := JwtClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(m.secret)
	if err != nil {
		zlog.Error().Err(err).Msg("Error signing JWT token")
		return "", fmt.Errorf("error signing token: %w", err)
	}

	zlog.Debug().Int("user_id", userID).Str("username", username).Msg("Generated JWT token")
	return signedToken, nil
}

// ValidateJWT checks signature, algorithm and expiry and returns the claims.
func (m *JWTManager) ValidateJWT(tokenString string) (*JwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else (including "none") is rejected.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			zlog.Warn().Interface("algorithm", token.Header["alg"]).Msg("Unexpected signing method during JWT validation")
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		zlog.Warn().Err(err).Msg("Error parsing or validating JWT token")
		return nil, fmt.Errorf("error parsing token: %w", err)
	}

	if claims, ok := token.Claims.(*JwtClaims); ok && token.Valid {
		return claims, nil
	}
	zlog.Warn().Msg("Invalid token or claims after parsing")
	return nil, errors.New("invalid token")
}

// ParseUnverifiedClaims decodes the claims of a token without checking its signature.
// The client cannot verify tokens (it has no secret); it only reads exp and the user id
// to decide whether a stored session is worth presenting.
func ParseUnverifiedClaims(tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("error decoding token: %w", err)
	}
	return claims, nil
}

// TokenExpired reports whether the token carries an exp claim in the past.
// Tokens that cannot be decoded or have no exp are treated as opaque and not expired.
func TokenExpired(tokenString string, now time.Time) bool {
	claims, err := ParseUnverifiedClaims(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}

// ExtractToken returns the token from an "Authorization: Bearer <token>" header, or "".
func ExtractToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}

	zlog.Warn().Str("path", c.Path()).Msg("Invalid Authorization header format (Expected 'Bearer <token>')")
	return ""
}

// ExtractUserIDFromJWT returns the user id stored in c.Locals("user") by the auth middleware.
func ExtractUserIDFromJWT(c *fiber.Ctx) (int, error) {
	claims, ok := c.Locals("user").(*JwtClaims)
	if !ok {
		zlog.Error().Str("path", c.Path()).Msg("Could not extract user claims from Fiber context (middleware issue?)")
		return 0, errors.New("could not extract user claims from context")
	}
	return claims.UserID, nil
}

// ExtractIntParam parses a numeric path parameter, e.g. /plants/:id.
func ExtractIntParam(c *fiber.Ctx, paramName string) (int, error) {
	idStr := c.Params(paramName)
	if idStr == "" {
		zlog.Warn().Str("paramName", paramName).Str("path", c.Path()).Msg("Missing parameter in URL path")
		return 0, fmt.Errorf("missing parameter '%s'", paramName)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		zlog.Warn().Err(err).Str("paramName", paramName).Str("value", idStr).Msg("Invalid numeric value for path parameter")
		return 0, fmt.Errorf("invalid parameter '%s': not a number", paramName)
	}
	return id, nil
}

// ExtractIntQuery parses a numeric query parameter (e.g. ?user_id=3). Missing is an error.
func ExtractIntQuery(c *fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, fmt.Errorf("missing query parameter '%s'", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid query parameter '%s': not a number", name)
	}
	return v, nil
}
