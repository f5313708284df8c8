// internal/api/v1/handlers/auth_handler.go
package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/middleware"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

type AuthHandler struct {
	AuthService service.AuthService
	Validate    *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		AuthService: authService,
		Validate:    utils.NewValidator(),
	}
}

// Register godoc
// @Summary Register New User
// @Description Creates an account and returns a token for it.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param register body models.RegisterInput true "User Registration Details"
// @Success 201 {object} models.TokenResponse
// @Failure 400 {object} models.APIError "Username or email already registered"
// @Failure 422 {object} models.APIError "Validation failed"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	input := new(models.RegisterInput)
	if err := bindJSON(c, h.Validate, input); err != nil {
		return err
	}

	resp, err := h.AuthService.Register(c.Context(), input)
	if err != nil {
		return serviceError("register", err)
	}

	zlog.Info().Int("userID", resp.User.ID).Str("username", input.Username).Msg("Handler: User registered successfully via service")
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login godoc
// @Summary User Login
// @Description Authenticates with username or email and returns a JWT.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param login body models.LoginInput true "Login Credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} models.APIError "Incorrect username/email or password"
// @Failure 422 {object} models.APIError "Validation failed"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	input := new(models.LoginInput)
	if err := bindJSON(c, h.Validate, input); err != nil {
		return err
	}

	resp, err := h.AuthService.Login(c.Context(), input)
	if err != nil {
		return serviceError("login", err)
	}

	zlog.Info().Str("username", resp.User.Username).Msg("Handler: User logged in successfully via service")
	return c.JSON(resp)
}

// Me godoc
// @Summary Current User
// @Description Returns the account behind the bearer token.
// @Tags Authentication
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.User
// @Failure 401 {object} models.APIError "Could not validate credentials"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, middleware.MsgNotAuthenticated)
	}

	user, err := h.AuthService.Me(c.Context(), userID)
	if err != nil {
		// A valid token for an account that no longer exists (the stub forgets
		// everything on restart) is treated as a bad token.
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, middleware.MsgInvalidCredentials)
		}
		return serviceError("me", err)
	}
	return c.JSON(user)
}

// Logout godoc
// @Summary Logout
// @Description Tokens are stateless; the endpoint only acknowledges the logout.
// @Tags Authentication
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.LogoutResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, middleware.MsgNotAuthenticated)
	}
	zlog.Info().Int("user_id", userID).Msg("Handler: User logged out")
	return c.JSON(models.LogoutResponse{Message: "Successfully logged out", UserID: userID})
}

// Refresh godoc
// @Summary Refresh Token
// @Tags Authentication
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} models.APIError
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, middleware.MsgNotAuthenticated)
	}

	resp, err := h.AuthService.Refresh(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, middleware.MsgInvalidCredentials)
		}
		return serviceError("refresh", err)
	}
	return c.JSON(resp)
}
