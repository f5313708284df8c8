// internal/api/v1/handlers/error_handler.go
package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrorHandler is the app-wide Fiber error handler. Every error leaves as
// {"detail": "..."}, the shape the client parses.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := MsgInternalError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		code = fiber.StatusUnprocessableEntity
		message = utils.JoinValidationErrors(ve)
	}

	var event *zerolog.Event
	if code >= fiber.StatusInternalServerError {
		event = log.Error()
	} else {
		event = log.Warn()
	}
	event.Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status_sent", code).
		Msg("Error occurred during request processing")

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Status(code).JSON(models.APIError{Detail: message})
}

// serviceError turns a service sentinel into the HTTP error the client expects.
// Anything unknown is a 500 and is logged with the operation name.
func serviceError(op string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, "Incorrect username/email or password")
	case errors.Is(err, service.ErrUsernameOrEmailExists):
		return fiber.NewError(fiber.StatusBadRequest, "Username or email already registered")
	case errors.Is(err, service.ErrUserNotFound):
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrPlantNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Plant not found")
	case errors.Is(err, service.ErrNotPlantOwner):
		return fiber.NewError(fiber.StatusForbidden, "Not allowed to modify this plant")
	case errors.Is(err, service.ErrDiagnosisNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Diagnosis not found")
	case errors.Is(err, service.ErrPostNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Post not found")
	case errors.Is(err, service.ErrUploadNotFound):
		return fiber.NewError(fiber.StatusNotFound, "File not found")
	default:
		log.Error().Err(err).Str("op", op).Msg("Handler: Unexpected service error")
		return fiber.NewError(fiber.StatusInternalServerError, MsgInternalError)
	}
}
