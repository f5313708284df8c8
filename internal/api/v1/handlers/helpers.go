// internal/api/v1/handlers/helpers.go
package handlers

import (
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

// Detail messages shared by several handlers.
const (
	MsgInvalidBody   = "Invalid request body"
	MsgImageMissing  = "An image file is required"
	MsgImageTooLarge = "Image exceeds the 10 MB limit"
	MsgNotAnImage    = "File must be an image"
	MsgWrongUser     = "Not allowed to act for another user"
	MsgNotAuthUser   = "Not authenticated"
	MsgInternalError = "Internal Server Error"
)

// bindJSON parses and validates a JSON body.
func bindJSON(c *fiber.Ctx, validate *validator.Validate, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		zlog.Warn().Err(err).Str("path", c.Path()).Msg("Handler: Invalid request body")
		return fiber.NewError(fiber.StatusBadRequest, MsgInvalidBody)
	}
	if err := validate.Struct(out); err != nil {
		zlog.Warn().Err(err).Str("path", c.Path()).Msg("Handler: Validation failed")
		return fiber.NewError(fiber.StatusUnprocessableEntity, utils.JoinValidationErrors(err))
	}
	return nil
}

// pathID reads a positive numeric path parameter.
func pathID(c *fiber.Ctx, name string) (int, error) {
	id, err := utils.ExtractIntParam(c, name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// queryUserID reads the positive ?user_id= parameter and checks it names the caller.
func queryUserID(c *fiber.Ctx) (int, error) {
	userID, err := utils.ExtractIntQuery(c, "user_id")
	if err != nil || userID <= 0 {
		return 0, fiber.NewError(fiber.StatusUnprocessableEntity, "user_id must be a positive number")
	}
	return userID, actingUser(c, userID)
}

// formUserID is queryUserID for multipart and urlencoded bodies.
func formUserID(c *fiber.Ctx) (int, error) {
	userID, ok := formInt(c, "user_id")
	if !ok {
		return 0, fiber.NewError(fiber.StatusUnprocessableEntity, "user_id must be a positive number")
	}
	return userID, actingUser(c, userID)
}

// actingUser checks that userID, taken from the request, is the authenticated user.
func actingUser(c *fiber.Ctx, userID int) error {
	current, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, MsgNotAuthUser)
	}
	if current != userID {
		zlog.Warn().Int("user_id", current).Int("requested_user_id", userID).Str("path", c.Path()).Msg("Handler: user id mismatch")
		return fiber.NewError(fiber.StatusForbidden, MsgWrongUser)
	}
	return nil
}

func formInt(c *fiber.Ctx, name string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(c.FormValue(name)))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// optionalForm returns a trimmed form field, or nil when it is absent or blank.
func optionalForm(c *fiber.Ctx, name string) *string {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return nil
	}
	return &v
}

// readImage loads the "image" part of a multipart request and checks its size and type.
func readImage(c *fiber.Ctx) ([]byte, string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		zlog.Warn().Err(err).Str("path", c.Path()).Msg("Handler: Multipart request without image")
		return nil, "", fiber.NewError(fiber.StatusBadRequest, MsgImageMissing)
	}
	if fh.Size > utils.MaxImageBytes {
		return nil, "", fiber.NewError(fiber.StatusRequestEntityTooLarge, MsgImageTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, MsgInvalidBody)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, utils.MaxImageBytes+1))
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, MsgInvalidBody)
	}
	if len(data) > utils.MaxImageBytes {
		return nil, "", fiber.NewError(fiber.StatusRequestEntityTooLarge, MsgImageTooLarge)
	}

	mimeType, ok := utils.SniffImage(data)
	if !ok {
		zlog.Warn().Str("detected", mimeType).Str("path", c.Path()).Msg("Handler: Upload is not an image")
		return nil, "", fiber.NewError(fiber.StatusBadRequest, MsgNotAnImage)
	}
	return data, mimeType, nil
}
