// internal/repository/errors.go
package repository

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
	"github.com/rakaarfi/jardin-inteligente-client/internal/session"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

// User-facing messages.
const (
	MsgNetwork        = "Cannot reach the server. Check your connection."
	MsgTimeout        = "The server took too long to respond. Try again."
	MsgMalformed      = "Unexpected response from the server."
	MsgCanceled       = "Request cancelled."
	MsgNoSession      = "No active session"
	MsgSessionExpired = "Session expired"
	MsgImageTooLarge  = "The photo is larger than 10 MB. Choose a smaller image."
	MsgNotAnImage     = "The selected file is not an image."
	MsgImageMissing   = "The selected image could not be found."
)

// Describe maps an error from the API client (or local validation) to the message
// shown to the user and the HTTP status behind it (0 when there is none).
func Describe(err error) (string, int) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return utils.JoinValidationErrors(err), 0
	}
	if errors.Is(err, session.ErrNoSession) {
		return MsgNoSession, 0
	}

	apiErr, ok := apiclient.AsError(err)
	if !ok {
		return "Unexpected error: " + err.Error(), 0
	}

	switch apiErr.Kind {
	case apiclient.KindNetwork:
		return MsgNetwork, 0
	case apiclient.KindTimeout:
		return MsgTimeout, 0
	case apiclient.KindCanceled:
		return MsgCanceled, 0
	case apiclient.KindDecode:
		return MsgMalformed, apiErr.Status
	case apiclient.KindHTTP:
		if apiErr.Detail != "" {
			return apiErr.Detail, apiErr.Status
		}
		return fmt.Sprintf("%s failed (%d)", apiErr.Op, apiErr.Status), apiErr.Status
	case apiclient.KindInvalid:
		switch {
		case errors.Is(err, utils.ErrImageTooLarge):
			return MsgImageTooLarge, 0
		case errors.Is(err, utils.ErrNotAnImage):
			return MsgNotAnImage, 0
		case errors.Is(err, fs.ErrNotExist):
			return MsgImageMissing, 0
		}
	}
	return "Unexpected error: " + err.Error(), 0
}

// failure converts err into an Error result and logs it.
func failure[T any](op string, err error) result.Result[T] {
	msg, code := Describe(err)
	zlog.Warn().Err(err).Str("op", op).Int("code", code).Str("message", msg).Msg("Repository: call failed")
	return result.Failure[T](msg, code)
}
