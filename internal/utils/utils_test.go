package utils_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckImageFile(t *testing.T) {
	t.Run("Valid PNG", func(t *testing.T) {
		img, err := utils.CheckImageFile(test_utils.WritePNG(t))
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.MIMEType)
		assert.Equal(t, int64(len(test_utils.PNGBytes)), img.Size)
	})

	t.Run("Oversized", func(t *testing.T) {
		_, err := utils.CheckImageFile(test_utils.WriteOversizedPNG(t))
		assert.ErrorIs(t, err, utils.ErrImageTooLarge)
	})

	t.Run("Not an image", func(t *testing.T) {
		_, err := utils.CheckImageFile(test_utils.WriteTextFile(t))
		assert.ErrorIs(t, err, utils.ErrNotAnImage)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := utils.CheckImageFile("/nonexistent/leaf.png")
		assert.Error(t, err)
	})
}

func TestSniffImage(t *testing.T) {
	mime, ok := utils.SniffImage(test_utils.PNGBytes)
	assert.True(t, ok)
	assert.Equal(t, "image/png", mime)

	_, ok = utils.SniffImage([]byte("hello"))
	assert.False(t, ok)
}

func TestValidator(t *testing.T) {
	v := utils.NewValidator()

	tests := []struct {
		name      string
		input     interface{}
		wantField string
	}{
		{name: "Valid login", input: models.LoginInput{EmailOrUsername: "ana", Password: "x"}},
		{name: "Missing password", input: models.LoginInput{EmailOrUsername: "ana"}, wantField: "password"},
		{name: "Blank plant name", input: models.PlantCreateInput{Name: "   ", UserID: 1}, wantField: "name"},
		{name: "Bad email", input: models.RegisterInput{Username: "ana", Email: "nope", Password: "secret1"}, wantField: "email"},
		{name: "Blank comment", input: models.CommentCreateInput{Content: "\t"}, wantField: "content"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.input)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, utils.FormatValidationErrors(err), tc.wantField)
		})
	}
}

func TestJoinValidationErrors(t *testing.T) {
	err := utils.NewValidator().Struct(models.RegisterInput{})
	require.Error(t, err)
	msg := utils.JoinValidationErrors(err)
	assert.Contains(t, msg, "email is required.")
	assert.Contains(t, msg, "username is required.")

	assert.Equal(t, "Invalid input data or incorrect format.", utils.JoinValidationErrors(assert.AnError))
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := utils.NewJWTManager("test-secret", time.Hour)
	token, err := m.GenerateJWT(7, "ana", "ana@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "7", claims.Subject)

	_, err = utils.NewJWTManager("other-secret", time.Hour).ValidateJWT(token)
	assert.Error(t, err, "token signed with another secret must be rejected")

	unverified, err := utils.ParseUnverifiedClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "ana", unverified.Username)
}

func TestTokenExpired(t *testing.T) {
	token, err := utils.NewJWTManager("s", time.Hour).GenerateJWT(1, "ana", "")
	require.NoError(t, err)

	assert.False(t, utils.TokenExpired(token, time.Now()))
	assert.True(t, utils.TokenExpired(token, time.Now().Add(2*time.Hour)))
	assert.False(t, utils.TokenExpired("opaque-token", time.Now()), "opaque tokens are not judged")
}

func TestParseLimitParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 20},
		{query: "?limit=5", want: 5},
		{query: "?limit=abc", want: 20},
		{query: "?limit=0", want: 20},
		{query: "?limit=1000", want: utils.MaxLimit},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			app := fiber.New()
			var got int
			app.Get("/posts", func(c *fiber.Ctx) error {
				got = utils.ParseLimitParam(c, utils.DefaultFeedLimit)
				return c.SendStatus(fiber.StatusOK)
			})
			resp, err := app.Test(httptest.NewRequest("GET", "/posts"+tc.query, nil), -1)
			require.NoError(t, err)
			_, _ = io.Copy(io.Discard, resp.Body)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTake(t *testing.T) {
	assert.Equal(t, []int{1, 2}, utils.Take([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1, 2, 3}, utils.Take([]int{1, 2, 3}, 0))
}
