package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(mgr *utils.JWTManager) *fiber.App {
	app := fiber.New()
	app.Get("/users/:userId/plants", Protected(mgr), SameUser("userId"), func(c *fiber.Ctx) error {
		claims := c.Locals("user").(*utils.JwtClaims)
		return c.JSON(fiber.Map{"user_id": claims.UserID})
	})
	return app
}

func detailOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body models.APIError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Detail
}

func TestProtectedAndSameUser(t *testing.T) {
	mgr := utils.NewJWTManager("garden-secret", time.Hour)
	valid, err := mgr.GenerateJWT(7, "rosa", "rosa@example.com")
	require.NoError(t, err)
	foreign, err := utils.NewJWTManager("other-secret", time.Hour).GenerateJWT(7, "rosa", "rosa@example.com")
	require.NoError(t, err)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, utils.JwtClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("garden-secret"))
	require.NoError(t, err)

	tests := []struct {
		name           string
		path           string
		authHeader     string
		expectedStatus int
		expectedDetail string
	}{
		{name: "No Token", path: "/users/7/plants", expectedStatus: http.StatusUnauthorized, expectedDetail: MsgNotAuthenticated},
		{name: "Wrong Scheme", path: "/users/7/plants", authHeader: "Basic " + valid, expectedStatus: http.StatusUnauthorized, expectedDetail: MsgNotAuthenticated},
		{name: "Foreign Signature", path: "/users/7/plants", authHeader: "Bearer " + foreign, expectedStatus: http.StatusUnauthorized, expectedDetail: MsgInvalidCredentials},
		{name: "Expired", path: "/users/7/plants", authHeader: "Bearer " + expired, expectedStatus: http.StatusUnauthorized, expectedDetail: MsgInvalidCredentials},
		{name: "Other User", path: "/users/8/plants", authHeader: "Bearer " + valid, expectedStatus: http.StatusForbidden, expectedDetail: MsgForbiddenUser},
		{name: "Bad Param", path: "/users/me/plants", authHeader: "Bearer " + valid, expectedStatus: http.StatusBadRequest, expectedDetail: "Invalid userId"},
		{name: "Success", path: "/users/7/plants", authHeader: "Bearer " + valid, expectedStatus: http.StatusOK},
	}

	app := newProtectedApp(mgr)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			if tc.expectedDetail != "" {
				assert.Equal(t, tc.expectedDetail, detailOf(t, resp))
			}
		})
	}
}

func TestSameUser_WithoutProtected(t *testing.T) {
	app := fiber.New()
	app.Get("/users/:userId", SameUser("userId"), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/7", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, MsgNotAuthenticated, detailOf(t, resp))
}
