package handlers_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/rakaarfi/jardin-inteligente-client/internal/api/v1/handlers"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service/mocks"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGamificationHandler(t *testing.T) {
	app := newTestApp()
	m := mocks.NewMockGamificationService(t)
	h := handlers.NewGamificationHandler(m)
	api := app.Group("/api/gamification", test_utils.MockJWTMiddleware(testUserID, "rosa"))
	api.Get("/achievements/:userId", h.GetAchievements)
	api.Get("/missions/:userId", h.GetMissions)

	m.On("Achievements", mock.Anything, testUserID).Return(&models.AchievementsResponse{
		Achievements: []models.Achievement{{ID: 1, Name: "First sprout", Points: 10, Unlocked: true}},
		TotalPoints:  10,
	}, nil).Once()
	m.On("Missions", mock.Anything, testUserID).Return(&models.MissionsResponse{
		Missions: []models.Mission{{ID: 1, Title: "Morning round", Target: 2}},
	}, nil).Once()
	m.On("Missions", mock.Anything, 99).Return(nil, service.ErrUserNotFound).Once()

	status, body := send(t, app, jsonRequest(t, http.MethodGet, "/api/gamification/achievements/7", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(10), body["total_points"])

	status, body = send(t, app, jsonRequest(t, http.MethodGet, "/api/gamification/missions/7", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["missions"], 1)

	status, body = send(t, app, jsonRequest(t, http.MethodGet, "/api/gamification/missions/99", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", body["detail"])
}

func TestUploadHandler_Serve(t *testing.T) {
	app := newTestApp()
	m := mocks.NewMockUploadService(t)
	app.Get("/uploads/:name", handlers.NewUploadHandler(m).Serve)

	m.On("Upload", mock.Anything, "abc.png").Return(test_utils.PNGBytes, "image/png", nil).Once()
	m.On("Upload", mock.Anything, "missing.png").Return(nil, "", service.ErrUploadNotFound).Once()

	req, err := http.NewRequest(http.MethodGet, "/uploads/abc.png", http.NoBody)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, test_utils.PNGBytes, data)

	status, body := send(t, app, jsonRequest(t, http.MethodGet, "/uploads/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "File not found", body["detail"])
}
