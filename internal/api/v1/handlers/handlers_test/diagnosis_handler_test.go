package handlers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/api/v1/handlers"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service/mocks"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupDiagnosisApp(t *testing.T, cfg ...fiber.Config) (*fiber.App, *mocks.MockDiagnosisService) {
	app := newTestApp()
	if len(cfg) > 0 {
		app = fiber.New(cfg[0])
	}
	m := mocks.NewMockDiagnosisService(t)
	h := handlers.NewDiagnosisHandler(m)

	api := app.Group("/api/diagnosis", test_utils.MockJWTMiddleware(testUserID, "rosa"))
	api.Post("/capture-guidance", h.CaptureGuidance)
	api.Post("/analyze", h.Analyze)
	api.Get("/history/:userId", h.GetHistory)
	api.Get("/plant/:plantId/history", h.GetPlantHistory)
	api.Get("/:diagnosisId", h.GetDiagnosis)
	api.Post("/:diagnosisId/feedback", h.SubmitFeedback)
	return app, m
}

func TestDiagnosisHandler_CaptureGuidance(t *testing.T) {
	photo := test_utils.PNGOfSize(t, 128, 96)

	t.Run("Success", func(t *testing.T) {
		app, m := setupDiagnosisApp(t)
		m.On("CaptureGuidance", mock.Anything, photo).Return(&models.CaptureGuidance{Step: "capture", Success: true, Message: "The photo looks good."}, nil).Once()

		status, body := send(t, app, multipartRequest(t, "/api/diagnosis/capture-guidance", nil, photo))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["success"])
	})

	t.Run("Missing Image", func(t *testing.T) {
		app, _ := setupDiagnosisApp(t)
		status, body := send(t, app, multipartRequest(t, "/api/diagnosis/capture-guidance", map[string]string{"note": "x"}, nil))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, handlers.MsgImageMissing, body["detail"])
	})

	t.Run("Not An Image", func(t *testing.T) {
		app, _ := setupDiagnosisApp(t)
		status, body := send(t, app, multipartRequest(t, "/api/diagnosis/capture-guidance", nil, []byte("water on mondays\n")))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, handlers.MsgNotAnImage, body["detail"])
	})

	t.Run("Too Large", func(t *testing.T) {
		app, _ := setupDiagnosisApp(t, fiber.Config{ErrorHandler: handlers.ErrorHandler, BodyLimit: utils.MaxImageBytes + 2<<20})
		huge := append(append([]byte{}, test_utils.PNGBytes...), bytes.Repeat([]byte{0}, utils.MaxImageBytes)...)

		status, body := send(t, app, multipartRequest(t, "/api/diagnosis/capture-guidance", nil, huge))
		assert.Equal(t, http.StatusRequestEntityTooLarge, status)
		assert.Equal(t, handlers.MsgImageTooLarge, body["detail"])
	})
}

func TestDiagnosisHandler_Analyze(t *testing.T) {
	photo := test_utils.PNGOfSize(t, 128, 96)
	disease := "Fungal leaf spot"
	symptoms := "yellow spots"

	tests := []struct {
		name           string
		fields         map[string]string
		image          []byte
		setupMock      func(m *mocks.MockDiagnosisService)
		expectedStatus int
		expectedDetail string
	}{
		{
			name:   "Success",
			fields: map[string]string{"plant_id": "3", "user_id": "7", "symptoms": " yellow spots "},
			image:  photo,
			setupMock: func(m *mocks.MockDiagnosisService) {
				m.On("Analyze", mock.Anything, service.AnalyzeInput{
					PlantID:  3,
					UserID:   testUserID,
					Image:    photo,
					MIMEType: "image/png",
					Symptoms: &symptoms,
				}).Return(&models.Diagnosis{DiagnosisID: 21, DiseaseName: &disease, Severity: "medium", Confidence: 0.82}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing plant_id",
			fields:         map[string]string{"user_id": "7"},
			image:          photo,
			setupMock:      func(m *mocks.MockDiagnosisService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedDetail: "plant_id must be a positive number",
		},
		{
			name:           "Other User",
			fields:         map[string]string{"plant_id": "3", "user_id": "8"},
			image:          photo,
			setupMock:      func(m *mocks.MockDiagnosisService) {},
			expectedStatus: http.StatusForbidden,
			expectedDetail: handlers.MsgWrongUser,
		},
		{
			name:   "Unknown Plant",
			fields: map[string]string{"plant_id": "99", "user_id": "7"},
			image:  photo,
			setupMock: func(m *mocks.MockDiagnosisService) {
				m.On("Analyze", mock.Anything, mock.AnythingOfType("service.AnalyzeInput")).Return(nil, service.ErrPlantNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedDetail: "Plant not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, m := setupDiagnosisApp(t)
			tc.setupMock(m)

			status, body := send(t, app, multipartRequest(t, "/api/diagnosis/analyze", tc.fields, tc.image))
			assert.Equal(t, tc.expectedStatus, status)
			if tc.expectedDetail != "" {
				assert.Equal(t, tc.expectedDetail, body["detail"])
			} else {
				assert.Equal(t, float64(21), body["diagnosis_id"])
				assert.Equal(t, "medium", body["severity"])
			}
		})
	}
}

func TestDiagnosisHandler_History(t *testing.T) {
	app, m := setupDiagnosisApp(t)
	m.On("History", mock.Anything, testUserID, 5).Return(&models.DiagnosisHistory{
		Diagnoses: []models.DiagnosisRecord{{ID: 2, PlantName: "Ficus"}},
		Total:     9,
	}, nil).Once()
	m.On("PlantHistory", mock.Anything, 3, utils.DefaultHistoryLimit).Return([]models.DiagnosisRecord{{ID: 2}, {ID: 1}}, nil).Once()

	status, body := send(t, app, jsonRequest(t, http.MethodGet, "/api/diagnosis/history/7?limit=5", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(9), body["total"])

	status, records := sendList(t, app, jsonRequest(t, http.MethodGet, "/api/diagnosis/plant/3/history", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, records, 2)
}

func TestDiagnosisHandler_GetDiagnosis(t *testing.T) {
	app, m := setupDiagnosisApp(t)
	m.On("Get", mock.Anything, 21).Return(&models.DiagnosisRecord{ID: 21, Severity: "high"}, nil).Once()
	m.On("Get", mock.Anything, 22).Return(nil, service.ErrDiagnosisNotFound).Once()

	status, body := send(t, app, jsonRequest(t, http.MethodGet, "/api/diagnosis/21", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "high", body["severity"])

	status, body = send(t, app, jsonRequest(t, http.MethodGet, "/api/diagnosis/22", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Diagnosis not found", body["detail"])
}

func TestDiagnosisHandler_SubmitFeedback(t *testing.T) {
	app, m := setupDiagnosisApp(t)
	input := models.DiagnosisFeedbackInput{IsCorrect: true}
	m.On("Feedback", mock.Anything, 21, testUserID, &input).Return(&models.DiagnosisFeedbackResponse{Message: "Thanks!", FeedbackID: 1, IsCorrect: true}, nil).Once()

	status, body := send(t, app, jsonRequest(t, http.MethodPost, "/api/diagnosis/21/feedback?user_id=7", input))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["feedback_id"])

	status, body = send(t, app, jsonRequest(t, http.MethodPost, "/api/diagnosis/21/feedback?user_id=8", input))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, handlers.MsgWrongUser, body["detail"])
}
