// internal/api/v1/handlers/diagnosis_handler.go
package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

type DiagnosisHandler struct {
	DiagnosisService service.DiagnosisService
	Validate         *validator.Validate
}

func NewDiagnosisHandler(diagnosisService service.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{
		DiagnosisService: diagnosisService,
		Validate:         utils.NewValidator(),
	}
}

// CaptureGuidance godoc
// @Summary Photo Pre-check
// @Description Tells whether the photo is good enough for a diagnosis.
// @Tags Diagnosis
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param image formData file true "Plant photo (max 10 MB)"
// @Success 200 {object} models.CaptureGuidance
// @Failure 400 {object} models.APIError "Missing image or not an image"
// @Failure 413 {object} models.APIError "Image too large"
// @Router /api/diagnosis/capture-guidance [post]
func (h *DiagnosisHandler) CaptureGuidance(c *fiber.Ctx) error {
	data, _, err := readImage(c)
	if err != nil {
		return err
	}
	guidance, err := h.DiagnosisService.CaptureGuidance(c.Context(), data)
	if err != nil {
		return serviceError("capture guidance", err)
	}
	return c.JSON(guidance)
}

// Analyze godoc
// @Summary Diagnose Plant
// @Tags Diagnosis
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param image formData file true "Plant photo (max 10 MB)"
// @Param plant_id formData int true "Plant ID"
// @Param user_id formData int true "User ID"
// @Param symptoms formData string false "Symptoms noticed by the user"
// @Success 200 {object} models.Diagnosis
// @Failure 404 {object} models.APIError "Plant not found"
// @Router /api/diagnosis/analyze [post]
func (h *DiagnosisHandler) Analyze(c *fiber.Ctx) error {
	plantID, ok := formInt(c, "plant_id")
	if !ok {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "plant_id must be a positive number")
	}
	userID, err := formUserID(c)
	if err != nil {
		return err
	}
	data, mimeType, err := readImage(c)
	if err != nil {
		return err
	}

	diagnosis, err := h.DiagnosisService.Analyze(c.Context(), service.AnalyzeInput{
		PlantID:  plantID,
		UserID:   userID,
		Image:    data,
		MIMEType: mimeType,
		Symptoms: optionalForm(c, "symptoms"),
	})
	if err != nil {
		return serviceError("analyze", err)
	}
	zlog.Info().Int("diagnosis_id", diagnosis.DiagnosisID).Int("plant_id", plantID).Msg("Handler: Diagnosis completed")
	return c.JSON(diagnosis)
}

// GetDiagnosis godoc
// @Summary Get Diagnosis
// @Tags Diagnosis
// @Produce json
// @Security ApiKeyAuth
// @Param diagnosisId path int true "Diagnosis ID"
// @Success 200 {object} models.DiagnosisRecord
// @Failure 404 {object} models.APIError
// @Router /api/diagnosis/{diagnosisId} [get]
func (h *DiagnosisHandler) GetDiagnosis(c *fiber.Ctx) error {
	id, err := pathID(c, "diagnosisId")
	if err != nil {
		return err
	}
	record, err := h.DiagnosisService.Get(c.Context(), id)
	if err != nil {
		return serviceError("get diagnosis", err)
	}
	return c.JSON(record)
}

// GetHistory godoc
// @Summary Diagnosis History
// @Tags Diagnosis
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "User ID"
// @Param limit query int false "Max records (default 50, max 100)"
// @Success 200 {object} models.DiagnosisHistory
// @Router /api/diagnosis/history/{userId} [get]
func (h *DiagnosisHandler) GetHistory(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	limit := utils.ParseLimitParam(c, utils.DefaultHistoryLimit)

	history, err := h.DiagnosisService.History(c.Context(), userID, limit)
	if err != nil {
		return serviceError("history", err)
	}
	return c.JSON(history)
}

// GetPlantHistory godoc
// @Summary Plant Diagnosis History
// @Tags Diagnosis
// @Produce json
// @Security ApiKeyAuth
// @Param plantId path int true "Plant ID"
// @Param limit query int false "Max records (default 50, max 100)"
// @Success 200 {array} models.DiagnosisRecord
// @Router /api/diagnosis/plant/{plantId}/history [get]
func (h *DiagnosisHandler) GetPlantHistory(c *fiber.Ctx) error {
	plantID, err := pathID(c, "plantId")
	if err != nil {
		return err
	}
	limit := utils.ParseLimitParam(c, utils.DefaultHistoryLimit)

	records, err := h.DiagnosisService.PlantHistory(c.Context(), plantID, limit)
	if err != nil {
		return serviceError("plant history", err)
	}
	return c.JSON(records)
}

// SubmitFeedback godoc
// @Summary Diagnosis Feedback
// @Tags Diagnosis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param diagnosisId path int true "Diagnosis ID"
// @Param user_id query int true "User ID"
// @Param feedback body models.DiagnosisFeedbackInput true "Feedback"
// @Success 200 {object} models.DiagnosisFeedbackResponse
// @Router /api/diagnosis/{diagnosisId}/feedback [post]
func (h *DiagnosisHandler) SubmitFeedback(c *fiber.Ctx) error {
	id, err := pathID(c, "diagnosisId")
	if err != nil {
		return err
	}
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}
	input := new(models.DiagnosisFeedbackInput)
	if err := bindJSON(c, h.Validate, input); err != nil {
		return err
	}

	resp, err := h.DiagnosisService.Feedback(c.Context(), id, userID, input)
	if err != nil {
		return serviceError("feedback", err)
	}
	return c.JSON(resp)
}
