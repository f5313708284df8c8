// internal/apiclient/diagnosis.go
package apiclient

import (
	"context"
	"net/http"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
)

// CaptureGuidance uploads a photo for the quality pre-check.
func (c *Client) CaptureGuidance(ctx context.Context, imagePath string) (*models.CaptureGuidance, error) {
	var out models.CaptureGuidance
	form := &multipartForm{imagePath: imagePath}
	if err := c.sendMultipart(ctx, "Photo check", "/api/diagnosis/capture-guidance", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzePlant uploads a photo for a full diagnosis of the given plant.
func (c *Client) AnalyzePlant(ctx context.Context, req AnalyzeRequest) (*models.Diagnosis, error) {
	form := &multipartForm{imagePath: req.ImagePath}
	form.field("plant_id", itoa(req.PlantID))
	form.optionalField("symptoms", req.Symptoms)
	form.field("user_id", itoa(req.UserID))

	var out models.Diagnosis
	if err := c.sendMultipart(ctx, "Diagnosis", "/api/diagnosis/analyze", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Diagnosis(ctx context.Context, diagnosisID int) (*models.DiagnosisRecord, error) {
	var out models.DiagnosisRecord
	if err := c.getJSON(ctx, "Load diagnosis", "/api/diagnosis/"+itoa(diagnosisID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DiagnosisHistory(ctx context.Context, userID, limit int) (*models.DiagnosisHistory, error) {
	var out models.DiagnosisHistory
	if err := c.getJSON(ctx, "Load history", "/api/diagnosis/history/"+itoa(userID), limitQuery(limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PlantDiagnosisHistory(ctx context.Context, plantID, limit int) ([]models.DiagnosisRecord, error) {
	var out []models.DiagnosisRecord
	if err := c.getJSON(ctx, "Load plant history", "/api/diagnosis/plant/"+itoa(plantID)+"/history", limitQuery(limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitFeedback(ctx context.Context, diagnosisID, userID int, input models.DiagnosisFeedbackInput) (*models.DiagnosisFeedbackResponse, error) {
	var out models.DiagnosisFeedbackResponse
	path := "/api/diagnosis/" + itoa(diagnosisID) + "/feedback"
	if err := c.sendJSON(ctx, "Send feedback", http.MethodPost, path, userQuery(userID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
