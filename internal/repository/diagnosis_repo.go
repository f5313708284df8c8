// internal/repository/diagnosis_repo.go
package repository

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
	zlog "github.com/rs/zerolog/log"
)

type diagnosisRepo struct {
	api apiclient.Service
}

func NewDiagnosisRepository(api apiclient.Service) DiagnosisRepository {
	return &diagnosisRepo{api: api}
}

func (r *diagnosisRepo) ValidatePhoto(ctx context.Context, imagePath string) result.Result[models.CaptureGuidance] {
	guidance, err := r.api.CaptureGuidance(ctx, imagePath)
	if err != nil {
		return failure[models.CaptureGuidance]("validate photo", err)
	}
	return result.Success(*guidance)
}

func (r *diagnosisRepo) AnalyzePlant(ctx context.Context, req apiclient.AnalyzeRequest) result.Result[models.Diagnosis] {
	diagnosis, err := r.api.AnalyzePlant(ctx, req)
	if err != nil {
		return failure[models.Diagnosis]("analyze plant", err)
	}
	diagnosis.AudioURL = r.resolve(diagnosis.AudioURL)
	return result.Success(*diagnosis)
}

func (r *diagnosisRepo) Get(ctx context.Context, diagnosisID int) result.Result[models.DiagnosisRecord] {
	record, err := r.api.Diagnosis(ctx, diagnosisID)
	if err != nil {
		return failure[models.DiagnosisRecord]("diagnosis", err)
	}
	record.ImageURL = r.resolve(record.ImageURL)
	return result.Success(*record)
}

func (r *diagnosisRepo) History(ctx context.Context, userID, limit int) result.Result[models.DiagnosisHistory] {
	history, err := r.api.DiagnosisHistory(ctx, userID, limit)
	if err != nil {
		return failure[models.DiagnosisHistory]("diagnosis history", err)
	}
	if history.Diagnoses == nil {
		history.Diagnoses = []models.DiagnosisRecord{}
	}
	for i := range history.Diagnoses {
		history.Diagnoses[i].ImageURL = r.resolve(history.Diagnoses[i].ImageURL)
	}
	return result.Success(*history)
}

func (r *diagnosisRepo) PlantHistory(ctx context.Context, plantID, limit int) result.Result[[]models.DiagnosisRecord] {
	records, err := r.api.PlantDiagnosisHistory(ctx, plantID, limit)
	if err != nil {
		zlog.Warn().Err(err).Int("plant_id", plantID).Msg("Repository: plant history unavailable, showing none")
		return result.Success([]models.DiagnosisRecord{})
	}
	if records == nil {
		records = []models.DiagnosisRecord{}
	}
	for i := range records {
		records[i].ImageURL = r.resolve(records[i].ImageURL)
	}
	return result.Success(records)
}

func (r *diagnosisRepo) SubmitFeedback(ctx context.Context, diagnosisID, userID int, input models.DiagnosisFeedbackInput) result.Result[models.DiagnosisFeedbackResponse] {
	resp, err := r.api.SubmitFeedback(ctx, diagnosisID, userID, input)
	if err != nil {
		return failure[models.DiagnosisFeedbackResponse]("diagnosis feedback", err)
	}
	return result.Success(*resp)
}

func (r *diagnosisRepo) resolve(ref *string) *string {
	if ref == nil || *ref == "" {
		return ref
	}
	abs := r.api.ResolveURL(*ref)
	return &abs
}
