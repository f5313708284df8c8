// internal/service/diagnosis_service_impl.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"slices"
	"strings"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

// Severities reported by the analysis.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// MinPhotoSide is the smallest width and height (pixels) the photo check accepts.
const MinPhotoSide = 64

const (
	xpDiagnosis      = 15
	pointsDiagnosis  = 5
	pointsFeedback   = 2
	guidanceStepName = "capture"
)

// cannedFinding is one of the fixed analysis outcomes. The photo's hash picks one,
// so the same photo always gets the same diagnosis.
type cannedFinding struct {
	disease         *string
	text            string
	severity        string
	confidence      float64
	recommendations []string
	plan            []models.WeeklyTask
}

func strPtr(s string) *string { return &s }

var findings = []cannedFinding{
	{
		text:       "The plant looks healthy. Leaves are firm and evenly coloured.",
		severity:   SeverityLow,
		confidence: 0.94,
		recommendations: []string{
			"Keep the current watering schedule.",
			"Rotate the pot a quarter turn each week for even growth.",
		},
		plan: []models.WeeklyTask{
			{Day: "Monday", Task: "Water lightly", Priority: "medium"},
			{Day: "Thursday", Task: "Check the soil moisture", Priority: "low"},
		},
	},
	{
		disease:    strPtr("Fungal leaf spot"),
		text:       "Brown spots with yellow halos point to a fungal leaf spot.",
		severity:   SeverityMedium,
		confidence: 0.82,
		recommendations: []string{
			"Remove the affected leaves.",
			"Water at the base and keep the foliage dry.",
			"Improve air circulation around the plant.",
		},
		plan: []models.WeeklyTask{
			{Day: "Monday", Task: "Prune spotted leaves", Priority: "high"},
			{Day: "Wednesday", Task: "Apply a copper-based fungicide", Priority: "high"},
			{Day: "Saturday", Task: "Inspect new growth", Priority: "medium"},
		},
	},
	{
		disease:    strPtr("Root rot"),
		text:       "Wilting with dark, soft stems suggests root rot from overwatering.",
		severity:   SeverityHigh,
		confidence: 0.77,
		recommendations: []string{
			"Stop watering until the top of the soil is dry.",
			"Repot into fresh, well-draining soil.",
			"Trim any black or mushy roots.",
		},
		plan: []models.WeeklyTask{
			{Day: "Monday", Task: "Repot and trim the roots", Priority: "high"},
			{Day: "Friday", Task: "Check drainage", Priority: "medium"},
		},
	},
	{
		disease:    strPtr("Nitrogen deficiency"),
		text:       "Pale older leaves suggest the plant is short on nitrogen.",
		severity:   SeverityLow,
		confidence: 0.71,
		recommendations: []string{
			"Feed with a balanced fertilizer every two weeks.",
		},
		plan: []models.WeeklyTask{
			{Day: "Tuesday", Task: "Fertilize", Priority: "medium"},
		},
	},
}

type diagnosisServiceImpl struct {
	store *Store
}

// NewDiagnosisService creates a new instance of DiagnosisService.
func NewDiagnosisService(store *Store) DiagnosisService {
	return &diagnosisServiceImpl{store: store}
}

// CaptureGuidance checks that the photo decodes and is large enough to analyse.
func (s *diagnosisServiceImpl) CaptureGuidance(ctx context.Context, img []byte) (*models.CaptureGuidance, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		zlog.Debug().Err(err).Msg("Service: Photo could not be decoded during capture guidance")
		return &models.CaptureGuidance{
			Step:     guidanceStepName,
			Message:  "We could not read this photo.",
			Success:  false,
			Guidance: "Take the photo again as a JPEG or PNG.",
		}, nil
	}
	if cfg.Width < MinPhotoSide || cfg.Height < MinPhotoSide {
		return &models.CaptureGuidance{
			Step:     guidanceStepName,
			Message:  fmt.Sprintf("The photo is too small (%dx%d).", cfg.Width, cfg.Height),
			Success:  false,
			Guidance: "Move closer so the plant fills most of the frame.",
		}, nil
	}
	return &models.CaptureGuidance{
		Step:     guidanceStepName,
		Message:  "The photo looks good.",
		Success:  true,
		Guidance: "Leaves are in focus and well lit. You can run the diagnosis.",
	}, nil
}

func (s *diagnosisServiceImpl) Analyze(ctx context.Context, input AnalyzeInput) (*models.Diagnosis, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	// --- Step 1: owner and plant ---
	if _, ok := s.store.accounts[input.UserID]; !ok {
		return nil, ErrUserNotFound
	}
	plant, ok := s.store.plants[input.PlantID]
	if !ok {
		return nil, ErrPlantNotFound
	}

	// --- Step 2: pick the finding ---
	h := fnv.New32a()
	_, _ = h.Write(input.Image)
	f := findings[int(h.Sum32()%uint32(len(findings)))]

	text := f.text
	if input.Symptoms != nil && strings.TrimSpace(*input.Symptoms) != "" {
		text += " Reported symptoms: " + strings.TrimSpace(*input.Symptoms) + "."
	}

	// --- Step 3: store the record ---
	imageURL := s.store.saveUpload(input.Image, input.MIMEType)
	id := s.store.next("diagnosis")
	plantID := plant.ID
	result := models.Diagnosis{
		DiagnosisID:     id,
		DiagnosisText:   text,
		DiseaseName:     f.disease,
		Confidence:      f.confidence,
		Severity:        f.severity,
		Recommendations: slices.Clone(f.recommendations),
		WeeklyPlan:      slices.Clone(f.plan),
	}
	s.store.diagnoses[id] = &diagnosisEntry{
		result: result,
		record: models.DiagnosisRecord{
			ID:              id,
			PlantID:         &plantID,
			PlantName:       plant.Name,
			UserID:          input.UserID,
			DiagnosisText:   text,
			DiseaseName:     f.disease,
			Severity:        f.severity,
			Confidence:      f.confidence,
			ImageURL:        &imageURL,
			Recommendations: slices.Clone(f.recommendations),
			CreatedAt:       s.store.timestamp(),
		},
	}

	// --- Step 4: plant health and rewards ---
	plant.Status, plant.HealthScore = healthFromSeverity(f.severity)
	plant.ImageURL = &imageURL
	a := s.store.activity(input.UserID)
	a.diagnoses++
	a.todayDiagnoses++
	s.store.award(input.UserID, xpDiagnosis, pointsDiagnosis)
	s.store.touch(input.UserID)

	zlog.Info().Int("diagnosis_id", id).Int("plant_id", plantID).Str("severity", f.severity).Msg("Service: Diagnosis stored")
	return &result, nil
}

func (s *diagnosisServiceImpl) Get(ctx context.Context, diagnosisID int) (*models.DiagnosisRecord, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	e, ok := s.store.diagnoses[diagnosisID]
	if !ok {
		return nil, ErrDiagnosisNotFound
	}
	record := e.record
	return &record, nil
}

func (s *diagnosisServiceImpl) History(ctx context.Context, userID, limit int) (*models.DiagnosisHistory, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	records := s.records(func(r models.DiagnosisRecord) bool { return r.UserID == userID })
	return &models.DiagnosisHistory{Diagnoses: utils.Take(records, limit), Total: len(records)}, nil
}

func (s *diagnosisServiceImpl) PlantHistory(ctx context.Context, plantID, limit int) ([]models.DiagnosisRecord, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	if _, ok := s.store.plants[plantID]; !ok {
		return nil, ErrPlantNotFound
	}
	records := s.records(func(r models.DiagnosisRecord) bool { return r.PlantID != nil && *r.PlantID == plantID })
	return utils.Take(records, limit), nil
}

func (s *diagnosisServiceImpl) Feedback(ctx context.Context, diagnosisID, userID int, input *models.DiagnosisFeedbackInput) (*models.DiagnosisFeedbackResponse, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.diagnoses[diagnosisID]; !ok {
		return nil, ErrDiagnosisNotFound
	}
	id := s.store.next("feedback")
	s.store.feedback[id] = *input
	s.store.award(userID, 0, pointsFeedback)

	zlog.Info().Int("diagnosis_id", diagnosisID).Bool("is_correct", input.IsCorrect).Msg("Service: Diagnosis feedback stored")
	return &models.DiagnosisFeedbackResponse{
		Message:    "Thanks! Your feedback helps improve future diagnoses.",
		FeedbackID: id,
		IsCorrect:  input.IsCorrect,
	}, nil
}

// records returns the matching records, newest first.
func (s *diagnosisServiceImpl) records(match func(models.DiagnosisRecord) bool) []models.DiagnosisRecord {
	out := make([]models.DiagnosisRecord, 0)
	for _, e := range s.store.diagnoses {
		if match(e.record) {
			out = append(out, e.record)
		}
	}
	slices.SortFunc(out, func(a, b models.DiagnosisRecord) int { return b.ID - a.ID })
	return out
}
