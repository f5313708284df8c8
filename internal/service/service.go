// internal/service/service.go
package service

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
)

// Service layer of the contract stub server. Handlers depend on these interfaces;
// the implementations keep everything in a shared in-memory Store.

// AuthService registers accounts and issues tokens.
type AuthService interface {
	// Register creates an account (bcrypt hash) and logs it in straight away.
	Register(ctx context.Context, input *models.RegisterInput) (*models.TokenResponse, error)
	// Login accepts either the username or the email as identifier.
	Login(ctx context.Context, input *models.LoginInput) (*models.TokenResponse, error)
	// Me returns the account behind a validated token.
	Me(ctx context.Context, userID int) (*models.User, error)
	// Refresh issues a fresh token for the same account.
	Refresh(ctx context.Context, userID int) (*models.TokenResponse, error)
}

// PlantService manages the user's garden.
type PlantService interface {
	UserPlants(ctx context.Context, userID int) ([]models.Plant, error)
	Plant(ctx context.Context, plantID int) (*models.Plant, error)
	// Create adds a plant; with a diagnosis id the diagnosis is linked to the new plant
	// and its severity sets the initial status.
	Create(ctx context.Context, input *models.PlantCreateInput) (*models.Plant, error)
	Update(ctx context.Context, plantID int, input *models.PlantUpdateInput) (*models.Plant, error)
	// Delete only succeeds for the plant's owner.
	Delete(ctx context.Context, plantID, userID int) error
	Water(ctx context.Context, plantID int) (*models.CareResponse, error)
	Fertilize(ctx context.Context, plantID int) (*models.CareResponse, error)
	Progress(ctx context.Context, userID int) (*models.ProgressStats, error)
}

// AnalyzeInput is a diagnosis request as received from the multipart form.
type AnalyzeInput struct {
	PlantID  int
	UserID   int
	Image    []byte
	MIMEType string
	Symptoms *string
}

// DiagnosisService produces canned, deterministic diagnoses.
type DiagnosisService interface {
	CaptureGuidance(ctx context.Context, image []byte) (*models.CaptureGuidance, error)
	Analyze(ctx context.Context, input AnalyzeInput) (*models.Diagnosis, error)
	Get(ctx context.Context, diagnosisID int) (*models.DiagnosisRecord, error)
	History(ctx context.Context, userID, limit int) (*models.DiagnosisHistory, error)
	PlantHistory(ctx context.Context, plantID, limit int) ([]models.DiagnosisRecord, error)
	Feedback(ctx context.Context, diagnosisID, userID int, input *models.DiagnosisFeedbackInput) (*models.DiagnosisFeedbackResponse, error)
}

// ImagePostInput is a photo shared to the feed without a diagnosis.
type ImagePostInput struct {
	UserID      int
	Image       []byte
	MIMEType    string
	Description string
	PlantName   *string
	Symptoms    *string
	IsAnonymous bool
}

// CommunityService runs the feed: posts, likes and comments.
type CommunityService interface {
	Posts(ctx context.Context, limit int) ([]models.CommunityPost, error)
	CreatePost(ctx context.Context, userID int, input *models.CommunityPostCreateInput) (*models.CommunityPost, error)
	CreatePostWithImage(ctx context.Context, input ImagePostInput) (*models.CommunityPost, error)
	// ToggleLike flips the user's like and returns the new total.
	ToggleLike(ctx context.Context, postID, userID int) (*models.LikeResponse, error)
	HasLiked(ctx context.Context, postID, userID int) (bool, error)
	Comments(ctx context.Context, postID int) ([]models.Comment, error)
	AddComment(ctx context.Context, postID, userID int, input *models.CommentCreateInput) (*models.CommentCreatedResponse, error)
}

// GamificationService derives achievements and missions from the user's activity.
type GamificationService interface {
	Achievements(ctx context.Context, userID int) (*models.AchievementsResponse, error)
	Missions(ctx context.Context, userID int) (*models.MissionsResponse, error)
}

// UploadService serves the photos stored by diagnosis and community uploads.
type UploadService interface {
	Upload(ctx context.Context, name string) (data []byte, mimeType string, err error)
}
