// internal/apiclient/service.go
package apiclient

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
)

// AnalyzeRequest is the input of a full diagnosis.
type AnalyzeRequest struct {
	PlantID   int
	UserID    int
	ImagePath string
	Symptoms  *string
}

// Service is the backend contract as seen by the repositories. *Client implements it;
// tests use mocks.MockService.
type Service interface {
	BaseURL() string
	ResolveURL(ref string) string
	Health(ctx context.Context) (*models.HealthResponse, error)

	// Auth
	Login(ctx context.Context, input models.LoginInput) (*models.TokenResponse, error)
	Register(ctx context.Context, input models.RegisterInput) (*models.TokenResponse, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) (*models.LogoutResponse, error)
	Refresh(ctx context.Context) (*models.TokenResponse, error)

	// Plants
	UserPlants(ctx context.Context, userID int) ([]models.Plant, error)
	Plant(ctx context.Context, plantID int) (*models.Plant, error)
	CreatePlant(ctx context.Context, input models.PlantCreateInput) (*models.Plant, error)
	UpdatePlant(ctx context.Context, plantID int, input models.PlantUpdateInput) (*models.Plant, error)
	DeletePlant(ctx context.Context, plantID, userID int) (*models.DeletePlantResponse, error)
	WaterPlant(ctx context.Context, plantID int) (*models.CareResponse, error)
	FertilizePlant(ctx context.Context, plantID int) (*models.CareResponse, error)
	ProgressStats(ctx context.Context, userID int) (*models.ProgressStats, error)

	// Diagnosis
	CaptureGuidance(ctx context.Context, imagePath string) (*models.CaptureGuidance, error)
	AnalyzePlant(ctx context.Context, req AnalyzeRequest) (*models.Diagnosis, error)
	Diagnosis(ctx context.Context, diagnosisID int) (*models.DiagnosisRecord, error)
	DiagnosisHistory(ctx context.Context, userID, limit int) (*models.DiagnosisHistory, error)
	PlantDiagnosisHistory(ctx context.Context, plantID, limit int) ([]models.DiagnosisRecord, error)
	SubmitFeedback(ctx context.Context, diagnosisID, userID int, input models.DiagnosisFeedbackInput) (*models.DiagnosisFeedbackResponse, error)

	// Community
	CommunityPosts(ctx context.Context, limit int) ([]models.CommunityPost, error)
	CreatePost(ctx context.Context, userID int, input models.CommunityPostCreateInput) (*models.CommunityPost, error)
	CreatePostWithImage(ctx context.Context, input models.CommunityImagePostInput) (*models.CommunityPost, error)
	ToggleLike(ctx context.Context, postID, userID int) (*models.LikeResponse, error)
	HasLiked(ctx context.Context, postID, userID int) (bool, error)
	Comments(ctx context.Context, postID int) ([]models.Comment, error)
	AddComment(ctx context.Context, postID, userID int, input models.CommentCreateInput) (*models.CommentCreatedResponse, error)

	// Gamification
	Achievements(ctx context.Context, userID int) (*models.AchievementsResponse, error)
	Missions(ctx context.Context, userID int) (*models.MissionsResponse, error)
}

var _ Service = (*Client)(nil)
