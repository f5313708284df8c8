// internal/repository/repository.go
package repository

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
)

// Repositories are the only layer that talks to apiclient. Every method returns a
// result.Result and never an error: transport failures become user-facing messages
// (see Describe). No caching: each call goes to the backend.

// Unit is the payload of results that carry no data.
type Unit = struct{}

// ====================================================================================
// Auth Repository
// ====================================================================================

type AuthRepository interface {
	// Login validates the form, signs in and persists the session.
	Login(ctx context.Context, emailOrUsername, password string) result.Result[models.User]

	// Register creates the account and persists the session like Login.
	Register(ctx context.Context, input models.RegisterInput) result.Result[models.User]

	// CurrentUser fetches the signed-in user. A 401 clears the stored session.
	CurrentUser(ctx context.Context) result.Result[models.User]

	// Logout tells the backend (best effort) and clears the session regardless.
	Logout(ctx context.Context) result.Result[Unit]

	// Refresh exchanges the current token for a new one.
	Refresh(ctx context.Context) result.Result[models.User]

	ClearSession(ctx context.Context)
	Token() string
	UserID() int
	Username() string
	IsLoggedIn() bool
}

// ====================================================================================
// Plant Repository
// ====================================================================================

type PlantRepository interface {
	UserPlants(ctx context.Context, userID int) result.Result[[]models.Plant]
	Plant(ctx context.Context, plantID int) result.Result[models.Plant]
	Create(ctx context.Context, input models.PlantCreateInput) result.Result[models.Plant]

	// CreateFromDiagnosis creates a plant linked to the diagnosis it was first seen in.
	CreateFromDiagnosis(ctx context.Context, userID, diagnosisID int, name string, species, location *string) result.Result[models.Plant]

	Update(ctx context.Context, plantID int, input models.PlantUpdateInput) result.Result[models.Plant]
	Delete(ctx context.Context, plantID, userID int) result.Result[models.DeletePlantResponse]
	Water(ctx context.Context, plantID int) result.Result[models.CareResponse]
	Fertilize(ctx context.Context, plantID int) result.Result[models.CareResponse]
	ProgressStats(ctx context.Context, userID int) result.Result[models.ProgressStats]
}

// ====================================================================================
// Diagnosis Repository
// ====================================================================================

type DiagnosisRepository interface {
	// ValidatePhoto runs the capture-guidance pre-check on a local image.
	ValidatePhoto(ctx context.Context, imagePath string) result.Result[models.CaptureGuidance]

	AnalyzePlant(ctx context.Context, req apiclient.AnalyzeRequest) result.Result[models.Diagnosis]
	Get(ctx context.Context, diagnosisID int) result.Result[models.DiagnosisRecord]
	History(ctx context.Context, userID, limit int) result.Result[models.DiagnosisHistory]

	// PlantHistory degrades to an empty list on failure; the plant screen still renders.
	PlantHistory(ctx context.Context, plantID, limit int) result.Result[[]models.DiagnosisRecord]

	SubmitFeedback(ctx context.Context, diagnosisID, userID int, input models.DiagnosisFeedbackInput) result.Result[models.DiagnosisFeedbackResponse]
}

// ====================================================================================
// Community Repository
// ====================================================================================

type CommunityRepository interface {
	// Posts returns the feed with image URLs made absolute.
	Posts(ctx context.Context, limit int) result.Result[[]models.CommunityPost]

	CreatePost(ctx context.Context, userID int, input models.CommunityPostCreateInput) result.Result[models.CommunityPost]
	CreatePostWithImage(ctx context.Context, input models.CommunityImagePostInput) result.Result[models.CommunityPost]
	ToggleLike(ctx context.Context, postID, userID int) result.Result[models.LikeResponse]
	HasLiked(ctx context.Context, postID, userID int) result.Result[bool]
	Comments(ctx context.Context, postID int) result.Result[[]models.Comment]
	AddComment(ctx context.Context, postID, userID int, input models.CommentCreateInput) result.Result[models.CommentCreatedResponse]
}

// ====================================================================================
// Gamification Repository
// ====================================================================================

type GamificationRepository interface {
	Achievements(ctx context.Context, userID int) result.Result[models.AchievementsResponse]
	Missions(ctx context.Context, userID int) result.Result[models.MissionsResponse]
}
