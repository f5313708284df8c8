package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/api/v1/handlers"
	"github.com/rakaarfi/jardin-inteligente-client/internal/middleware"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
)

// AppName and Version are reported by GET /health.
const (
	AppName = "Jardín Inteligente (contract stub)"
	Version = "1.0.0"
)

// SetupRoutes registers the backend contract on app. Everything under /api except
// login and register needs a bearer token; routes that carry a user id in the path
// only serve that user.
func SetupRoutes(
	app *fiber.App,
	jwt *utils.JWTManager,
	authHandler *handlers.AuthHandler,
	plantHandler *handlers.PlantHandler,
	diagnosisHandler *handlers.DiagnosisHandler,
	communityHandler *handlers.CommunityHandler,
	gamificationHandler *handlers.GamificationHandler,
	uploadHandler *handlers.UploadHandler,
) {
	app.Get("/health", HealthCheck)
	app.Get(service.UploadsPrefix+":name", uploadHandler.Serve)

	api := app.Group("/api")
	protected := middleware.Protected(jwt)
	self := middleware.SameUser("userId")

	// =========================================================================
	// Auth
	// =========================================================================
	auth := api.Group("/auth")
	{
		auth.Post("/register", authHandler.Register)
		auth.Post("/login", authHandler.Login)
		auth.Get("/me", protected, authHandler.Me)
		auth.Post("/logout", protected, authHandler.Logout)
		auth.Post("/refresh", protected, authHandler.Refresh)
	}

	// =========================================================================
	// Plants
	// =========================================================================
	plants := api.Group("/plants", protected)
	{
		plants.Post("/", plantHandler.CreatePlant)
		plants.Get("/user/:userId", self, plantHandler.GetUserPlants)
		plants.Get("/user/:userId/progress", self, plantHandler.GetProgress)
		plants.Get("/:plantId", plantHandler.GetPlant)
		plants.Put("/:plantId", plantHandler.UpdatePlant)
		plants.Delete("/:plantId", plantHandler.DeletePlant)
		plants.Put("/:plantId/water", plantHandler.WaterPlant)
		plants.Put("/:plantId/fertilize", plantHandler.FertilizePlant)
	}

	// =========================================================================
	// Diagnosis
	// =========================================================================
	diagnosis := api.Group("/diagnosis", protected)
	{
		diagnosis.Post("/capture-guidance", diagnosisHandler.CaptureGuidance)
		diagnosis.Post("/analyze", diagnosisHandler.Analyze)
		diagnosis.Get("/history/:userId", self, diagnosisHandler.GetHistory)
		diagnosis.Get("/plant/:plantId/history", diagnosisHandler.GetPlantHistory)
		diagnosis.Get("/:diagnosisId", diagnosisHandler.GetDiagnosis)
		diagnosis.Post("/:diagnosisId/feedback", diagnosisHandler.SubmitFeedback)
	}

	// =========================================================================
	// Community
	// =========================================================================
	community := api.Group("/community", protected)
	{
		community.Get("/posts", communityHandler.GetPosts)
		community.Post("/posts", communityHandler.CreatePost)
		community.Post("/posts/with-image", communityHandler.CreatePostWithImage)
		community.Post("/posts/:postId/like", communityHandler.ToggleLike)
		community.Get("/posts/:postId/liked-by/:userId", self, communityHandler.LikedBy)
		community.Get("/posts/:postId/comments", communityHandler.GetComments)
		community.Post("/posts/:postId/comments", communityHandler.AddComment)
	}

	// =========================================================================
	// Gamification
	// =========================================================================
	gamification := api.Group("/gamification", protected)
	{
		gamification.Get("/achievements/:userId", self, gamificationHandler.GetAchievements)
		gamification.Get("/missions/:userId", self, gamificationHandler.GetMissions)
	}
}

// HealthCheck godoc
// @Summary Check API Health Status
// @Description Public endpoint to verify that the API is running and responsive.
// @Tags Health
// @ID health-check
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(models.HealthResponse{Status: "healthy", App: AppName, Version: Version})
}
