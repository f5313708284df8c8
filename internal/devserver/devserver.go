// Package devserver assembles the contract stub server: an in-memory backend that
// speaks the same HTTP contract as the real one, for local development and for the
// client's integration tests.
package devserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/configs"
	_ "github.com/rakaarfi/jardin-inteligente-client/docs"
	v1 "github.com/rakaarfi/jardin-inteligente-client/internal/api/v1"
	"github.com/rakaarfi/jardin-inteligente-client/internal/api/v1/handlers"
	appmiddleware "github.com/rakaarfi/jardin-inteligente-client/internal/middleware"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// bodyLimit leaves room above the 10 MB photo limit so oversized uploads reach
// the handler and get a proper 413 detail instead of a bare transport error.
const bodyLimit = utils.MaxImageBytes + 2<<20

// Server is the assembled stub: the Fiber app plus the state behind it.
type Server struct {
	App   *fiber.App
	Store *service.Store
	JWT   *utils.JWTManager
}

// New wires store, services, handlers, middleware and routes.
func New(cfg configs.DevServerConfig) (*Server, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("devserver: jwt secret is required")
	}

	// --- Step 1: state and services ---
	store := service.NewStore()
	jwt := utils.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(store, jwt)
	plantService := service.NewPlantService(store)
	diagnosisService := service.NewDiagnosisService(store)
	communityService := service.NewCommunityService(store)
	gamificationService := service.NewGamificationService(store)
	uploadService := service.NewUploadService(store)
	zlog.Debug().Msg("Services initialized")

	// --- Step 2: handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	plantHandler := handlers.NewPlantHandler(plantService)
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisService)
	communityHandler := handlers.NewCommunityHandler(communityService)
	gamificationHandler := handlers.NewGamificationHandler(gamificationService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	zlog.Debug().Msg("Handlers initialized")

	// --- Step 3: app, middleware, routes ---
	app := fiber.New(fiber.Config{
		AppName:               v1.AppName,
		ErrorHandler:          handlers.ErrorHandler,
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
	})
	appmiddleware.SetupGlobalMiddleware(app, cfg)

	app.Get("/swagger/*", fiberSwagger.WrapHandler)
	zlog.Debug().Msg("Swagger UI endpoint registered at /swagger/*")

	v1.SetupRoutes(
		app,
		jwt,
		authHandler,
		plantHandler,
		diagnosisHandler,
		communityHandler,
		gamificationHandler,
		uploadHandler,
	)
	zlog.Debug().Msg("API routes registered")

	return &Server{App: app, Store: store, JWT: jwt}, nil
}
