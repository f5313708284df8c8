// internal/middleware/middleware.go
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rakaarfi/jardin-inteligente-client/configs"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// SetupGlobalMiddleware registers the middleware every request goes through.
// Registration order matters: recover first, compression last.
func SetupGlobalMiddleware(app *fiber.App, cfg configs.DevServerConfig) {
	// --- 1. Recover ---
	app.Use(recover.New())
	zlog.Info().Msg("Recover middleware registered")

	// --- 2. Request ID ---
	// The client sends its own X-Request-ID; requestid keeps it when present.
	app.Use(requestid.New())
	zlog.Info().Msg("RequestID middleware registered")

	// --- 3. CORS ---
	allowOrigins := cfg.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	zlog.Info().Str("allow_origins", allowOrigins).Msg("CORS middleware registered")

	// --- 4. Rate limiter ---
	// A non-positive limit turns the limiter off (handy for load tests against the stub).
	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:               cfg.RateLimit,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(models.APIError{Detail: "Too many requests"})
			},
		}))
		zlog.Info().Int("max_per_minute", cfg.RateLimit).Msg("Rate limiter middleware registered")
	}

	// --- 5. Request logger ---
	app.Use(RequestLogger())
	zlog.Info().Msg("Request logger middleware registered")

	// --- 6. Compression ---
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	zlog.Info().Msg("Compress middleware registered")
}

// RequestLogger logs one line per request with the status, latency and request id.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)
		statusCode := c.Response().StatusCode()

		requestID, _ := c.Locals("requestid").(string)

		var logEvent *zerolog.Event
		switch {
		case err != nil:
			// The global ErrorHandler writes the response; the error is only logged here.
			logEvent = zlog.Warn().Err(err)
		case statusCode >= 500:
			logEvent = zlog.Error()
		case statusCode >= 400:
			logEvent = zlog.Warn()
		default:
			logEvent = zlog.Info()
		}

		logEvent = logEvent.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusCode).
			Dur("latency", latency).
			Str("ip", c.IP()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent))
		if requestID != "" {
			logEvent = logEvent.Str("request_id", requestID)
		}
		logEvent.Msg("Request handled")

		return err
	}
}
