// Package router assembles the fiber application: middleware chain, API
// docs, metrics and every route.
package router

import (
	"pathpilot/internal/config"
	"pathpilot/internal/handler"
	"pathpilot/internal/metrics"
	"pathpilot/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// Handlers groups the route handlers.
type Handlers struct {
	Career *handler.CareerHandler
	Record *handler.RecordHandler
}

// New creates the fiber app with every route registered.
func New(cfg *config.Config, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "pathpilot",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	metrics.Init()

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(metrics.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", metrics.Handler())

	app.Get("/", handler.Health)

	// Document store routes
	app.Get("/careers", h.Record.ListCareers)
	app.Post("/careers", h.Record.CreateCareer)
	app.Post("/quiz-results", h.Record.CreateQuizResult)
	app.Get("/quiz-results/:userId", h.Record.ListQuizResults)

	// Model-backed routes
	app.Post("/trending", h.Career.Trending)
	app.Post("/recommend", h.Career.Recommend)
	app.Post("/enrich", h.Career.Enrich)
	app.Post("/quiz", h.Career.Quiz)
	app.Post("/careers-by-category", h.Career.CareersByCategory)
	app.Post("/career-recommendations", h.Career.CareerRecommendations)

	return app
}
