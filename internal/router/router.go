package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"church_backend/internal/config"
	"church_backend/internal/handler"
	"church_backend/internal/middleware"
)

func New(h *handler.Handler, cfg config.ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(middleware.GlobalRateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window))

	auth := middleware.APIKeyAuth(cfg.APIKey)

	api := app.Group("/api")

	// Public reads
	api.Get("/sermons", h.ListSermons)
	api.Get("/sermons/featured", h.GetFeaturedSermon)
	api.Get("/sermons/:videoId", h.GetSermon)
	api.Get("/events", h.ListEvents)

	// Youth camp registration (stricter rate limit on the public form)
	api.Post("/youth-camp/register",
		middleware.SubmitRateLimiter(cfg.RateLimit.SubmitMax, cfg.RateLimit.SubmitWindow),
		h.Register,
	)

	// Administrative sync triggers
	api.Post("/videos/sync", auth, h.SyncVideos)
	api.Post("/events/sync", auth, h.SyncEvents)

	// Administrative registration surface
	admin := api.Group("/admin", auth)
	admin.Get("/registrations", h.ListRegistrations)
	admin.Get("/registrations/:id", h.GetRegistration)
	admin.Patch("/registrations/:id/status", h.UpdateRegistrationStatus)
	admin.Delete("/registrations/:id", h.DeleteRegistration)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}
