package web

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures the application routes.
func SetupRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api")
	api.Get("/session", handlers.Session)
	api.Post("/check", handlers.Check)
	api.Post("/tweet", handlers.PostTweet)
	api.Get("/permalink", handlers.Permalink)

	// Manual fallbacks on twitter.com
	app.Get("/intent", handlers.Intent)
	app.Get("/:screen_name/status/:id", handlers.Status)
}
