package api

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, handlers *Handlers) {
	// Crawler surfaces at the root
	app.Get("/sitemap.xml", handlers.Sitemap)
	app.Get("/robots.txt", handlers.Robots)

	// API group with versioning
	api := app.Group("/api/v1")

	api.Get("/health", handlers.HealthCheck)

	// Static page payloads
	pages := api.Group("/pages")
	{
		pages.Get("/home", handlers.Home)
		pages.Get("/about", handlers.About)
	}

	// Blog
	blog := api.Group("/blog")
	{
		blog.Get("", handlers.Blog)
		blog.Get("/:slug", handlers.BlogPost)
	}

	// Portfolio
	portfolio := api.Group("/portfolio")
	{
		portfolio.Get("", handlers.Portfolio)
		portfolio.Get("/:slug", handlers.Couple)
	}

	// Directories
	api.Get("/venues", handlers.VenueDirectory)
	api.Get("/venues/:region", handlers.Venues)
	api.Get("/vendors", handlers.Vendors)
	api.Get("/testimonials", handlers.Testimonials)

	// Contact intake
	api.Post("/contact", handlers.Contact)

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
