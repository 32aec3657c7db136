package api

import (
	"errors"
	"time"

	"github.com/evermore-weddings/evermore/internal/contact"
	"github.com/evermore-weddings/evermore/internal/content"
	"github.com/evermore-weddings/evermore/internal/logger"
	"github.com/evermore-weddings/evermore/internal/models"
	"github.com/evermore-weddings/evermore/internal/pages"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	pages   *pages.Assembler
	contact *contact.Service
}

func NewHandlers(assembler *pages.Assembler, contactSvc *contact.Service) *Handlers {
	return &Handlers{pages: assembler, contact: contactSvc}
}

// HealthCheck handles the /health endpoint
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// Home handles GET /api/v1/pages/home
func (h *Handlers) Home(c *fiber.Ctx) error {
	return c.JSON(h.pages.Home(c.Context()))
}

// About handles GET /api/v1/pages/about
func (h *Handlers) About(c *fiber.Ctx) error {
	return c.JSON(h.pages.About(c.Context()))
}

// Blog handles GET /api/v1/blog
func (h *Handlers) Blog(c *fiber.Ctx) error {
	return c.JSON(h.pages.Blog(c.Context()))
}

// BlogPost handles GET /api/v1/blog/:slug
func (h *Handlers) BlogPost(c *fiber.Ctx) error {
	page, err := h.pages.BlogPost(c.Context(), c.Params("slug"))
	return h.renderPage(c, page, err, "post")
}

// Portfolio handles GET /api/v1/portfolio
func (h *Handlers) Portfolio(c *fiber.Ctx) error {
	return c.JSON(h.pages.Portfolio(c.Context()))
}

// Couple handles GET /api/v1/portfolio/:slug
func (h *Handlers) Couple(c *fiber.Ctx) error {
	page, err := h.pages.Couple(c.Context(), c.Params("slug"))
	return h.renderPage(c, page, err, "wedding")
}

// VenueDirectory handles GET /api/v1/venues
func (h *Handlers) VenueDirectory(c *fiber.Ctx) error {
	return c.JSON(h.pages.VenueDirectory(c.Context()))
}

// Venues handles GET /api/v1/venues/:region
func (h *Handlers) Venues(c *fiber.Ctx) error {
	region := models.Region(c.Params("region"))
	return c.JSON(h.pages.Venues(c.Context(), region))
}

// Vendors handles GET /api/v1/vendors
func (h *Handlers) Vendors(c *fiber.Ctx) error {
	return c.JSON(h.pages.Vendors(c.Context()))
}

// Testimonials handles GET /api/v1/testimonials
func (h *Handlers) Testimonials(c *fiber.Ctx) error {
	return c.JSON(h.pages.Testimonials(c.Context()))
}

// renderPage maps a parametric page result to a response: the
// assembled payload, or a not-found payload carrying not-found
// metadata, or a 500 when the critical-path fetch itself failed.
func (h *Handlers) renderPage(c *fiber.Ctx, page *pages.Page, err error, kind string) error {
	if err == nil {
		return c.JSON(page)
	}
	if errors.Is(err, content.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(h.pages.NotFound(kind))
	}
	logger.Get().Error().Err(err).Str("path", c.Path()).Msg("page fetch failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to load page",
	})
}

// Contact handles POST /api/v1/contact
func (h *Handlers) Contact(c *fiber.Ctx) error {
	var sub models.ContactSubmission
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	_, err := h.contact.Handle(c.Context(), sub)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"success": true})
	case errors.Is(err, contact.ErrInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, contact.ErrNotConfigured):
		logger.Get().Error().Err(err).Msg("contact intake misconfigured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Mail service is not configured",
		})
	default:
		logger.Get().Error().Err(err).Msg("contact intake failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

// Sitemap handles GET /sitemap.xml
func (h *Handlers) Sitemap(c *fiber.Ctx) error {
	out, err := h.pages.Sitemap(c.Context())
	if err != nil {
		logger.Get().Error().Err(err).Msg("sitemap generation failed")
		return c.Status(fiber.StatusInternalServerError).SendString("sitemap unavailable")
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(out)
}

// Robots handles GET /robots.txt
func (h *Handlers) Robots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(h.pages.Robots())
}
