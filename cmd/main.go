package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evermore-weddings/evermore/internal/api"
	"github.com/evermore-weddings/evermore/internal/cache"
	"github.com/evermore-weddings/evermore/internal/cms"
	"github.com/evermore-weddings/evermore/internal/config"
	"github.com/evermore-weddings/evermore/internal/contact"
	"github.com/evermore-weddings/evermore/internal/content"
	"github.com/evermore-weddings/evermore/internal/logger"
	"github.com/evermore-weddings/evermore/internal/mail"
	"github.com/evermore-weddings/evermore/internal/middleware"
	"github.com/evermore-weddings/evermore/internal/pages"
	"github.com/evermore-weddings/evermore/internal/seo"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.Env == "development",
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Str("env", cfg.Env).Msg("Starting application...")

	// Revalidation cache: Redis when configured, in-process otherwise
	var store cache.Store
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis cache")
		}
		store = redisStore
	} else {
		log.Warn().Msg("REDIS_URL not set, using in-process revalidation cache")
		store = cache.NewMemoryStore()
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing cache")
		}
	}()

	// Content store client and image resolver
	cmsCfg := cms.Config{
		ProjectID:  cfg.CMSProjectID,
		Dataset:    cfg.CMSDataset,
		APIVersion: cfg.CMSAPIVersion,
		UseCDN:     cfg.CMSUseCDN,
		Token:      cfg.CMSToken,
	}
	client := cms.NewClient(cmsCfg)
	resolver := cms.NewImageResolver(cmsCfg)
	fetcher := content.NewFetcher(client, store, cfg.Revalidate)

	// Site identity for metadata and structured data
	site := &seo.Site{
		BaseURL:      cfg.SiteBaseURL,
		Name:         cfg.SiteName,
		Description:  "Full-service wedding planning and design in Southern California.",
		DefaultImage: cfg.SiteBaseURL + "/images/og-default.jpg",
		Keywords:     []string{"wedding planner", "san diego weddings", "wedding coordination"},
		Telephone:    "+1-619-555-0142",
		Email:        cfg.MailBusinessTo,
		Locality:     "San Diego",
		Region:       "CA",
		Country:      "US",
		PriceRange:   "$$$",
		RatingValue:  5.0,
		ReviewCount:  48,
	}
	assembler := pages.NewAssembler(fetcher, site, resolver, cfg.Revalidate)

	// Outbound mail; absent key is reported per request, not fatal
	var sender mail.Sender
	if cfg.MailAPIKey != "" {
		sender = mail.NewClient(cfg.MailAPIKey)
	} else {
		log.Warn().Msg("MAIL_API_KEY not set, contact intake will reject submissions")
	}

	// Optional inquiry archive
	var archive *contact.Archive
	if cfg.ArchiveEnabled() {
		var err error
		archive, err = contact.NewArchive(context.Background(), contact.ArchiveConfig{
			Endpoint:  cfg.R2Endpoint,
			AccessKey: cfg.R2AccessKey,
			SecretKey: cfg.R2SecretKey,
			Bucket:    cfg.R2Bucket,
		})
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize inquiry archive, continuing without it")
		}
	}

	contactSvc := contact.NewService(sender, archive, cfg.MailFrom, cfg.MailBusinessTo)

	// Create Fiber app with custom config
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	// Setup routes
	api.SetupRoutes(app, api.NewHandlers(assembler, contactSvc))

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
