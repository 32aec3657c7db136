package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`

	// Site identity
	SiteBaseURL string `json:"site_base_url"`
	SiteName    string `json:"site_name"`

	// Content store (headless CMS)
	CMSProjectID  string `json:"cms_project_id"`
	CMSDataset    string `json:"cms_dataset"`
	CMSAPIVersion string `json:"cms_api_version"`
	CMSUseCDN     bool   `json:"cms_use_cdn"`
	CMSToken      string `json:"cms_token,omitempty"`

	// Revalidation cache
	RedisURL   string        `json:"redis_url"`
	Revalidate time.Duration `json:"revalidate"`

	// Outbound mail
	MailAPIKey     string `json:"mail_api_key,omitempty"`
	MailFrom       string `json:"mail_from"`
	MailBusinessTo string `json:"mail_business_to"`

	// CloudFlare R2 inquiry archive (optional)
	R2Endpoint  string `json:"r2_endpoint"`
	R2AccessKey string `json:"r2_access_key"`
	R2SecretKey string `json:"r2_secret_key"`
	R2Bucket    string `json:"r2_bucket"`

	// Logging
	LogLevel string `json:"log_level"`
}

// Load loads configuration from environment variables and validates it
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		// Server configuration
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		// Site identity
		SiteBaseURL: strings.TrimRight(getEnv("SITE_BASE_URL", "https://www.evermoreweddings.com"), "/"),
		SiteName:    getEnv("SITE_NAME", "Evermore Weddings & Events"),

		// Content store
		CMSProjectID:  getEnv("CMS_PROJECT_ID", ""),
		CMSDataset:    getEnv("CMS_DATASET", "production"),
		CMSAPIVersion: getEnv("CMS_API_VERSION", "v2024-01-01"),
		CMSUseCDN:     getEnvAsBool("CMS_USE_CDN", true),
		CMSToken:      getEnv("CMS_TOKEN", ""),

		// Revalidation cache
		RedisURL:   getEnv("REDIS_URL", ""),
		Revalidate: getEnvAsDuration("REVALIDATE_WINDOW", time.Hour),

		// Outbound mail
		MailAPIKey:     getEnv("MAIL_API_KEY", ""),
		MailFrom:       getEnv("MAIL_FROM", "Evermore Weddings <hello@evermoreweddings.com>"),
		MailBusinessTo: getEnv("MAIL_BUSINESS_TO", "hello@evermoreweddings.com"),

		// CloudFlare R2 inquiry archive
		R2Endpoint:  getEnv("R2_ENDPOINT", ""),
		R2AccessKey: getEnv("R2_ACCESS_KEY", ""),
		R2SecretKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2Bucket:    getEnv("R2_BUCKET", "evermore-inquiries"),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.CMSProjectID == "" {
		return fmt.Errorf("CMS_PROJECT_ID is required")
	}
	if c.SiteBaseURL == "" {
		return fmt.Errorf("SITE_BASE_URL is required")
	}
	return nil
}

// ArchiveEnabled reports whether the R2 inquiry archive is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.R2Endpoint != "" && c.R2AccessKey != "" && c.R2SecretKey != ""
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
