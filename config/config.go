// Package config loads the application's production settings from the
// environment. Each subsystem declares its own configuration struct with
// env tags; this package composes them and parses everything in one pass.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/portalempleos/secureupload/pkg/db"
	"github.com/portalempleos/secureupload/pkg/logger"
	"github.com/portalempleos/secureupload/pkg/mailer"
	"github.com/portalempleos/secureupload/pkg/redis"
	"github.com/portalempleos/secureupload/pkg/storage"
	"github.com/portalempleos/secureupload/pkg/upload"
)

// Config is the composed application configuration.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"production"`

	Upload   UploadConfig
	Storage  storage.Config
	Sentry   logger.SentryConfig
	Mailer   mailer.Config
	Database db.Config
	Cache    redis.Config
}

// UploadConfig is the file-upload policy surface: which types and
// extensions are acceptable and how large files may be.
type UploadConfig struct {
	AllowedTypes      []string `env:"ALLOWED_UPLOAD_TYPES" envDefault:"application/pdf,image/jpeg,image/png"`
	AllowedExtensions []string `env:"ALLOWED_UPLOAD_EXTENSIONS" envDefault:"pdf,jpg,jpeg,png"`
	MaxFileSize       int64    `env:"MAX_UPLOAD_SIZE" envDefault:"5242880"`
	RequireExtension  bool     `env:"REQUIRE_FILE_EXTENSION" envDefault:"true"`
}

// Rules converts the policy into the validation chain's config.
func (c UploadConfig) Rules() upload.Config {
	return upload.Config{
		AllowedMIMETypes:  c.AllowedTypes,
		AllowedExtensions: c.AllowedExtensions,
		MaxFileSize:       c.MaxFileSize,
		RequireExtension:  c.RequireExtension,
	}
}

// Load reads configuration from the environment. A .env.{ENVIRONMENT}
// file is loaded first when present, so local development does not need
// exported variables.
func Load() (*Config, error) {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "production"
	}
	_ = godotenv.Load(".env." + environment)

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: failed to parse environment: %w", err)
	}
	return &cfg, nil
}
