package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"designcollective.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	ContentPath     string        `env:"CONTENT_PATH"`
	SceneURL        string        `env:"SCENE_URL"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Content is filled from CONTENT_PATH or the built-in sample after parsing
	Content *models.Content
}

// Load reads .env (if present), the environment, and the page content
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped.
func LoadFiles(dotenv ...string) (*Config, error) {
	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	content, err := loadContent(cfg.ContentPath)
	if err != nil {
		return nil, err
	}
	if cfg.SceneURL != "" {
		content.SceneURL = cfg.SceneURL
	}
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	cfg.Content = content

	return &cfg, nil
}

// loadContent reads the content JSON file, or returns the built-in sample
// content when no path is configured. Top-level fields the file leaves out
// are taken from the sample; fields the file sets are used as given.
func loadContent(path string) (*models.Content, error) {
	if path == "" {
		return models.DefaultContent(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	var content models.Content
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	content.FillFrom(models.DefaultContent())

	return &content, nil
}
