package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET"`
	DatabasePath       string `envconfig:"DATABASE_PATH" default:"./movieclub.db"`
	Port               string `envconfig:"PORT" default:"3000"`

	RotationPeriodDays int           `envconfig:"ROTATION_PERIOD_DAYS" default:"14"`
	EarlyAccessDays    int           `envconfig:"EARLY_ACCESS_DAYS" default:"7"`
	ConfirmTimeout     time.Duration `envconfig:"CONFIRM_TIMEOUT" default:"30s"`
	AdminUsers         []string      `envconfig:"ADMIN_USERS"`

	OMDbAPIKey           string        `envconfig:"OMDB_API_KEY"`
	OMDbBaseURL          string        `envconfig:"OMDB_BASE_URL" default:"https://www.omdbapi.com/"`
	CatalogCacheTTL      time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"1h"`
	CatalogRatePerSecond float64       `envconfig:"CATALOG_RATE_PER_SECOND" default:"5"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.RotationPeriodDays < 1 {
		return fmt.Errorf("ROTATION_PERIOD_DAYS must be at least 1, got %d", c.RotationPeriodDays)
	}
	if c.EarlyAccessDays < 0 {
		return fmt.Errorf("EARLY_ACCESS_DAYS must not be negative, got %d", c.EarlyAccessDays)
	}
	if c.ConfirmTimeout <= 0 {
		return fmt.Errorf("CONFIRM_TIMEOUT must be positive, got %s", c.ConfirmTimeout)
	}
	return nil
}

// IsAdmin reports whether userID may run admin commands. An empty admin
// list lets everybody in.
func (c *Config) IsAdmin(userID string) bool {
	if len(c.AdminUsers) == 0 {
		return true
	}
	for _, id := range c.AdminUsers {
		if id == userID {
			return true
		}
	}
	return false
}

type rosterFile struct {
	Members []entity.MemberInput `yaml:"members"`
}

// LoadRoster reads the YAML roster bootstrap file
func LoadRoster(path string) ([]entity.MemberInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}
	if len(f.Members) == 0 {
		return nil, domain.InvalidInput("roster file lists no members")
	}
	return f.Members, nil
}
