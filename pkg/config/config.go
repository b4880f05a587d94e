package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	OpenAI   OpenAIConfig
	Realtime RealtimeConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Live     LiveConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"3001"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	LogLevel        string   `envconfig:"LOG_LEVEL" default:"info"`
}

// OpenAIConfig holds settings shared by the chat and realtime clients
type OpenAIConfig struct {
	APIKey          string        `envconfig:"OPENAI_API_KEY"`
	BaseURL         string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	FeedbackModel   string        `envconfig:"OPENAI_FEEDBACK_MODEL" default:"gpt-4o"`
	Timeout         time.Duration `envconfig:"OPENAI_TIMEOUT" default:"60s"`
	RetryMaxElapsed time.Duration `envconfig:"OPENAI_RETRY_MAX_ELAPSED" default:"30s"`
	RetryInitial    time.Duration `envconfig:"OPENAI_RETRY_INITIAL" default:"1s"`
}

// RealtimeConfig holds the voice session parameters sent when minting keys
type RealtimeConfig struct {
	Model                string  `envconfig:"OPENAI_REALTIME_MODEL" default:"gpt-4o-realtime-preview-2024-10-01"`
	Voice                string  `envconfig:"OPENAI_VOICE" default:"verse"`
	TranscriptionModel   string  `envconfig:"OPENAI_TRANSCRIPTION_MODEL" default:"whisper-1"`
	VADThreshold         float64 `envconfig:"VAD_THRESHOLD" default:"0.5"`
	VADPrefixPaddingMS   int     `envconfig:"VAD_PREFIX_PADDING_MS" default:"300"`
	VADSilenceDurationMS int     `envconfig:"VAD_SILENCE_DURATION_MS" default:"500"`
}

// CacheConfig selects the report cache backend
type CacheConfig struct {
	Driver    string        `envconfig:"CACHE_DRIVER" default:"memory"` // memory, redis or none
	ReportTTL time.Duration `envconfig:"REPORT_CACHE_TTL" default:"1h"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// LiveConfig holds live transcript session settings
type LiveConfig struct {
	SessionTTL time.Duration `envconfig:"LIVE_SESSION_TTL" default:"30m"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config, err := FromEnv()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// FromEnv fills a Config from the process environment without validating it
func FromEnv() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	config.OpenAI.BaseURL = strings.TrimRight(config.OpenAI.BaseURL, "/")
	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	switch c.Cache.Driver {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("CACHE_DRIVER must be memory, redis or none, got %q", c.Cache.Driver)
	}
	if c.Realtime.VADThreshold < 0 || c.Realtime.VADThreshold > 1 {
		return fmt.Errorf("VAD_THRESHOLD must be between 0 and 1")
	}
	if c.Live.SessionTTL <= 0 {
		return fmt.Errorf("LIVE_SESSION_TTL must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
