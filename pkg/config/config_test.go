package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.OpenAI.FeedbackModel != "gpt-4o" {
		t.Fatalf("unexpected feedback model %q", cfg.OpenAI.FeedbackModel)
	}
	if cfg.Realtime.Voice != "verse" || cfg.Realtime.TranscriptionModel != "whisper-1" {
		t.Fatalf("unexpected realtime defaults %+v", cfg.Realtime)
	}
	if cfg.Realtime.VADThreshold != 0.5 || cfg.Realtime.VADPrefixPaddingMS != 300 || cfg.Realtime.VADSilenceDurationMS != 500 {
		t.Fatalf("unexpected VAD defaults %+v", cfg.Realtime)
	}
	if cfg.Live.SessionTTL != 30*time.Minute {
		t.Fatalf("unexpected live TTL %v", cfg.Live.SessionTTL)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173,https://warmup.example.com")
	t.Setenv("OPENAI_BASE_URL", "http://127.0.0.1:8000/v1/")
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("REPORT_CACHE_TTL", "15m")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("unexpected port %q", cfg.Server.Port)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://warmup.example.com" {
		t.Fatalf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
	if cfg.OpenAI.BaseURL != "http://127.0.0.1:8000/v1" {
		t.Fatalf("trailing slash not trimmed: %q", cfg.OpenAI.BaseURL)
	}
	if cfg.Cache.Driver != "redis" || cfg.Cache.ReportTTL != 15*time.Minute {
		t.Fatalf("unexpected cache config %+v", cfg.Cache)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			OpenAI:   OpenAIConfig{APIKey: "sk-test"},
			Realtime: RealtimeConfig{VADThreshold: 0.5},
			Cache:    CacheConfig{Driver: "memory"},
			Live:     LiveConfig{SessionTTL: time.Minute},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := map[string]func(c *Config){
		"missing api key": func(c *Config) { c.OpenAI.APIKey = "" },
		"bad driver":      func(c *Config) { c.Cache.Driver = "memcached" },
		"bad threshold":   func(c *Config) { c.Realtime.VADThreshold = 1.5 },
		"zero live ttl":   func(c *Config) { c.Live.SessionTTL = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
