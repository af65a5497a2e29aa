package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// Database settings
	DatabasePath string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Cache settings
	CacheSize int
	CacheTTL  time.Duration

	// Portal settings
	PortalURL string
	Timezone  string

	// Scraper settings
	ScraperTimeout time.Duration
	HeadlessMode   bool
	UserAgent      string
	BrowserPath    string

	// Captcha solver settings
	TwoCaptchaKey  string
	AntiCaptchaKey string

	// Sync settings
	ScraperSessions  int
	SyncInterval     time.Duration
	FetchMaxAttempts int
	FetchBaseBackoff time.Duration
	FetchMaxBackoff  time.Duration

	// Deadline policy
	ZeroHourIncludesFirstDay bool
	ShiftNonBusinessDays     bool

	// Notification settings
	NotifyMinImportance string
	RedisURL            string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:                getEnv("HOST", "0.0.0.0"),
		Port:                getEnv("PORT", "8080"),
		DatabasePath:        getEnv("DATABASE_PATH", "./data/case_sync.db"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		PortalURL:           getEnv("PORTAL_URL", "https://ssgo.scourt.go.kr/ssgo/index.on"),
		Timezone:            getEnv("TIMEZONE", "Asia/Seoul"),
		UserAgent:           getEnv("USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
		BrowserPath:         getEnv("ROD_BROWSER_PATH", ""),
		TwoCaptchaKey:       getEnv("TWOCAPTCHA_API_KEY", ""),
		AntiCaptchaKey:      getEnv("ANTICAPTCHA_API_KEY", ""),
		NotifyMinImportance: getEnv("NOTIFY_MIN_IMPORTANCE", "medium"),
		RedisURL:            getEnv("REDIS_URL", ""),
	}

	var err error
	cfg.CacheSize, err = strconv.Atoi(getEnv("CACHE_SIZE", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("CACHE_TTL", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = time.Duration(cacheTTL) * time.Minute

	scraperTimeout, err := strconv.Atoi(getEnv("SCRAPER_TIMEOUT", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCRAPER_TIMEOUT: %w", err)
	}
	cfg.ScraperTimeout = time.Duration(scraperTimeout) * time.Second

	cfg.HeadlessMode = getEnv("HEADLESS_MODE", "true") == "true"

	cfg.ScraperSessions, err = strconv.Atoi(getEnv("SCRAPER_SESSIONS", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCRAPER_SESSIONS: %w", err)
	}
	if cfg.ScraperSessions < 1 {
		return nil, fmt.Errorf("invalid SCRAPER_SESSIONS: must be at least 1")
	}

	syncInterval, err := strconv.Atoi(getEnv("SYNC_INTERVAL", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_INTERVAL: %w", err)
	}
	cfg.SyncInterval = time.Duration(syncInterval) * time.Minute

	cfg.FetchMaxAttempts, err = strconv.Atoi(getEnv("FETCH_MAX_ATTEMPTS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_MAX_ATTEMPTS: %w", err)
	}

	baseBackoff, err := strconv.Atoi(getEnv("FETCH_BASE_BACKOFF_MS", "2000"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_BASE_BACKOFF_MS: %w", err)
	}
	cfg.FetchBaseBackoff = time.Duration(baseBackoff) * time.Millisecond

	maxBackoff, err := strconv.Atoi(getEnv("FETCH_MAX_BACKOFF_MS", "30000"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_MAX_BACKOFF_MS: %w", err)
	}
	cfg.FetchMaxBackoff = time.Duration(maxBackoff) * time.Millisecond

	cfg.ZeroHourIncludesFirstDay = getEnv("DEADLINE_ZERO_HOUR_INCLUDES_FIRST_DAY", "false") == "true"
	cfg.ShiftNonBusinessDays = getEnv("DEADLINE_SHIFT_NON_BUSINESS_DAYS", "false") == "true"

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return cfg, nil
}

// Location returns the configured portal timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
