package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Watcher   WatcherConfig
}

type AppConfig struct {
	Name      string
	Port      string
	Env       string
	StaticDir string // pre-built client bundle served from here
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig backs the login rate-limit counters. An empty URL disables
// redis and the limiter falls back to in-process counters.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// RateLimitConfig controls the login throttle. LoginLimit 0 disables it.
type RateLimitConfig struct {
	LoginLimit  int
	LoginWindow time.Duration
}

// WatcherConfig controls the overdue-deadline background scan.
type WatcherConfig struct {
	Enabled  bool
	Interval time.Duration
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine, environment variables still apply.
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	loginLimit, _ := strconv.Atoi(getEnv("LOGIN_RATE_LIMIT", "0"))

	config := &Config{
		App: AppConfig{
			Name:      getEnv("APP_NAME", "Taskflow"),
			Port:      getEnv("APP_PORT", "3001"),
			Env:       getEnv("APP_ENV", "development"),
			StaticDir: getEnv("APP_STATIC_DIR", "./dist"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "taskflow"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
			TTL:    getDurationEnv("JWT_TTL", time.Hour),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		RateLimit: RateLimitConfig{
			LoginLimit:  loginLimit,
			LoginWindow: getDurationEnv("LOGIN_RATE_WINDOW", time.Minute),
		},
		Watcher: WatcherConfig{
			Enabled:  getEnv("DEADLINE_WATCHER_ENABLED", "true") == "true",
			Interval: getDurationEnv("DEADLINE_WATCHER_INTERVAL", time.Hour),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
