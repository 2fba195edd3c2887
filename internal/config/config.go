package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Auth Config
	JWTSecret string        `env:"JWT_SECRET"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"crime-observatory"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"8h"`

	// API Keys для служебного запуска фоновых загрузок (cron)
	APIKeys []string `env:"API_KEYS"`

	// Ingestion Config
	IngestCheckpointEvery int     `env:"INGEST_CHECKPOINT_EVERY" envDefault:"50"`
	IngestDefaultLat      float64 `env:"INGEST_DEFAULT_LAT" envDefault:"3.26"`
	IngestDefaultLon      float64 `env:"INGEST_DEFAULT_LON" envDefault:"-76.53"`

	// Map Config
	JitterDegrees float64 `env:"JITTER_DEGREES" envDefault:"0.0005"`

	// Stats Config
	Population int `env:"POPULATION" envDefault:"150000"`

	// AI Config
	AIProvider      string        `env:"AI_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	MistralAPIKey   string        `env:"MISTRAL_API_KEY"`
	AITimeout       time.Duration `env:"AI_TIMEOUT" envDefault:"30s"`
	InsightCacheTTL time.Duration `env:"INSIGHT_CACHE_TTL" envDefault:"30m"`

	// National Stats Job Config
	NationalSourceURLs []string      `env:"NATIONAL_SOURCE_URLS"`
	SourceTimeout      time.Duration `env:"SOURCE_TIMEOUT" envDefault:"60s"`
	JobTimeout         time.Duration `env:"JOB_TIMEOUT" envDefault:"25m"`
	JobLockTTL         time.Duration `env:"JOB_LOCK_TTL" envDefault:"30m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		JWTIssuer:             getEnv("JWT_ISSUER", "crime-observatory"),
		JWTTTL:                getEnvAsDuration("JWT_TTL", 8*time.Hour),
		APIKeys:               getEnvAsList("API_KEYS"),
		IngestCheckpointEvery: getEnvAsInt("INGEST_CHECKPOINT_EVERY", 50),
		IngestDefaultLat:      getEnvAsFloat("INGEST_DEFAULT_LAT", 3.26),
		IngestDefaultLon:      getEnvAsFloat("INGEST_DEFAULT_LON", -76.53),
		JitterDegrees:         getEnvAsFloat("JITTER_DEGREES", 0.0005),
		Population:            getEnvAsInt("POPULATION", 150000),
		AIProvider:            strings.ToLower(getEnv("AI_PROVIDER", "gemini")),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		MistralAPIKey:         os.Getenv("MISTRAL_API_KEY"),
		AITimeout:             getEnvAsDuration("AI_TIMEOUT", 30*time.Second),
		InsightCacheTTL:       getEnvAsDuration("INSIGHT_CACHE_TTL", 30*time.Minute),
		NationalSourceURLs:    getEnvAsList("NATIONAL_SOURCE_URLS"),
		SourceTimeout:         getEnvAsDuration("SOURCE_TIMEOUT", 60*time.Second),
		JobTimeout:            getEnvAsDuration("JOB_TIMEOUT", 25*time.Minute),
		JobLockTTL:            getEnvAsDuration("JOB_LOCK_TTL", 30*time.Minute),
		WebhookURL:            os.Getenv("WEBHOOK_URL"),
		WebhookSecret:         os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:     getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:      getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	// блокировка должна пережить задачу, иначе по истечении TTL запустится вторая такая же
	if cfg.JobTimeout <= 0 || cfg.JobTimeout >= cfg.JobLockTTL {
		return nil, fmt.Errorf("JOB_TIMEOUT (%s) must be positive and shorter than JOB_LOCK_TTL (%s)", cfg.JobTimeout, cfg.JobLockTTL)
	}
	if cfg.IngestCheckpointEvery < 1 {
		cfg.IngestCheckpointEvery = 50
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
