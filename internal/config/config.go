package config

import (
	"fmt"
	"os"
	"strconv"
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

	// Geoapify Config
	GeoapifyAPIKey  string        `env:"GEOAPIFY_API_KEY"`
	GeocodeTimeout  time.Duration `env:"GEOCODE_TIMEOUT" envDefault:"5s"`
	NearbyRadius    int           `env:"NEARBY_RADIUS_METERS" envDefault:"5000"`

	// OpenRouter Config
	OpenRouterAPIKey string        `env:"OPENROUTER_API_KEY"`
	GuidanceModel    string        `env:"GUIDANCE_MODEL" envDefault:"meta-llama/llama-3.1-8b-instruct:free"`
	GuidanceTimeout  time.Duration `env:"GUIDANCE_TIMEOUT" envDefault:"15s"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Report Wizard Config
	DraftTTL time.Duration `env:"DRAFT_TTL" envDefault:"30m"`

	// Окно видимости инцидентов на дашборде
	RetentionWindow time.Duration `env:"RETENTION_WINDOW" envDefault:"24h"`

	// Точка по умолчанию, когда геопозиция клиента недоступна (центр Торонто)
	DefaultLatitude  float64 `env:"DEFAULT_LATITUDE" envDefault:"43.6532"`
	DefaultLongitude float64 `env:"DEFAULT_LONGITUDE" envDefault:"-79.3832"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		GeoapifyAPIKey:    os.Getenv("GEOAPIFY_API_KEY"),
		GeocodeTimeout:    getEnvAsDuration("GEOCODE_TIMEOUT", 5*time.Second),
		NearbyRadius:      getEnvAsInt("NEARBY_RADIUS_METERS", 5000),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		GuidanceModel:     getEnv("GUIDANCE_MODEL", "meta-llama/llama-3.1-8b-instruct:free"),
		GuidanceTimeout:   getEnvAsDuration("GUIDANCE_TIMEOUT", 15*time.Second),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		DraftTTL:          getEnvAsDuration("DRAFT_TTL", 30*time.Minute),
		RetentionWindow:   getEnvAsDuration("RETENTION_WINDOW", 24*time.Hour),
		DefaultLatitude:   getEnvAsFloat("DEFAULT_LATITUDE", 43.6532),
		DefaultLongitude:  getEnvAsFloat("DEFAULT_LONGITUDE", -79.3832),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
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
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
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
