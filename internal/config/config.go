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
	DatabaseURL    string `env:"DATABASE_URL"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Events Config: redis | kafka | log
	EventsSink       string   `env:"EVENTS_SINK" envDefault:"redis"`
	KafkaBrokers     []string `env:"KAFKA_BROKERS"`
	KafkaEventsTopic string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"outage-status-events"`

	// Ingestion Config
	SourcesFile       string        `env:"SOURCES_FILE" envDefault:"configs/sources.yaml"`
	IngestInterval    time.Duration `env:"INGEST_INTERVAL" envDefault:"5m"`
	FetchTimeout      time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	IngestConcurrency int           `env:"INGEST_CONCURRENCY" envDefault:"4"`

	// Crowd Config
	HotspotInterval  time.Duration `env:"HOTSPOT_INTERVAL" envDefault:"5m"`
	HotspotWindow    time.Duration `env:"HOTSPOT_WINDOW" envDefault:"30m"`
	HotspotThreshold int           `env:"HOTSPOT_THRESHOLD" envDefault:"5"`
	HotspotCacheTTL  time.Duration `env:"HOTSPOT_CACHE_TTL" envDefault:"1m"`
	CrowdFeedURL     string        `env:"CROWD_FEED_URL"`
	CrowdFeedName    string        `env:"CROWD_FEED_NAME" envDefault:"crowd-feed"`

	// Retention Config
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"24h"`
	RetentionDays   int           `env:"RETENTION_DAYS" envDefault:"30"`

	// Report submission rate limit (per client IP)
	ReportRatePerSecond float64 `env:"REPORT_RATE_PER_SECOND" envDefault:"0.2"`
	ReportBurst         int     `env:"REPORT_BURST" envDefault:"3"`

	OutageCacheTTL time.Duration `env:"OUTAGE_CACHE_TTL" envDefault:"5m"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// Retention возвращает срок хранения как длительность
func (c *Config) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		MigrationsPath:      getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		EventsSink:          strings.ToLower(getEnv("EVENTS_SINK", "redis")),
		KafkaBrokers:        getEnvAsList("KAFKA_BROKERS"),
		KafkaEventsTopic:    getEnv("KAFKA_EVENTS_TOPIC", "outage-status-events"),
		SourcesFile:         getEnv("SOURCES_FILE", "configs/sources.yaml"),
		IngestInterval:      getEnvAsDuration("INGEST_INTERVAL", 5*time.Minute),
		FetchTimeout:        getEnvAsDuration("FETCH_TIMEOUT", 30*time.Second),
		IngestConcurrency:   getEnvAsInt("INGEST_CONCURRENCY", 4),
		HotspotInterval:     getEnvAsDuration("HOTSPOT_INTERVAL", 5*time.Minute),
		HotspotWindow:       getEnvAsDuration("HOTSPOT_WINDOW", 30*time.Minute),
		HotspotThreshold:    getEnvAsInt("HOTSPOT_THRESHOLD", 5),
		HotspotCacheTTL:     getEnvAsDuration("HOTSPOT_CACHE_TTL", time.Minute),
		CrowdFeedURL:        os.Getenv("CROWD_FEED_URL"),
		CrowdFeedName:       getEnv("CROWD_FEED_NAME", "crowd-feed"),
		CleanupInterval:     getEnvAsDuration("CLEANUP_INTERVAL", 24*time.Hour),
		RetentionDays:       getEnvAsInt("RETENTION_DAYS", 30),
		ReportRatePerSecond: getEnvAsFloat("REPORT_RATE_PER_SECOND", 0.2),
		ReportBurst:         getEnvAsInt("REPORT_BURST", 3),
		OutageCacheTTL:      getEnvAsDuration("OUTAGE_CACHE_TTL", 5*time.Minute),
		APIKeys:             getEnvAsList("API_KEYS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	switch cfg.EventsSink {
	case "redis", "log":
	case "kafka":
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("KAFKA_BROKERS is required when EVENTS_SINK=kafka")
		}
	default:
		return nil, fmt.Errorf("unknown EVENTS_SINK %q", cfg.EventsSink)
	}

	if cfg.RetentionDays < 1 {
		return nil, fmt.Errorf("RETENTION_DAYS must be positive, got %d", cfg.RetentionDays)
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
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

// getEnvAsList разбивает значение по запятым, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
