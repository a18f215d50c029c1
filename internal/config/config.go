package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server      ServerConfig
	API         APIConfig
	Credentials CredentialConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Log         LogConfig
	Tickets     TicketConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type APIConfig struct {
	BaseURL string
	// Zero leaves requests without a deadline.
	Timeout time.Duration
}

type CredentialConfig struct {
	Backend    string
	Key        string
	FilePath   string
	SQLitePath string
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Brokers       []string
	ActivityTopic string
	Enabled       bool
}

type LogConfig struct {
	Dir   string
	Level string
}

type TicketConfig struct {
	QRSize int
}

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8090"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
			Timeout: getEnvDuration("API_TIMEOUT", 0),
		},
		Credentials: CredentialConfig{
			Backend:    strings.ToLower(getEnv("CREDENTIAL_BACKEND", BackendFile)),
			Key:        getEnv("CREDENTIAL_KEY", "token"),
			FilePath:   getEnv("CREDENTIAL_FILE", ".booking-client/credentials.json"),
			SQLitePath: getEnv("CREDENTIAL_SQLITE_PATH", "file:booking-client.db?cache=shared"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Kafka: KafkaConfig{
			Brokers:       splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
			ActivityTopic: getEnv("KAFKA_ACTIVITY_TOPIC", "booking.client.activity"),
			Enabled:       getEnvBool("KAFKA_ENABLED", false),
		},
		Log: LogConfig{
			Dir:   getEnv("LOG_DIR", "logs"),
			Level: strings.ToUpper(getEnv("LOG_LEVEL", "INFO")),
		},
		Tickets: TicketConfig{
			QRSize: getEnvInt("QR_SIZE", 256),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go duration strings ("30s") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
