package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Checkout CheckoutConfig
	Kafka    KafkaConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Address string
	// BaseURL is the externally visible address, used to build the
	// success/cancel URLs handed to the checkout provider.
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// Enabled toggles the flight list cache; the API works without Redis.
	Enabled bool
}

type AuthConfig struct {
	JWTSecret      string
	AccessTTLHours int
}

type CheckoutConfig struct {
	BaseURL string
	APIKey  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	// Enabled toggles event publishing; the API works without Kafka.
	Enabled bool
}

type UploadConfig struct {
	Dir string
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server: ServerConfig{
			Address: getEnv("SERVER_ADDRESS", ":8080"),
			BaseURL: getEnv("SERVER_BASE_URL", "http://localhost:8080"),
		},
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
			AccessTTLHours: getEnvInt("JWT_ACCESS_TTL_HOURS", 24),
		},
		Checkout: CheckoutConfig{
			BaseURL: getEnv("CHECKOUT_BASE_URL", "https://checkout.example.com"),
			APIKey:  getEnv("CHECKOUT_API_KEY", ""),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKER", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "booking-events"),
			Enabled: getEnv("KAFKA_ENABLED", "false") == "true",
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
	}

	return AppConfig
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "airport"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
		Enabled:  getEnv("REDIS_ENABLED", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		panic(err)
	}
	return n
}
