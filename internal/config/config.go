package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Push     PushConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	ReplyTo    string
}

// PushConfig holds the VAPID key pair and the shared secret that gates
// the internal fan-out endpoint.
type PushConfig struct {
	VapidPublicKey  string
	VapidPrivateKey string
	VapidSubject    string
	InternalAPIKey  string
}

// AuthConfig carries the token signing secret and an optional bootstrap
// superadmin identity that works before the superadmins table is seeded.
type AuthConfig struct {
	JWTSecret       string
	SuperadminEmail string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "ChatDesk"),
			ReplyTo:    getEnv("SMTP_REPLY_TO", ""),
		},
		Push: PushConfig{
			VapidPublicKey:  getEnv("VAPID_PUBLIC_KEY", ""),
			VapidPrivateKey: getEnv("VAPID_PRIVATE_KEY", ""),
			VapidSubject:    getEnv("VAPID_SUBJECT", "mailto:support@chatdesk.local"),
			InternalAPIKey:  getEnv("INTERNAL_API_KEY", ""),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", ""),
			SuperadminEmail: getEnv("SUPERADMIN_EMAIL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
