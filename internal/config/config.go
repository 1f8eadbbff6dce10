package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	SMTP        SMTPConfig
	Briefing    BriefingConfig
	Preferences PreferencesConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	HubLogFilePath     string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	DefaultLocale      string
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
	// StudioEmail receives briefings shared by e-mail.
	StudioEmail        string
	MaxAttachmentBytes int
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.StudioEmail != ""
}

type BriefingConfig struct {
	WhatsAppPhone string
	FallbackDelay time.Duration
	SessionTTL    time.Duration
	ArtifactTTL   time.Duration
	ArtifactStore string // "memory" | "redis"
	EventsTopic   string
	NatsEnabled   bool
	RedisFanout   bool
	WebsocketPush bool
}

type PreferencesConfig struct {
	Store        string // "memory" | "redis" | "postgres"
	CookieName   string
	CookieMaxAge time.Duration
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			HubLogFilePath:     getEnv("HUB_LOG_FILE_PATH", "logs/briefing_ws.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			DefaultLocale:      getEnv("DEFAULT_LOCALE", "pt"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:               getEnv("SMTP_HOST", ""),
			Port:               getEnvAsInt("SMTP_PORT", 587),
			Email:              getEnv("SMTP_EMAIL", ""),
			Password:           getEnv("SMTP_PASSWORD", ""),
			SenderName:         getEnv("SMTP_SENDER_NAME", "Anna Designer"),
			StudioEmail:        getEnv("STUDIO_EMAIL", ""),
			MaxAttachmentBytes: getEnvAsInt("SHARE_MAX_ATTACHMENT_BYTES", 10*1024*1024),
		},
		Briefing: BriefingConfig{
			WhatsAppPhone: getEnv("WHATSAPP_PHONE", "5531992781019"),
			FallbackDelay: time.Duration(getEnvAsInt("FALLBACK_DELAY_MS", 1500)) * time.Millisecond,
			SessionTTL:    time.Duration(getEnvAsInt("BRIEFING_SESSION_TTL_MINUTES", 60)) * time.Minute,
			ArtifactTTL:   time.Duration(getEnvAsInt("ARTIFACT_TTL_MINUTES", 10)) * time.Minute,
			ArtifactStore: getEnv("ARTIFACT_STORE", "memory"),
			EventsTopic:   getEnv("BRIEFING_EVENTS_TOPIC", "BRIEFING_EVENTS"),
			NatsEnabled:   getEnvAsBool("NATS_ENABLED", false),
			RedisFanout:   getEnvAsBool("WS_REDIS_FANOUT", false),
			WebsocketPush: getEnvAsBool("WS_PUSH_ENABLED", true),
		},
		Preferences: PreferencesConfig{
			Store:        getEnv("PREFERENCE_STORE", "memory"),
			CookieName:   getEnv("VISITOR_COOKIE_NAME", "anna_visitor"),
			CookieMaxAge: time.Duration(getEnvAsInt("VISITOR_COOKIE_DAYS", 365)) * 24 * time.Hour,
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
