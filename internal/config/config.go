package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	Environment string
	HTTPAddr    string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// AdminUsername names the single account eligible for the
	// password-reset challenge flow. AdminEmail receives the codes.
	AdminUsername string
	AdminEmail    string
	AdminPassword string

	// RequiredEmailSuffix gates party emails on documents.
	RequiredEmailSuffix string

	UploadDir   string
	LogoPath    string
	LogoURL     string
	PrinterName string
	PaperSize   string

	RenderTimeout time.Duration
	SessionTTL    time.Duration
}

var Module = fx.Provide(Load)

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "backoffice"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),

		DBType:            getenv("DATABASE_TYPE", "sqlite"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "backoffice"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 2),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 10),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 3600),

		SMTPHost:     getenv("SMTP_HOST", ""),
		SMTPPort:     getenvInt("SMTP_PORT", 465),
		SMTPUsername: getenv("SMTP_USERNAME", ""),
		SMTPPassword: getenv("SMTP_PASSWORD", ""),
		SMTPFrom:     getenv("SMTP_FROM", ""),

		AdminUsername: getenv("ADMIN_USERNAME", "Webx Admin"),
		AdminEmail:    strings.TrimSpace(getenv("ADMIN_EMAIL", "")),
		AdminPassword: getenv("ADMIN_PASSWORD", ""),

		RequiredEmailSuffix: getenv("REQUIRED_EMAIL_SUFFIX", "@gmail.com"),

		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
		LogoPath:    getenv("LOGO_PATH", "uploads/logo.png"),
		LogoURL:     getenv("LOGO_URL", "/logo.png"),
		PrinterName: getenv("PRINTER_NAME", ""),
		PaperSize:   getenv("PAPER_SIZE", "A4"),

		RenderTimeout: getenvDuration("RENDER_TIMEOUT", 45*time.Second),
		SessionTTL:    getenvDuration("SESSION_TTL", 12*time.Hour),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
