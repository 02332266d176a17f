package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Log       LogConfig
	CORS      CORSConfig
	Catalogue CatalogueConfig
	Share     ShareConfig
	Upload    UploadConfig
	Email     EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogueConfig selects the product catalogue backend.
// Source is "memory" (built-in products) or "postgres".
type CatalogueConfig struct {
	Source string `mapstructure:"source"`
}

// ShareConfig holds share link settings. PreviewURL is the absolute
// address of the standalone preview page.
type ShareConfig struct {
	PreviewURL string `mapstructure:"preview_url"`
}

// UploadConfig holds logo upload limits.
type UploadConfig struct {
	MaxLogoSizeMB int64 `mapstructure:"max_logo_size_mb"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// Load reads configuration from environment variables with the BILLFORGE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BILLFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "billforge")
	v.SetDefault("db.password", "billforge_secret")
	v.SetDefault("db.name", "billforge_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Catalogue defaults
	v.SetDefault("catalogue.source", "memory")

	// Share defaults
	v.SetDefault("share.preview_url", "http://localhost:8080/preview")

	// Upload defaults
	v.SetDefault("upload.max_logo_size_mb", 2)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "invoices@billforge.local")
	v.SetDefault("email.from_name", "BillForge")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "BILLFORGE_SERVER_PORT",
		"server.read_timeout":     "BILLFORGE_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "BILLFORGE_SERVER_WRITE_TIMEOUT",
		"server.environment":      "BILLFORGE_SERVER_ENVIRONMENT",
		"db.host":                 "BILLFORGE_DB_HOST",
		"db.port":                 "BILLFORGE_DB_PORT",
		"db.user":                 "BILLFORGE_DB_USER",
		"db.password":             "BILLFORGE_DB_PASSWORD",
		"db.name":                 "BILLFORGE_DB_NAME",
		"db.sslmode":              "BILLFORGE_DB_SSLMODE",
		"db.max_open":             "BILLFORGE_DB_MAX_OPEN",
		"db.max_idle":             "BILLFORGE_DB_MAX_IDLE",
		"log.level":               "BILLFORGE_LOG_LEVEL",
		"log.format":              "BILLFORGE_LOG_FORMAT",
		"cors.allowed_origins":    "BILLFORGE_CORS_ALLOWED_ORIGINS",
		"catalogue.source":        "BILLFORGE_CATALOGUE_SOURCE",
		"share.preview_url":       "BILLFORGE_SHARE_PREVIEW_URL",
		"upload.max_logo_size_mb": "BILLFORGE_UPLOAD_MAX_LOGO_SIZE_MB",
		"email.provider":          "BILLFORGE_EMAIL_PROVIDER",
		"email.region":            "BILLFORGE_EMAIL_REGION",
		"email.from_address":      "BILLFORGE_EMAIL_FROM_ADDRESS",
		"email.from_name":         "BILLFORGE_EMAIL_FROM_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLFORGE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLFORGE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Catalogue = CatalogueConfig{
		Source: v.GetString("catalogue.source"),
	}
	cfg.Share = ShareConfig{
		PreviewURL: v.GetString("share.preview_url"),
	}
	cfg.Upload = UploadConfig{
		MaxLogoSizeMB: v.GetInt64("upload.max_logo_size_mb"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	return cfg, nil
}
