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
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Import ImportConfig
	Email  EmailConfig
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

// S3Config holds AWS S3 settings for archiving original source files.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
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

// ImportConfig holds provider import settings.
type ImportConfig struct {
	MaxFileSizeMB  int64  `mapstructure:"max_file_size_mb"`
	MaxSources     int    `mapstructure:"max_sources"`
	ArchiveSources bool   `mapstructure:"archive_sources"`
	NotifyEmail    string `mapstructure:"notify_email"`
}

// EmailConfig holds email delivery settings for import summaries.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// Load reads configuration from environment variables with the FAENA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FAENA")
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
	v.SetDefault("db.user", "faena")
	v.SetDefault("db.password", "faena_secret")
	v.SetDefault("db.name", "faena_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "faena-imports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001")

	// Import defaults
	v.SetDefault("import.max_file_size_mb", 20)
	v.SetDefault("import.max_sources", 50)
	v.SetDefault("import.archive_sources", false)
	v.SetDefault("import.notify_email", "")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@faena.cl")
	v.SetDefault("email.from_name", "FAENA")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "FAENA_SERVER_PORT",
		"server.read_timeout":     "FAENA_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "FAENA_SERVER_WRITE_TIMEOUT",
		"server.environment":      "FAENA_SERVER_ENVIRONMENT",
		"db.host":                 "FAENA_DB_HOST",
		"db.port":                 "FAENA_DB_PORT",
		"db.user":                 "FAENA_DB_USER",
		"db.password":             "FAENA_DB_PASSWORD",
		"db.name":                 "FAENA_DB_NAME",
		"db.sslmode":              "FAENA_DB_SSLMODE",
		"db.max_open":             "FAENA_DB_MAX_OPEN",
		"db.max_idle":             "FAENA_DB_MAX_IDLE",
		"s3.region":               "FAENA_S3_REGION",
		"s3.bucket":               "FAENA_S3_BUCKET",
		"s3.endpoint":             "FAENA_S3_ENDPOINT",
		"s3.access_key":           "FAENA_S3_ACCESS_KEY",
		"s3.secret_key":           "FAENA_S3_SECRET_KEY",
		"s3.presign_expiry":       "FAENA_S3_PRESIGN_EXPIRY",
		"log.level":               "FAENA_LOG_LEVEL",
		"log.format":              "FAENA_LOG_FORMAT",
		"cors.allowed_origins":    "FAENA_CORS_ALLOWED_ORIGINS",
		"import.max_file_size_mb": "FAENA_IMPORT_MAX_FILE_SIZE_MB",
		"import.max_sources":      "FAENA_IMPORT_MAX_SOURCES",
		"import.archive_sources":  "FAENA_IMPORT_ARCHIVE_SOURCES",
		"import.notify_email":     "FAENA_IMPORT_NOTIFY_EMAIL",
		"email.provider":          "FAENA_EMAIL_PROVIDER",
		"email.region":            "FAENA_EMAIL_REGION",
		"email.from_address":      "FAENA_EMAIL_FROM_ADDRESS",
		"email.from_name":         "FAENA_EMAIL_FROM_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FAENA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FAENA_SERVER_PORT") == "" {
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
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
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

	cfg.Import = ImportConfig{
		MaxFileSizeMB:  v.GetInt64("import.max_file_size_mb"),
		MaxSources:     v.GetInt("import.max_sources"),
		ArchiveSources: v.GetBool("import.archive_sources"),
		NotifyEmail:    v.GetString("import.notify_email"),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	return cfg, nil
}
