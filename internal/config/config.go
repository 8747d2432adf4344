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
	CORS      CORSConfig
	Log       LogConfig
	Templates TemplatesConfig
	Converter ConverterConfig
	S3        S3Config
	Email     EmailConfig
	Archive   ArchiveConfig
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

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TemplatesConfig selects where document templates are read from.
type TemplatesConfig struct {
	Source string `mapstructure:"source"` // "fs" or "s3"
	Dir    string `mapstructure:"dir"`
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
}

// ConverterConfig holds PDF conversion settings.
type ConverterConfig struct {
	Binary      string `mapstructure:"binary"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Timeout returns the conversion timeout as a duration.
func (c *ConverterConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// ArchiveConfig controls archival of rendered documents to object storage.
type ArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Bucket  string `mapstructure:"bucket"`
	Prefix  string `mapstructure:"prefix"`
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
	v.SetDefault("server.write_timeout", "60s")
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

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Template defaults
	v.SetDefault("templates.source", "fs")
	v.SetDefault("templates.dir", "templates")
	v.SetDefault("templates.bucket", "")
	v.SetDefault("templates.prefix", "templates")

	// Converter defaults
	v.SetDefault("converter.binary", "soffice")
	v.SetDefault("converter.timeout_secs", 30)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@billforge.local")
	v.SetDefault("email.from_name", "BillForge")

	// Archive defaults
	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.bucket", "")
	v.SetDefault("archive.prefix", "rendered")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "BILLFORGE_SERVER_PORT",
		"server.read_timeout":    "BILLFORGE_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "BILLFORGE_SERVER_WRITE_TIMEOUT",
		"server.environment":     "BILLFORGE_SERVER_ENVIRONMENT",
		"db.host":                "BILLFORGE_DB_HOST",
		"db.port":                "BILLFORGE_DB_PORT",
		"db.user":                "BILLFORGE_DB_USER",
		"db.password":            "BILLFORGE_DB_PASSWORD",
		"db.name":                "BILLFORGE_DB_NAME",
		"db.sslmode":             "BILLFORGE_DB_SSLMODE",
		"db.max_open":            "BILLFORGE_DB_MAX_OPEN",
		"db.max_idle":            "BILLFORGE_DB_MAX_IDLE",
		"cors.allowed_origins":   "BILLFORGE_CORS_ALLOWED_ORIGINS",
		"log.level":              "BILLFORGE_LOG_LEVEL",
		"log.format":             "BILLFORGE_LOG_FORMAT",
		"templates.source":       "BILLFORGE_TEMPLATES_SOURCE",
		"templates.dir":          "BILLFORGE_TEMPLATES_DIR",
		"templates.bucket":       "BILLFORGE_TEMPLATES_BUCKET",
		"templates.prefix":       "BILLFORGE_TEMPLATES_PREFIX",
		"converter.binary":       "BILLFORGE_CONVERTER_BINARY",
		"converter.timeout_secs": "BILLFORGE_CONVERTER_TIMEOUT_SECS",
		"s3.region":              "BILLFORGE_S3_REGION",
		"s3.bucket":              "BILLFORGE_S3_BUCKET",
		"s3.endpoint":            "BILLFORGE_S3_ENDPOINT",
		"s3.access_key":          "BILLFORGE_S3_ACCESS_KEY",
		"s3.secret_key":          "BILLFORGE_S3_SECRET_KEY",
		"email.provider":         "BILLFORGE_EMAIL_PROVIDER",
		"email.region":           "BILLFORGE_EMAIL_REGION",
		"email.from_address":     "BILLFORGE_EMAIL_FROM_ADDRESS",
		"email.from_name":        "BILLFORGE_EMAIL_FROM_NAME",
		"archive.enabled":        "BILLFORGE_ARCHIVE_ENABLED",
		"archive.bucket":         "BILLFORGE_ARCHIVE_BUCKET",
		"archive.prefix":         "BILLFORGE_ARCHIVE_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLFORGE_SERVER_PORT
	// is not explicitly set.
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

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Templates = TemplatesConfig{
		Source: v.GetString("templates.source"),
		Dir:    v.GetString("templates.dir"),
		Bucket: v.GetString("templates.bucket"),
		Prefix: v.GetString("templates.prefix"),
	}
	cfg.Converter = ConverterConfig{
		Binary:      v.GetString("converter.binary"),
		TimeoutSecs: v.GetInt("converter.timeout_secs"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Archive = ArchiveConfig{
		Enabled: v.GetBool("archive.enabled"),
		Bucket:  v.GetString("archive.bucket"),
		Prefix:  v.GetString("archive.prefix"),
	}

	return cfg, nil
}
