package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Source backends.
const (
	SourceBackendFile  = "file"
	SourceBackendMinIO = "minio"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Input tables
	Source SourceConfig

	// Report thresholds
	Targets TargetsConfig

	// MinIO - Source tables and export storage
	MinIO MinIOConfig

	// Redis - Summary cache
	Redis RedisConfig

	// Kafka - Export events
	Kafka KafkaConfig

	Export    ExportConfig
	Scheduler SchedulerConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
	// AllowedOrigins lists the CORS origins. "*" allows any origin.
	AllowedOrigins []string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SourceConfig locates the three input tables. With the minio backend the
// paths are object keys inside Bucket.
type SourceConfig struct {
	Backend    string
	LogPath    string
	ConfigPath string
	TeamPath   string
	Bucket     string
}

// TargetsConfig holds the per-user daily point targets and the daily metrics window.
type TargetsConfig struct {
	ProductionPerUser float64
	QCPerUser         float64
	HoursPerDay       float64
	WindowSize        int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	TTL      int // in seconds
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// ExportConfig controls stored exports.
type ExportConfig struct {
	Prefix    string
	URLExpiry int // in minutes
}

// SchedulerConfig holds the cron expression of the scheduled export. Empty disables it.
type SchedulerConfig struct {
	ExportSpec string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("dashboard-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/dashboard/")

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = v.GetStringSlice("http_server.allowed_origins")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Source tables
	cfg.Source.Backend = strings.ToLower(v.GetString("source.backend"))
	cfg.Source.LogPath = v.GetString("source.log_path")
	cfg.Source.ConfigPath = v.GetString("source.config_path")
	cfg.Source.TeamPath = v.GetString("source.team_path")
	cfg.Source.Bucket = v.GetString("source.bucket")

	// Targets
	cfg.Targets.ProductionPerUser = v.GetFloat64("targets.production_per_user")
	cfg.Targets.QCPerUser = v.GetFloat64("targets.qc_per_user")
	cfg.Targets.HoursPerDay = v.GetFloat64("targets.hours_per_day")
	cfg.Targets.WindowSize = v.GetInt("targets.window_size")

	// MinIO
	cfg.MinIO.Enabled = v.GetBool("minio.enabled")
	cfg.MinIO.Endpoint = v.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = v.GetString("minio.access_key")
	cfg.MinIO.SecretKey = v.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = v.GetBool("minio.use_ssl")
	cfg.MinIO.Region = v.GetString("minio.region")
	cfg.MinIO.Bucket = v.GetString("minio.bucket")

	// Redis
	cfg.Redis.Enabled = v.GetBool("redis.enabled")
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.TTL = v.GetInt("redis.ttl")

	// Kafka
	cfg.Kafka.Enabled = v.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = v.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = v.GetString("kafka.topic")

	// Export & Scheduler
	cfg.Export.Prefix = v.GetString("export.prefix")
	cfg.Export.URLExpiry = v.GetInt("export.url_expiry")
	cfg.Scheduler.ExportSpec = v.GetString("scheduler.export_spec")

	return cfg
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.allowed_origins", []string{"*"})

	// Logger
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// 1. Source tables
	v.SetDefault("source.backend", SourceBackendFile)
	v.SetDefault("source.log_path", "data/Log.csv")
	v.SetDefault("source.config_path", "data/Config.csv")
	v.SetDefault("source.team_path", "data/team.xlsx")

	// 2. Targets
	v.SetDefault("targets.production_per_user", 1200)
	v.SetDefault("targets.qc_per_user", 2000)
	v.SetDefault("targets.hours_per_day", 8)
	v.SetDefault("targets.window_size", 5)

	// 3. MinIO
	v.SetDefault("minio.enabled", false)
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "minioadmin")
	v.SetDefault("minio.secret_key", "minioadmin")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.region", "us-east-1")
	v.SetDefault("minio.bucket", "dashboard-exports")

	// 4. Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 600)

	// 5. Kafka
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "dashboard.events")

	// 6. Export & Scheduler
	v.SetDefault("export.prefix", "exports")
	v.SetDefault("export.url_expiry", 30)
	v.SetDefault("scheduler.export_spec", "")
}

func validate(cfg *Config) error {
	switch cfg.Source.Backend {
	case SourceBackendFile:
	case SourceBackendMinIO:
		if !cfg.MinIO.Enabled {
			return fmt.Errorf("source.backend %q requires minio.enabled", cfg.Source.Backend)
		}
		if cfg.Source.Bucket == "" {
			return fmt.Errorf("source.bucket is required for the minio backend")
		}
	default:
		return fmt.Errorf("source.backend must be %q or %q, got %q", SourceBackendFile, SourceBackendMinIO, cfg.Source.Backend)
	}

	if cfg.Source.LogPath == "" || cfg.Source.ConfigPath == "" || cfg.Source.TeamPath == "" {
		return fmt.Errorf("source.log_path, source.config_path and source.team_path are required")
	}

	if cfg.Targets.ProductionPerUser < 0 || cfg.Targets.QCPerUser < 0 || cfg.Targets.HoursPerDay < 0 {
		return fmt.Errorf("targets must not be negative")
	}
	if cfg.Targets.WindowSize <= 0 {
		return fmt.Errorf("targets.window_size must be positive")
	}

	if cfg.MinIO.Enabled && cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required when minio is enabled")
	}
	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when kafka is enabled")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}
	if cfg.Export.URLExpiry <= 0 {
		return fmt.Errorf("export.url_expiry must be positive")
	}

	return nil
}
