package httpserver

import (
	"errors"
	"time"

	"dashboard-srv/internal/export"
	"dashboard-srv/internal/model"
	"dashboard-srv/internal/report"
	"dashboard-srv/internal/scheduler"
	pkgKafka "dashboard-srv/pkg/kafka"
	"dashboard-srv/pkg/log"
	pkgMinio "dashboard-srv/pkg/minio"
	pkgRedis "dashboard-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin            *gin.Engine
	l              log.Logger
	host           string
	port           int
	mode           string
	environment    string
	allowedOrigins []string

	// Data
	snapshot *model.Snapshot
	targets  report.Targets

	// Cache Configuration (optional)
	redisClient pkgRedis.IRedis
	cacheTTL    time.Duration

	// Storage & Messaging Configuration (optional)
	minioClient   pkgMinio.MinIO
	kafkaProducer pkgKafka.IProducer
	export        ExportConfig

	// Domains
	reportUC  report.UseCase
	exportUC  export.UseCase
	scheduler *scheduler.Scheduler
}

// ExportConfig configures stored exports and their schedule.
type ExportConfig struct {
	Bucket    string
	Prefix    string
	URLExpiry time.Duration
	// Spec is the cron expression of scheduled exports. Empty disables them.
	Spec string
}

type Config struct {
	// Server Configuration
	Logger         log.Logger
	Host           string
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	// Data
	Snapshot *model.Snapshot
	Targets  report.Targets

	// Cache Configuration
	RedisClient pkgRedis.IRedis
	CacheTTL    time.Duration

	// Storage & Messaging Configuration
	MinIOClient   pkgMinio.MinIO
	KafkaProducer pkgKafka.IProducer
	Export        ExportConfig
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:              logger,
		gin:            gin.New(),
		host:           cfg.Host,
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,

		// Data
		snapshot: cfg.Snapshot,
		targets:  cfg.Targets,

		// Cache Configuration
		redisClient: cfg.RedisClient,
		cacheTTL:    cfg.CacheTTL,

		// Storage & Messaging Configuration
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
		export:        cfg.Export,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Data
	if srv.snapshot == nil {
		return errors.New("snapshot is required")
	}

	// Redis, MinIO and Kafka are optional
	if srv.export.Spec != "" && srv.minioClient == nil {
		return errors.New("scheduled exports require minio")
	}

	return nil
}
