package main

import (
	"context"
	"fmt"
	"time"

	"dashboard-srv/config"
	configKafka "dashboard-srv/config/kafka"
	configMinio "dashboard-srv/config/minio"
	configRedis "dashboard-srv/config/redis"
	_ "dashboard-srv/docs" // Import swagger docs
	"dashboard-srv/internal/httpserver"
	"dashboard-srv/internal/report"
	"dashboard-srv/internal/snapshot/loader"
	pkgKafka "dashboard-srv/pkg/kafka"
	"dashboard-srv/pkg/log"
	pkgMinio "dashboard-srv/pkg/minio"
	pkgRedis "dashboard-srv/pkg/redis"
)

// @title       Dashboard Service API
// @description Work-log performance dashboard: daily, publication and user summaries with CSV exports.
// @version     1
// @BasePath    /
// @schemes     http https
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize MinIO (optional)
	// Holds the source tables when source.backend is minio, and stored exports
	var minioClient pkgMinio.MinIO
	if cfg.MinIO.Enabled {
		minioClient, err = configMinio.Connect(ctx, &cfg.MinIO)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
			return
		}
		defer configMinio.Disconnect()
		logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
	}

	// 4. Load the snapshot
	// A missing or unreadable source table is fatal
	snap, err := loader.Load(ctx, cfg.Source, minioClient, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load source tables: %v", err)
		return
	}

	// 5. Initialize Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 6. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
			return
		}
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:         logger,
		Host:           cfg.HTTPServer.Host,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,

		// Data
		Snapshot: snap,
		Targets: report.Targets{
			ProductionPerUser: cfg.Targets.ProductionPerUser,
			QCPerUser:         cfg.Targets.QCPerUser,
			HoursPerDay:       cfg.Targets.HoursPerDay,
			WindowSize:        cfg.Targets.WindowSize,
		},

		// Cache Configuration
		RedisClient: redisClient,
		CacheTTL:    time.Duration(cfg.Redis.TTL) * time.Second,

		// Storage & Messaging Configuration
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		Export: httpserver.ExportConfig{
			Bucket:    cfg.MinIO.Bucket,
			Prefix:    cfg.Export.Prefix,
			URLExpiry: time.Duration(cfg.Export.URLExpiry) * time.Minute,
			Spec:      exportSpec(cfg),
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// exportSpec disables scheduled exports when there is nowhere to store them.
func exportSpec(cfg *config.Config) string {
	if !cfg.MinIO.Enabled {
		return ""
	}
	return cfg.Scheduler.ExportSpec
}
