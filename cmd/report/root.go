package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"dashboard-srv/config"
	configMinio "dashboard-srv/config/minio"
	"dashboard-srv/internal/export"
	exportUsecase "dashboard-srv/internal/export/usecase"
	"dashboard-srv/internal/report"
	reportUsecase "dashboard-srv/internal/report/usecase"
	"dashboard-srv/internal/snapshot/loader"
	"dashboard-srv/pkg/log"
	pkgMinio "dashboard-srv/pkg/minio"

	"github.com/spf13/cobra"
)

type options struct {
	outDir string
}

// MinIO connector hooks, replaced in tests.
var (
	connectMinIO    = configMinio.Connect
	disconnectMinIO = configMinio.Disconnect
)

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "report",
		Short:         "Compute dashboard summaries from the source tables",
		Long:          `Loads the work log, config and team tables and writes a summary as CSV.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&opts.outDir, "out", "o", "", "Directory to write the CSV file to (default: stdout)")

	root.AddCommand(newDailyCmd(opts))
	root.AddCommand(newPublicationsCmd(opts))
	root.AddCommand(newUsersCmd(opts))

	return root
}

// newExportUseCase loads the configured sources. Exports are rendered only,
// never stored, so a MinIO source is disconnected once the snapshot is read.
func newExportUseCase(ctx context.Context) (export.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Stderr:       true,
	})

	var minioClient pkgMinio.MinIO
	if cfg.Source.Backend == config.SourceBackendMinIO {
		minioClient, err = connectMinIO(ctx, &cfg.MinIO)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := disconnectMinIO(); err != nil {
				logger.Warnf(ctx, "report.newExportUseCase: disconnect MinIO: %v", err)
			}
		}()
	}

	snap, err := loader.Load(ctx, cfg.Source, minioClient, logger)
	if err != nil {
		return nil, err
	}

	reportUC := reportUsecase.New(snap, nil, logger, reportUsecase.Config{
		Targets: report.Targets{
			ProductionPerUser: cfg.Targets.ProductionPerUser,
			QCPerUser:         cfg.Targets.QCPerUser,
			HoursPerDay:       cfg.Targets.HoursPerDay,
			WindowSize:        cfg.Targets.WindowSize,
		},
	})
	return exportUsecase.New(reportUC, nil, nil, logger, exportUsecase.Config{}), nil
}

// writeFile writes f into opts.outDir, or to the command output when no
// directory is set.
func writeFile(cmd *cobra.Command, opts *options, f export.File) error {
	if opts.outDir == "" {
		_, err := cmd.OutOrStdout().Write(f.Data)
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(opts.outDir, f.Name)
	if err := os.WriteFile(path, f.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d bytes)\n", path, len(f.Data))
	return nil
}
