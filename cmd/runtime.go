package cmd

import (
	"fmt"

	"csv-comparison/core/config"
	"csv-comparison/core/database"
	"csv-comparison/core/logger"
	"csv-comparison/core/storage"
	"csv-comparison/feature/history"
	"csv-comparison/feature/report"

	"go.uber.org/zap"
)

// runtime bundles what every command needs. client and store are nil when
// object storage or history are disabled or unavailable.
type runtime struct {
	cfg    *config.Config
	log    *zap.Logger
	client storage.Client
	store  *history.Store
}

// newRuntime loads configuration and connects the optional services.
// migrate creates or updates the history tables on connect.
func newRuntime(migrate bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{cfg: cfg, log: logg}

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		rt.client = client
	}

	// History is optional: a failed connection is logged and runs go unrecorded
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			store := history.NewStore(db)
			if migrate {
				if err := store.AutoMigrate(); err != nil {
					logg.Warn("History store unavailable", zap.Error(err))
					return rt, nil
				}
			}
			rt.store = store
			logg.Info("Connected to history database", zap.String("driver", cfg.Database.Driver))
		}
	}

	return rt, nil
}

func (rt *runtime) opener() *storage.Opener {
	return storage.NewOpener(rt.client)
}

// reportWriter returns a writer for dir, uploading to the configured bucket when storage is enabled.
func (rt *runtime) reportWriter(dir string) (*report.Writer, error) {
	opts := []report.Option{report.WithLogger(rt.log)}
	if rt.client != nil && rt.cfg.Storage.Bucket != "" {
		opts = append(opts, report.WithUpload(rt.client, rt.cfg.Storage.Bucket, rt.cfg.Compare.ReportPrefix))
	}
	return report.NewWriter(dir, opts...)
}
