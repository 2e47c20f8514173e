package cmd

import (
	"context"
	"fmt"
	"time"

	"ipo-tracker/core/config"
	"ipo-tracker/core/database"
	"ipo-tracker/core/logger"
	"ipo-tracker/core/storage"
	"ipo-tracker/feature/ipo"
	"ipo-tracker/feature/ipo/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the dependencies shared by every command.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	store   *store.GormStore
	client  storage.Client
	service *ipo.Service
}

// bootstrap loads configuration, connects the database and, when enabled, object
// storage, and wires the IPO service.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	l.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	var client storage.Client
	if cfg.Storage.Enabled {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		ensureCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := storage.EnsureBucket(ensureCtx, c, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			// archiving is optional, sync still runs without it
			l.Warn("Snapshot storage unavailable, archiving disabled", zap.Error(err))
		} else {
			client = c
		}
	}

	return &app{
		cfg:     cfg,
		logger:  l,
		db:      db,
		store:   store.NewGormStore(db),
		client:  client,
		service: ipo.NewServiceFromConfig(cfg.IPO, db, client, cfg.Storage.Bucket, l),
	}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.logger.Sync()
}
