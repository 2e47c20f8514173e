package ipo

import (
	"ipo-tracker/core/middleware/throttle"
	"ipo-tracker/core/storage"
	"ipo-tracker/feature/ipo/archive"
	"ipo-tracker/feature/ipo/sources"
	"ipo-tracker/feature/ipo/sources/finnhub"
	"ipo-tracker/feature/ipo/sources/hkex"
	"ipo-tracker/feature/ipo/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewSources builds the enabled upstream sources in registration order.
func NewSources(cfg Config, logger *zap.Logger) []sources.Source {
	var srcs []sources.Source
	if cfg.Finnhub.Enabled {
		srcs = append(srcs, finnhub.NewClient(cfg.Finnhub, logger.Named(finnhub.Name)))
	}
	if cfg.HKEX.Enabled {
		srcs = append(srcs, hkex.NewClient(cfg.HKEX, logger.Named(hkex.Name)))
	}
	return srcs
}

// NewServiceFromConfig wires the service on a database connection. client may be nil
// when object storage is disabled.
func NewServiceFromConfig(cfg Config, db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	var arch *archive.Archiver
	if client != nil {
		arch = archive.New(client, bucket)
	}
	return NewService(store.NewGormStore(db), NewSources(cfg, logger), arch, cfg.Sync, logger)
}

// NewFeature creates the IPO feature. syncPerMinute throttles the sync triggers.
func NewFeature(service *Service, logger *zap.Logger, syncPerMinute int) *Feature {
	h := NewHandler(service, logger, throttle.New(syncPerMinute))
	return &Feature{service: service, handler: h}
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "ipo"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
