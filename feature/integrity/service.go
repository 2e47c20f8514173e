package integrity

import (
	"context"
	"errors"

	"ipo-tracker/core/storage"
	"ipo-tracker/feature/integrity/checks"
	"ipo-tracker/feature/ipo/models"
	"ipo-tracker/feature/ipo/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageDisabled is returned by storage checks when no snapshot storage is wired.
var ErrStorageDisabled = errors.New("snapshot storage is disabled")

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	region  string
	db      *gorm.DB
	sources []string
	logger  *zap.Logger
}

// NewService creates a new integrity service. client may be nil when storage is disabled.
func NewService(client storage.Client, bucket, region string, db *gorm.DB, sources []string, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		region:  region,
		db:      db,
		sources: sources,
		logger:  logger,
	}
}

// CheckStorage reports the snapshot bucket state.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, s.sources)
}

// FixStorage creates the snapshot bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStorage(ctx, s.client, s.bucket, s.region, s.logger)
}

// CheckSchema compares the IPO tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.Stock{}, store.SyncRun{})
}
