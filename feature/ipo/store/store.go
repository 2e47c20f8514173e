package store

import (
	"context"
	"errors"
	"fmt"

	"ipo-tracker/feature/ipo/models"

	"gorm.io/gorm"
)

// ListFilter narrows a stock listing.
type ListFilter struct {
	Market models.Market
	Status models.Status
	Limit  int
	Offset int
}

// GormStore persists stocks and sync runs through gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on an open connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates or alters the tables and the (symbol, market) unique index.
func (s *GormStore) AutoMigrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Stock{}, &SyncRun{}); err != nil {
		return fmt.Errorf("failed to migrate ipo tables: %w", err)
	}
	return nil
}

// FindByKey returns the stock for (symbol, market), or nil when none exists.
func (s *GormStore) FindByKey(ctx context.Context, symbol string, market models.Market) (*models.Stock, error) {
	var stock models.Stock
	err := s.db.WithContext(ctx).
		Where("symbol = ? AND market = ?", symbol, market).
		Take(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// Create inserts a new stock. ID and timestamps are assigned on the passed value.
func (s *GormStore) Create(ctx context.Context, stock *models.Stock) error {
	return s.db.WithContext(ctx).Create(stock).Error
}

// UpdateFields writes every allow-listed column of stock in one UPDATE, including
// the ones that are nil, and bumps updated_at.
func (s *GormStore) UpdateFields(ctx context.Context, stock *models.Stock) error {
	cols := append(append([]string{}, models.MutableColumns...), "updated_at")
	return s.db.WithContext(ctx).Model(stock).Select(cols).Updates(stock).Error
}

// MarketStats returns the stock count and the latest update time per market.
func (s *GormStore) MarketStats(ctx context.Context) ([]models.MarketStat, error) {
	var rows []struct {
		Market models.Market
		Total  int64
	}
	if err := s.db.WithContext(ctx).
		Model(&models.Stock{}).
		Select("market, count(*) AS total").
		Group("market").
		Order("market").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count stocks: %w", err)
	}

	stats := make([]models.MarketStat, 0, len(rows))
	for _, r := range rows {
		var latest models.Stock
		if err := s.db.WithContext(ctx).
			Select("updated_at").
			Where("market = ?", r.Market).
			Order("updated_at DESC").
			Take(&latest).Error; err != nil {
			return nil, fmt.Errorf("failed to read last update for %s: %w", r.Market, err)
		}
		updated := latest.UpdatedAt
		stats = append(stats, models.MarketStat{Market: r.Market, Total: r.Total, LastUpdated: &updated})
	}
	return stats, nil
}

// List returns a page of stocks and the total number matching the filter.
func (s *GormStore) List(ctx context.Context, f ListFilter) ([]models.Stock, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if f.Market != "" {
			db = db.Where("market = ?", f.Market)
		}
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		return db
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Stock{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count stocks: %w", err)
	}

	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	stocks := []models.Stock{}
	if err := s.db.WithContext(ctx).Scopes(filter).
		Order("ipo_date DESC").Order("id DESC").
		Limit(limit).Offset(f.Offset).
		Find(&stocks).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list stocks: %w", err)
	}
	return stocks, total, nil
}

// Get returns one stock or ErrStockNotFound.
func (s *GormStore) Get(ctx context.Context, market models.Market, symbol string) (*models.Stock, error) {
	stock, err := s.FindByKey(ctx, symbol, market)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, fmt.Errorf("%s@%s: %w", symbol, market, models.ErrStockNotFound)
	}
	return stock, nil
}

// RecordRun stores a sync run.
func (s *GormStore) RecordRun(ctx context.Context, run *SyncRun) error {
	return s.db.WithContext(ctx).Create(run).Error
}

// LatestRuns returns the most recent run of every source that has one.
func (s *GormStore) LatestRuns(ctx context.Context) ([]SyncRun, error) {
	var names []string
	if err := s.db.WithContext(ctx).Model(&SyncRun{}).
		Distinct("source").Order("source").
		Pluck("source", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list sync sources: %w", err)
	}

	runs := make([]SyncRun, 0, len(names))
	for _, name := range names {
		var run SyncRun
		if err := s.db.WithContext(ctx).
			Where("source = ?", name).
			Order("finished_at DESC").Order("id DESC").
			Take(&run).Error; err != nil {
			return nil, fmt.Errorf("failed to read last run of %s: %w", name, err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
