package ipo

import (
	"context"
	"fmt"
	"time"

	corereconcile "ipo-tracker/core/reconcile"
	"ipo-tracker/feature/ipo/archive"
	"ipo-tracker/feature/ipo/classify"
	"ipo-tracker/feature/ipo/models"
	"ipo-tracker/feature/ipo/reconcile"
	"ipo-tracker/feature/ipo/sources"
	"ipo-tracker/feature/ipo/store"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const statusCacheKey = "status"

// Repository is the persistence the service needs.
type Repository interface {
	reconcile.Store
	MarketStats(ctx context.Context) ([]models.MarketStat, error)
	List(ctx context.Context, f store.ListFilter) ([]models.Stock, int64, error)
	Get(ctx context.Context, market models.Market, symbol string) (*models.Stock, error)
	RecordRun(ctx context.Context, run *store.SyncRun) error
	LatestRuns(ctx context.Context) ([]store.SyncRun, error)
}

// Service runs source syncs and serves the stored stocks.
type Service struct {
	repo       Repository
	sources    []sources.Source
	byName     map[string]sources.Source
	engine     *corereconcile.Engine[models.CanonicalStockRecord, models.Stock]
	classifier *classify.Classifier
	archiver   *archive.Archiver
	cache      *cache.Cache
	cfg        SyncConfig
	logger     *zap.Logger

	runs singleflight.Group
	now  func() time.Time

	// base outlives callers; Shutdown cancels it and with it every in-flight run
	base     context.Context
	shutdown context.CancelFunc
}

// NewService creates the sync service. archiver may be nil when storage is disabled.
func NewService(repo Repository, srcs []sources.Source, archiver *archive.Archiver, cfg SyncConfig, logger *zap.Logger) *Service {
	byName := make(map[string]sources.Source, len(srcs))
	for _, src := range srcs {
		byName[src.Name()] = src
	}

	s := &Service{
		repo:     repo,
		sources:  srcs,
		byName:   byName,
		engine:   reconcile.NewEngine(repo),
		archiver: archiver,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
	s.base, s.shutdown = context.WithCancel(context.Background())
	if cfg.ClassifySectors {
		s.classifier = classify.New(nil)
	}
	if cfg.StatusCacheSeconds > 0 {
		ttl := time.Duration(cfg.StatusCacheSeconds) * time.Second
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

// Sources returns the registered source names in order.
func (s *Service) Sources() []string {
	names := make([]string, 0, len(s.sources))
	for _, src := range s.sources {
		names = append(names, src.Name())
	}
	return names
}

// HasSource reports whether a source is registered.
func (s *Service) HasSource(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// SyncAll syncs every source concurrently, at most MaxConcurrent at a time.
// A source failure is reported in its result and never affects the others.
func (s *Service) SyncAll(ctx context.Context) (*SyncSummary, error) {
	results := make([]*SyncResult, len(s.sources))

	var g errgroup.Group
	if s.cfg.MaxConcurrent > 0 {
		g.SetLimit(s.cfg.MaxConcurrent)
	}
	for i, src := range s.sources {
		g.Go(func() error {
			res, err := s.SyncSource(ctx, src.Name())
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := summarize(results)
	s.logger.Info("IPO sync completed",
		zap.Bool("success", sum.Success),
		zap.Int("processed", sum.Processed),
		zap.Int("added", sum.Added),
		zap.Int("updated", sum.Updated),
		zap.Int("skipped", sum.Skipped),
		zap.Int("errors", sum.Errors))
	return sum, nil
}

// SyncSource syncs one source by name. A call made while the same source is already
// syncing waits for and shares the in-flight result.
func (s *Service) SyncSource(ctx context.Context, name string) (*SyncResult, error) {
	src, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, models.ErrUnknownSource)
	}

	v, _, shared := s.runs.Do(name, func() (any, error) {
		// callers that join later share this run, so it must also stop on Shutdown
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		stop := context.AfterFunc(s.base, cancel)
		defer stop()

		return s.run(runCtx, src), nil
	})
	if shared {
		s.logger.Debug("Joined in-flight sync", zap.String("source", name))
	}
	return v.(*SyncResult), nil
}

// Shutdown cancels every in-flight run, whichever caller started it.
func (s *Service) Shutdown() {
	s.shutdown()
}

func (s *Service) run(ctx context.Context, src sources.Source) *SyncResult {
	res := &SyncResult{
		Source:    src.Name(),
		RunID:     uuid.NewString(),
		Errors:    []string{},
		StartedAt: s.now().UTC(),
	}
	log := s.logger.With(zap.String("source", res.Source), zap.String("run_id", res.RunID))
	log.Info("Source sync started")

	defer s.finish(ctx, res, log)

	batch, err := s.fetch(ctx, src)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("Failed to sync %s: %v", res.Source, err))
		log.Error("Source fetch failed", zap.Error(err))
		return res
	}

	if key := s.archive(ctx, res, batch.Raw, log); key != "" {
		res.Snapshot = key
	}

	now := s.now()
	for _, rec := range batch.Records {
		if err := ctx.Err(); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Sync of %s interrupted: %v", res.Source, err))
			log.Warn("Source sync interrupted", zap.Int("processed", res.Processed), zap.Error(err))
			return res
		}
		res.Processed++
		s.process(ctx, rec, now, res, log)
	}

	res.Success = true
	return res
}

func (s *Service) fetch(ctx context.Context, src sources.Source) (*sources.Batch, error) {
	timeout := time.Duration(s.cfg.FetchTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	batch, err := src.Fetch(fetchCtx)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return &sources.Batch{}, nil
	}
	return batch, nil
}

// process handles one native record. Every failure, panics included, ends up in
// res.Errors and never escapes.
func (s *Service) process(ctx context.Context, rec sources.Record, now time.Time, res *SyncResult, log *zap.Logger) {
	defer func() {
		if r := recover(); r != nil {
			res.Errors = append(res.Errors, recordError(rec, fmt.Errorf("panic: %v", r)))
			log.Error("Record processing panicked", zap.Any("panic", r))
		}
	}()

	if skip, reason := rec.Skip(); skip {
		res.Skipped++
		log.Debug("Record skipped", zap.String("symbol", rec.Label()), zap.String("reason", reason))
		return
	}

	candidate, err := rec.Transform(now)
	if err != nil {
		res.Errors = append(res.Errors, recordError(rec, err))
		return
	}
	s.enrich(&candidate)

	out, err := s.engine.Upsert(ctx, candidate)
	if err != nil {
		res.Errors = append(res.Errors, recordError(rec, err))
		log.Warn("Record upsert failed", zap.String("key", out.Key), zap.Error(err))
		return
	}

	switch out.Outcome {
	case corereconcile.OutcomeAdded:
		res.Added++
	case corereconcile.OutcomeUpdated:
		res.Updated++
		log.Debug("Record updated", zap.String("key", out.Key), zap.Strings("mismatch", out.Mismatch))
	default:
		res.Skipped++
	}
}

func (s *Service) enrich(c *models.CanonicalStockRecord) {
	if s.classifier == nil || c.Sector != nil {
		return
	}
	desc := ""
	if c.Description != nil {
		desc = *c.Description
	}
	sector, industry, ok := s.classifier.Classify(c.CompanyName, desc)
	if !ok {
		return
	}
	c.Sector = &sector
	if c.Industry == nil {
		c.Industry = &industry
	}
}

func (s *Service) archive(ctx context.Context, res *SyncResult, raw []byte, log *zap.Logger) string {
	if s.archiver == nil || len(raw) == 0 {
		return ""
	}
	key, err := s.archiver.Put(ctx, res.Source, res.RunID, res.StartedAt, raw)
	if err != nil {
		log.Warn("Snapshot archive failed", zap.Error(err))
		return ""
	}
	return key
}

func (s *Service) finish(ctx context.Context, res *SyncResult, log *zap.Logger) {
	res.FinishedAt = s.now().UTC()

	if err := s.repo.RecordRun(context.WithoutCancel(ctx), res.toRun()); err != nil {
		log.Warn("Failed to record sync run", zap.Error(err))
	}
	if s.cache != nil {
		s.cache.Delete(statusCacheKey)
	}

	log.Info("Source sync finished",
		zap.Bool("success", res.Success),
		zap.Int("processed", res.Processed),
		zap.Int("added", res.Added),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
		zap.Int("errors", len(res.Errors)),
		zap.Duration("took", res.FinishedAt.Sub(res.StartedAt)))
}

func recordError(rec sources.Record, err error) string {
	label := rec.Label()
	if label == "" {
		label = "unknown"
	}
	return fmt.Sprintf("Error processing %s: %v", label, err)
}

// Status returns the per-market stats and the last run of every source.
func (s *Service) Status(ctx context.Context) (*StatusReport, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(statusCacheKey); ok {
			return v.(*StatusReport), nil
		}
	}

	markets, err := s.repo.MarketStats(ctx)
	if err != nil {
		return nil, err
	}
	runs, err := s.repo.LatestRuns(ctx)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{
		Sources:     s.Sources(),
		Markets:     markets,
		LastRuns:    runs,
		GeneratedAt: s.now().UTC(),
	}
	if s.cache != nil {
		s.cache.SetDefault(statusCacheKey, report)
	}
	return report, nil
}

// ListStocks returns a filtered page of stocks.
func (s *Service) ListStocks(ctx context.Context, f store.ListFilter) (*StockPage, error) {
	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &StockPage{Items: items, Total: total, Limit: f.Limit, Offset: f.Offset}, nil
}

// GetStock returns one stock or an error wrapping models.ErrStockNotFound.
func (s *Service) GetStock(ctx context.Context, market models.Market, symbol string) (*models.Stock, error) {
	return s.repo.Get(ctx, market, symbol)
}

// Snapshots lists the archived payloads of a source. It returns (nil, nil) when
// archiving is disabled.
func (s *Service) Snapshots(ctx context.Context, source string, limit int) (*SnapshotList, error) {
	if !s.HasSource(source) {
		return nil, fmt.Errorf("%s: %w", source, models.ErrUnknownSource)
	}
	if s.archiver == nil {
		return nil, nil
	}
	snaps, err := s.archiver.List(ctx, source, limit)
	if err != nil {
		return nil, err
	}
	return &SnapshotList{Source: source, Snapshots: snaps}, nil
}
