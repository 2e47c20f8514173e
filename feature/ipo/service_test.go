package ipo

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ipo-tracker/core/database"
	"ipo-tracker/core/storage/mocks"
	"ipo-tracker/feature/ipo/archive"
	"ipo-tracker/feature/ipo/models"
	"ipo-tracker/feature/ipo/sources"
	"ipo-tracker/feature/ipo/sources/finnhub"
	"ipo-tracker/feature/ipo/store"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

type fakeSource struct {
	name    string
	market  models.Market
	records []sources.Record
	raw     []byte
	err     error

	calls   int32
	started chan struct{}
	release chan struct{}

	// blocks Fetch until its context ends
	hang bool
}

func (f *fakeSource) Name() string          { return f.name }
func (f *fakeSource) Market() models.Market { return f.market }

func (f *fakeSource) Fetch(ctx context.Context) (*sources.Batch, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	if f.hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &sources.Batch{Records: f.records, Raw: f.raw}, nil
}

type stubRecord struct {
	label     string
	skip      bool
	candidate models.CanonicalStockRecord
	err       error
	panicMsg  string
	onSkip    func()
}

func (r stubRecord) Label() string { return r.label }

func (r stubRecord) Skip() (bool, string) {
	if r.onSkip != nil {
		r.onSkip()
	}
	return r.skip, "stub"
}

func (r stubRecord) Transform(time.Time) (models.CanonicalStockRecord, error) {
	if r.panicMsg != "" {
		panic(r.panicMsg)
	}
	return r.candidate, r.err
}

func usRecord(symbol string) stubRecord {
	return stubRecord{
		label: symbol,
		candidate: models.CanonicalStockRecord{
			Symbol:       symbol,
			CompanyName:  symbol + " Holdings",
			Market:       models.MarketUS,
			Status:       models.StatusUpcoming,
			Underwriters: []string{},
		},
	}
}

// failingStore fails lookups of one symbol.
type failingStore struct {
	*store.GormStore
	symbol string
}

func (f *failingStore) FindByKey(ctx context.Context, symbol string, market models.Market) (*models.Stock, error) {
	if symbol == f.symbol {
		return nil, errors.New("boom")
	}
	return f.GormStore.FindByKey(ctx, symbol, market)
}

func newStore(t *testing.T) *store.GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	s := store.NewGormStore(db)
	require.NoError(t, s.AutoMigrate(context.Background()))
	return s
}

func newTestService(repo Repository, arch *archive.Archiver, srcs ...sources.Source) *Service {
	svc := NewService(repo, srcs, arch, SyncConfig{
		MaxConcurrent:       2,
		FetchTimeoutSeconds: 5,
		StatusCacheSeconds:  60,
		ClassifySectors:     true,
	}, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func finnhubSource() *fakeSource {
	return &fakeSource{
		name:   finnhub.Name,
		market: models.MarketUS,
		records: []sources.Record{
			finnhub.CalendarEntry{Symbol: "ABCD", Name: "Able Corp", Price: "$10-$12", Date: "2026-10-16", Status: "filed"},
			finnhub.CalendarEntry{Symbol: "", Name: ""},
		},
		raw: []byte(`{"ipoCalendar":[]}`),
	}
}

func TestSyncSource_EndToEnd(t *testing.T) {
	repo := newStore(t)
	svc := newTestService(repo, nil, finnhubSource())

	res, err := svc.SyncSource(context.Background(), finnhub.Name)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, res.Errors)
	assert.NotEmpty(t, res.RunID)

	stock, err := repo.Get(context.Background(), models.MarketUS, "ABCD")
	require.NoError(t, err)
	require.NotNil(t, stock.ExpectedPrice)
	assert.Equal(t, 11.0, *stock.ExpectedPrice)
	assert.Equal(t, models.StatusListed, stock.Status)
}

func TestSyncSource_Idempotent(t *testing.T) {
	repo := newStore(t)
	svc := newTestService(repo, nil, finnhubSource())
	ctx := context.Background()

	_, err := svc.SyncSource(ctx, finnhub.Name)
	require.NoError(t, err)
	first, err := repo.Get(ctx, models.MarketUS, "ABCD")
	require.NoError(t, err)

	res, err := svc.SyncSource(ctx, finnhub.Name)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Added)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 2, res.Skipped)

	second, err := repo.Get(ctx, models.MarketUS, "ABCD")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.UpdatedAt.Equal(second.UpdatedAt), "a skipped record must not be written")

	_, total, err := repo.List(ctx, store.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestSyncSource_SameSymbolDifferentMarkets(t *testing.T) {
	repo := newStore(t)
	hk := usRecord("ABCD")
	hk.candidate.Market = models.MarketHK
	src := &fakeSource{name: "mixed", records: []sources.Record{usRecord("ABCD"), hk, usRecord("ABCD")}}
	svc := newTestService(repo, nil, src)

	res, err := svc.SyncSource(context.Background(), "mixed")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 1, res.Skipped)

	_, total, err := repo.List(context.Background(), store.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestSyncSource_RecordFailureIsolation(t *testing.T) {
	repo := &failingStore{GormStore: newStore(t), symbol: "C"}
	src := &fakeSource{name: "stub", records: []sources.Record{
		usRecord("A"), usRecord("B"), usRecord("C"), usRecord("D"), usRecord("E"),
	}}
	svc := newTestService(repo, nil, src)

	res, err := svc.SyncSource(context.Background(), "stub")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 5, res.Processed)
	assert.Equal(t, 4, res.Added)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Error processing C: lookup ipo_stock C@US: boom", res.Errors[0])
}

func TestSyncSource_TransformErrorAndPanic(t *testing.T) {
	repo := newStore(t)
	src := &fakeSource{name: "stub", records: []sources.Record{
		stubRecord{label: "BAD", err: errors.New("bad payload")},
		stubRecord{panicMsg: "nil map"},
		stubRecord{label: "NONAME", candidate: models.CanonicalStockRecord{Symbol: "NONAME", Market: models.MarketUS}},
		usRecord("OK"),
	}}
	svc := newTestService(repo, nil, src)

	res, err := svc.SyncSource(context.Background(), "stub")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, 1, res.Added)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, "Error processing BAD: bad payload", res.Errors[0])
	assert.Equal(t, "Error processing unknown: panic: nil map", res.Errors[1])
	assert.Equal(t, "Error processing NONAME: missing required field: companyName", res.Errors[2])
}

func TestSyncAll_SourceIsolation(t *testing.T) {
	repo := newStore(t)
	broken := &fakeSource{name: "broken", err: &sources.SourceError{Source: "broken", StatusCode: 503, Err: errors.New("unavailable")}}
	healthy := &fakeSource{name: "healthy", records: []sources.Record{usRecord("A")}}
	svc := newTestService(repo, nil, broken, healthy)

	sum, err := svc.SyncAll(context.Background())
	require.NoError(t, err)
	assert.False(t, sum.Success)
	require.Len(t, sum.Results, 2)

	assert.Equal(t, "broken", sum.Results[0].Source)
	assert.False(t, sum.Results[0].Success)
	require.Len(t, sum.Results[0].Errors, 1)
	assert.Contains(t, sum.Results[0].Errors[0], "503")

	assert.Equal(t, "healthy", sum.Results[1].Source)
	assert.True(t, sum.Results[1].Success)
	assert.Equal(t, 1, sum.Added)
}

func TestSyncSource_Unknown(t *testing.T) {
	svc := newTestService(newStore(t), nil)

	_, err := svc.SyncSource(context.Background(), "nasdaq")
	assert.ErrorIs(t, err, models.ErrUnknownSource)
}

func TestSyncSource_CoalescesConcurrentRuns(t *testing.T) {
	src := &fakeSource{
		name:    "slow",
		records: []sources.Record{usRecord("A")},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := newTestService(newStore(t), nil, src)

	var wg sync.WaitGroup
	results := make([]*SyncResult, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = svc.SyncSource(context.Background(), "slow")
	}()
	<-src.started

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = svc.SyncSource(context.Background(), "slow")
	}()
	time.Sleep(50 * time.Millisecond)
	close(src.release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&src.calls))
	require.NotNil(t, results[0])
	assert.Same(t, results[0], results[1])
}

func TestShutdown_CancelsRunStartedWithoutDeadline(t *testing.T) {
	src := &fakeSource{name: "stuck", started: make(chan struct{}), hang: true}
	svc := newTestService(newStore(t), nil, src)
	svc.cfg.FetchTimeoutSeconds = 600

	results := make(chan *SyncResult, 2)
	go func() {
		res, _ := svc.SyncSource(context.Background(), "stuck")
		results <- res
	}()
	<-src.started

	// a scheduler tick joins the run started by an HTTP trigger
	go func() {
		res, _ := svc.SyncSource(context.Background(), "stuck")
		results <- res
	}()
	time.Sleep(50 * time.Millisecond)

	svc.Shutdown()

	for i := 0; i < 2; i++ {
		select {
		case res := <-results:
			require.NotNil(t, res)
			assert.False(t, res.Success)
			require.Len(t, res.Errors, 1)
			assert.Contains(t, res.Errors[0], "Failed to sync stuck")
			assert.Contains(t, res.Errors[0], context.Canceled.Error())
		case <-time.After(2 * time.Second):
			t.Fatal("run did not stop after Shutdown")
		}
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&src.calls))
}

func TestSyncSource_CancelledMidLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &fakeSource{name: "stub", records: []sources.Record{
		stubRecord{label: "A", skip: true, onSkip: cancel},
		usRecord("B"),
	}}
	repo := newStore(t)
	svc := newTestService(repo, nil, src)

	res, err := svc.SyncSource(ctx, "stub")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "interrupted")

	runs, err := repo.LatestRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.False(t, runs[0].Success)
}

func TestSyncSource_ClassifiesMissingSector(t *testing.T) {
	repo := newStore(t)
	rec := usRecord("BIO")
	rec.candidate.CompanyName = "Able Therapeutics"
	svc := newTestService(repo, nil, &fakeSource{name: "stub", records: []sources.Record{rec}})

	_, err := svc.SyncSource(context.Background(), "stub")
	require.NoError(t, err)

	stock, err := repo.Get(context.Background(), models.MarketUS, "BIO")
	require.NoError(t, err)
	require.NotNil(t, stock.Sector)
	assert.Equal(t, "Healthcare", *stock.Sector)
	assert.Equal(t, "Biotechnology", *stock.Industry)
}

func TestSyncSource_ArchivesRawPayload(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "ipo-snapshots", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "snapshots/finnhub/2026-10-17/")
	}), mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	svc := newTestService(newStore(t), archive.New(client, "ipo-snapshots"), finnhubSource())

	res, err := svc.SyncSource(context.Background(), finnhub.Name)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "snapshots/finnhub/2026-10-17/"+res.RunID+".json", res.Snapshot)
	client.AssertExpectations(t)
}

func TestSyncSource_ArchiveFailureDoesNotFailSource(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket gone"))

	svc := newTestService(newStore(t), archive.New(client, "b"), finnhubSource())

	res, err := svc.SyncSource(context.Background(), finnhub.Name)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Snapshot)
	assert.Empty(t, res.Errors)
}

func TestStatus_CachedAndInvalidatedBySync(t *testing.T) {
	repo := newStore(t)
	svc := newTestService(repo, nil, finnhubSource())
	ctx := context.Background()

	before, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Empty(t, before.Markets)
	assert.Equal(t, []string{finnhub.Name}, before.Sources)

	again, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Same(t, before, again)

	_, err = svc.SyncAll(ctx)
	require.NoError(t, err)

	after, err := svc.Status(ctx)
	require.NoError(t, err)
	require.Len(t, after.Markets, 1)
	assert.Equal(t, int64(1), after.Markets[0].Total)
	require.Len(t, after.LastRuns, 1)
	assert.Equal(t, finnhub.Name, after.LastRuns[0].Source)
	assert.Equal(t, 1, after.LastRuns[0].Added)
}

func TestSnapshots(t *testing.T) {
	svc := newTestService(newStore(t), nil, finnhubSource())

	_, err := svc.Snapshots(context.Background(), "nope", 5)
	assert.ErrorIs(t, err, models.ErrUnknownSource)

	list, err := svc.Snapshots(context.Background(), finnhub.Name, 5)
	assert.NoError(t, err)
	assert.Nil(t, list)
}
