package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"ipo-tracker/core/database"
	"ipo-tracker/feature/ipo/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	s := NewGormStore(db)
	require.NoError(t, s.AutoMigrate(context.Background()))
	return s
}

func setupMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)
	return NewGormStore(db), mock
}

func fptr(f float64) *float64 { return &f }

func sptr(s string) *string { return &s }

func TestGormStore_CreateAndFind(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	missing, err := s.FindByKey(ctx, "ABCD", models.MarketUS)
	require.NoError(t, err)
	assert.Nil(t, missing)

	stock := &models.Stock{
		Symbol:        "ABCD",
		Market:        models.MarketUS,
		CompanyName:   "Able Corp",
		Status:        models.StatusUpcoming,
		ExpectedPrice: fptr(11),
		Underwriters:  []string{"Goldman", "Morgan"},
	}
	require.NoError(t, s.Create(ctx, stock))
	assert.NotZero(t, stock.ID)

	found, err := s.FindByKey(ctx, "ABCD", models.MarketUS)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, stock.ID, found.ID)
	assert.Equal(t, []string{"Goldman", "Morgan"}, found.Underwriters)
	assert.Equal(t, 11.0, *found.ExpectedPrice)

	other, err := s.FindByKey(ctx, "ABCD", models.MarketHK)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestGormStore_UniqueSymbolMarket(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.Stock{Symbol: "X", Market: models.MarketUS, CompanyName: "X", Status: models.StatusUpcoming}))
	require.NoError(t, s.Create(ctx, &models.Stock{Symbol: "X", Market: models.MarketHK, CompanyName: "X", Status: models.StatusUpcoming}))

	err := s.Create(ctx, &models.Stock{Symbol: "X", Market: models.MarketUS, CompanyName: "Dup", Status: models.StatusUpcoming})
	assert.Error(t, err)
}

func TestGormStore_UpdateFieldsWritesNils(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	stock := &models.Stock{
		Symbol:        "ABCD",
		Market:        models.MarketUS,
		CompanyName:   "Able Corp",
		Status:        models.StatusUpcoming,
		ExpectedPrice: fptr(11),
		Sector:        sptr("Technology"),
	}
	require.NoError(t, s.Create(ctx, stock))
	created := stock.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	stock.Status = models.StatusListed
	stock.ExpectedPrice = nil
	stock.Sector = nil
	stock.CompanyName = "Renamed"
	require.NoError(t, s.UpdateFields(ctx, stock))

	got, err := s.FindByKey(ctx, "ABCD", models.MarketUS)
	require.NoError(t, err)
	assert.Equal(t, models.StatusListed, got.Status)
	assert.Nil(t, got.ExpectedPrice)
	assert.Nil(t, got.Sector)
	assert.Equal(t, "Able Corp", got.CompanyName, "company name is not an allow-listed column")
	assert.True(t, got.UpdatedAt.After(created))
}

func TestGormStore_MarketStatsAndList(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	d1 := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	for _, st := range []*models.Stock{
		{Symbol: "A", Market: models.MarketUS, CompanyName: "A", Status: models.StatusListed, IPODate: &d1},
		{Symbol: "B", Market: models.MarketUS, CompanyName: "B", Status: models.StatusUpcoming, IPODate: &d2},
		{Symbol: "0001", Market: models.MarketHK, CompanyName: "C", Status: models.StatusUpcoming},
	} {
		require.NoError(t, s.Create(ctx, st))
	}

	stats, err := s.MarketStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, models.MarketHK, stats[0].Market)
	assert.Equal(t, int64(1), stats[0].Total)
	assert.Equal(t, models.MarketUS, stats[1].Market)
	assert.Equal(t, int64(2), stats[1].Total)
	assert.NotNil(t, stats[1].LastUpdated)

	list, total, err := s.List(ctx, ListFilter{Market: models.MarketUS})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].Symbol)

	list, total, err = s.List(ctx, ListFilter{Status: models.StatusUpcoming, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 1)
}

func TestGormStore_Get(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, models.MarketUS, "NOPE")
	assert.ErrorIs(t, err, models.ErrStockNotFound)

	require.NoError(t, s.Create(ctx, &models.Stock{Symbol: "A", Market: models.MarketUS, CompanyName: "A", Status: models.StatusListed}))
	got, err := s.Get(ctx, models.MarketUS, "A")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Symbol)
}

func TestGormStore_LatestRuns(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	base := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	runs := []*SyncRun{
		{RunID: "r1", Source: "finnhub", Success: true, Added: 3, StartedAt: base, FinishedAt: base.Add(time.Minute)},
		{RunID: "r2", Source: "finnhub", Success: false, Errors: []string{"boom"}, StartedAt: base.Add(time.Hour), FinishedAt: base.Add(time.Hour + time.Minute)},
		{RunID: "r3", Source: "hkex", Success: true, StartedAt: base, FinishedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		require.NoError(t, s.RecordRun(ctx, r))
	}

	latest, err := s.LatestRuns(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "r2", latest[0].RunID)
	assert.Equal(t, []string{"boom"}, latest[0].Errors)
	assert.Equal(t, "r3", latest[1].RunID)
}

func TestGormStore_FindByKey_DBError(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `ipo_stocks` WHERE symbol = \\? AND market = \\?").
		WillReturnError(errors.New("connection reset"))

	stock, err := s.FindByKey(context.Background(), "ABCD", models.MarketUS)
	assert.Nil(t, stock)
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_UpdateFields_DBError(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `ipo_stocks` SET").WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	err := s.UpdateFields(context.Background(), &models.Stock{ID: 7, Symbol: "A", Market: models.MarketUS})
	assert.EqualError(t, err, "deadlock")
	assert.NoError(t, mock.ExpectationsWereMet())
}
