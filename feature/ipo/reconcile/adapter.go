package reconcile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ipo-tracker/core/reconcile"
	"ipo-tracker/feature/ipo/models"
)

// Store is the persistence the stock adapter needs.
type Store interface {
	FindByKey(ctx context.Context, symbol string, market models.Market) (*models.Stock, error)
	Create(ctx context.Context, stock *models.Stock) error
	UpdateFields(ctx context.Context, stock *models.Stock) error
}

// StockAdapter implements reconcile.Adapter for IPO stocks.
type StockAdapter struct {
	store Store
}

var _ reconcile.Adapter[models.CanonicalStockRecord, models.Stock] = (*StockAdapter)(nil)

// NewAdapter creates a stock adapter on the given store.
func NewAdapter(store Store) *StockAdapter {
	return &StockAdapter{store: store}
}

// NewEngine is a shorthand for a reconcile engine bound to a stock adapter.
func NewEngine(store Store) *reconcile.Engine[models.CanonicalStockRecord, models.Stock] {
	return reconcile.NewEngine[models.CanonicalStockRecord, models.Stock](NewAdapter(store))
}

// Name returns the unique name of this adapter.
func (a *StockAdapter) Name() string {
	return "ipo_stock"
}

// Key returns "SYMBOL@MARKET".
func (a *StockAdapter) Key(c models.CanonicalStockRecord) string {
	return c.Key()
}

// Validate rejects candidates without a symbol or company name.
func (a *StockAdapter) Validate(c models.CanonicalStockRecord) error {
	if strings.TrimSpace(c.Symbol) == "" {
		return fmt.Errorf("%w: symbol", reconcile.ErrMissingField)
	}
	if strings.TrimSpace(c.CompanyName) == "" {
		return fmt.Errorf("%w: companyName", reconcile.ErrMissingField)
	}
	return nil
}

// Lookup finds the stock by (symbol, market).
func (a *StockAdapter) Lookup(ctx context.Context, c models.CanonicalStockRecord) (*models.Stock, error) {
	return a.store.FindByKey(ctx, c.Symbol, c.Market)
}

// Create inserts a new stock built from the candidate.
func (a *StockAdapter) Create(ctx context.Context, c models.CanonicalStockRecord) error {
	return a.store.Create(ctx, models.NewStock(c))
}

// CompareFields diffs the allow-listed fields.
func (a *StockAdapter) CompareFields(s *models.Stock, c models.CanonicalStockRecord) []string {
	var diff []string
	add := func(field string, stored, candidate any) {
		diff = append(diff, fmt.Sprintf("%s: stored=%s candidate=%s", field, show(stored), show(candidate)))
	}

	if !equalFloat(s.ExpectedPrice, c.ExpectedPrice) {
		add("expectedPrice", s.ExpectedPrice, c.ExpectedPrice)
	}
	if !equalString(s.PriceRange, c.PriceRange) {
		add("priceRange", s.PriceRange, c.PriceRange)
	}
	if !equalInt(s.SharesOffered, c.SharesOffered) {
		add("sharesOffered", s.SharesOffered, c.SharesOffered)
	}
	if !equalDate(s.IPODate, c.IPODate) {
		add("ipoDate", s.IPODate, c.IPODate)
	}
	if s.Status != c.Status {
		add("status", s.Status, c.Status)
	}
	if !equalString(s.Sector, c.Sector) {
		add("sector", s.Sector, c.Sector)
	}
	if !equalString(s.Industry, c.Industry) {
		add("industry", s.Industry, c.Industry)
	}
	if !equalString(s.Description, c.Description) {
		add("description", s.Description, c.Description)
	}
	if !equalFloat(s.MarketCap, c.MarketCap) {
		add("marketCap", s.MarketCap, c.MarketCap)
	}
	if !equalFloat(s.Revenue, c.Revenue) {
		add("revenue", s.Revenue, c.Revenue)
	}
	if !equalFloat(s.NetIncome, c.NetIncome) {
		add("netIncome", s.NetIncome, c.NetIncome)
	}
	if !equalInt(s.Employees, c.Employees) {
		add("employees", s.Employees, c.Employees)
	}
	if !equalString(s.Website, c.Website) {
		add("website", s.Website, c.Website)
	}

	return diff
}

// Overwrite replaces every allow-listed field and writes the row once.
func (a *StockAdapter) Overwrite(ctx context.Context, s *models.Stock, c models.CanonicalStockRecord) error {
	s.ApplyMutable(c)
	return a.store.UpdateFields(ctx, s)
}

func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalInt(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// equalDate compares at millisecond precision; nil only equals nil.
func equalDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.UnixMilli() == b.UnixMilli()
}

func show(v any) string {
	switch p := v.(type) {
	case *float64:
		if p != nil {
			return fmt.Sprintf("%v", *p)
		}
	case *int64:
		if p != nil {
			return fmt.Sprintf("%d", *p)
		}
	case *string:
		if p != nil {
			return *p
		}
	case *time.Time:
		if p != nil {
			return p.UTC().Format(time.RFC3339)
		}
	case models.Status:
		return string(p)
	default:
		return fmt.Sprintf("%v", v)
	}
	return "<nil>"
}
