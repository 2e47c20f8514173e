package models

import (
	"strings"
	"time"
)

// Market is the origin market of a listing.
type Market string

const (
	MarketUS Market = "US"
	MarketHK Market = "HK"
)

// IsValid checks if the market is a known one.
func (m Market) IsValid() bool {
	switch m {
	case MarketUS, MarketHK:
		return true
	default:
		return false
	}
}

// ParseMarket normalizes a user-supplied market code.
func ParseMarket(s string) (Market, bool) {
	m := Market(strings.ToUpper(strings.TrimSpace(s)))
	return m, m.IsValid()
}

// Status is the canonical IPO lifecycle status.
type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusPricing   Status = "PRICING"
	StatusListed    Status = "LISTED"
	StatusWithdrawn Status = "WITHDRAWN"
	StatusPostponed Status = "POSTPONED"
)

// IsValid checks if the status is a canonical one.
func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusPricing, StatusListed, StatusWithdrawn, StatusPostponed:
		return true
	default:
		return false
	}
}

// CanonicalStockRecord is the normalized cross-source shape produced by the
// source transformers. It is never persisted itself; its fields are merged into Stock.
type CanonicalStockRecord struct {
	Symbol        string     `json:"symbol"`
	CompanyName   string     `json:"companyName"`
	Market        Market     `json:"market"`
	Status        Status     `json:"status"`
	ExpectedPrice *float64   `json:"expectedPrice,omitempty"`
	PriceRange    *string    `json:"priceRange,omitempty"`
	SharesOffered *int64     `json:"sharesOffered,omitempty"`
	IPODate       *time.Time `json:"ipoDate,omitempty"`
	Sector        *string    `json:"sector,omitempty"`
	Industry      *string    `json:"industry,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Website       *string    `json:"website,omitempty"`
	Underwriters  []string   `json:"underwriters"`
	MarketCap     *float64   `json:"marketCap,omitempty"`
	Revenue       *float64   `json:"revenue,omitempty"`
	NetIncome     *float64   `json:"netIncome,omitempty"`
	Employees     *int64     `json:"employees,omitempty"`
}

// Key returns the natural dedup key "SYMBOL@MARKET".
func (r CanonicalStockRecord) Key() string {
	return r.Symbol + "@" + string(r.Market)
}
