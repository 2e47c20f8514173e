package models

import "time"

// Stock is the durable IPO entity. It is created on first sight of a
// (symbol, market) pair and updated thereafter; ID never changes.
type Stock struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Symbol        string     `gorm:"size:32;not null;uniqueIndex:idx_ipo_stocks_symbol_market" json:"symbol"`
	Market        Market     `gorm:"size:8;not null;uniqueIndex:idx_ipo_stocks_symbol_market;index" json:"market"`
	CompanyName   string     `gorm:"size:255;not null" json:"companyName"`
	Status        Status     `gorm:"size:16;not null;index" json:"status"`
	ExpectedPrice *float64   `json:"expectedPrice"`
	PriceRange    *string    `gorm:"size:64" json:"priceRange"`
	SharesOffered *int64     `json:"sharesOffered"`
	IPODate       *time.Time `gorm:"column:ipo_date;index" json:"ipoDate"`
	Sector        *string    `gorm:"size:128" json:"sector"`
	Industry      *string    `gorm:"size:128" json:"industry"`
	Description   *string    `gorm:"type:text" json:"description"`
	Website       *string    `gorm:"size:255" json:"website"`
	Underwriters  []string   `gorm:"serializer:json" json:"underwriters"`
	MarketCap     *float64   `json:"marketCap"`
	Revenue       *float64   `json:"revenue"`
	NetIncome     *float64   `json:"netIncome"`
	Employees     *int64     `json:"employees"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// TableName pins the table name.
func (Stock) TableName() string {
	return "ipo_stocks"
}

// MutableColumns is the allow-list of columns compared and overwritten on update.
var MutableColumns = []string{
	"expected_price",
	"price_range",
	"shares_offered",
	"ipo_date",
	"status",
	"sector",
	"industry",
	"description",
	"market_cap",
	"revenue",
	"net_income",
	"employees",
	"website",
}

// NewStock builds a new entity from a candidate record.
func NewStock(r CanonicalStockRecord) *Stock {
	s := &Stock{
		Symbol:       r.Symbol,
		Market:       r.Market,
		CompanyName:  r.CompanyName,
		Underwriters: append([]string{}, r.Underwriters...),
	}
	s.ApplyMutable(r)
	return s
}

// ApplyMutable copies every allow-listed field from the candidate.
func (s *Stock) ApplyMutable(r CanonicalStockRecord) {
	s.ExpectedPrice = r.ExpectedPrice
	s.PriceRange = r.PriceRange
	s.SharesOffered = r.SharesOffered
	s.IPODate = r.IPODate
	s.Status = r.Status
	s.Sector = r.Sector
	s.Industry = r.Industry
	s.Description = r.Description
	s.MarketCap = r.MarketCap
	s.Revenue = r.Revenue
	s.NetIncome = r.NetIncome
	s.Employees = r.Employees
	s.Website = r.Website
}

// MarketStat is the per-market summary used by the status endpoint.
type MarketStat struct {
	Market      Market     `json:"market"`
	Total       int64      `json:"total"`
	LastUpdated *time.Time `json:"lastUpdated"`
}
