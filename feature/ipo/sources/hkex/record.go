package hkex

import (
	"strings"
	"time"

	"ipo-tracker/core/utils"
	"ipo-tracker/feature/ipo/models"
	"ipo-tracker/feature/ipo/sources"
)

// ListingsResponse is one page of GET /listings.
type ListingsResponse struct {
	Data       []Listing `json:"data"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}

// Listing is one HKEX new listing row.
type Listing struct {
	StockCode     string   `json:"stockCode"`
	CompanyName   string   `json:"companyName"`
	ListingDate   string   `json:"listingDate"`
	OfferPrice    any      `json:"offerPrice"`
	SharesOffered any      `json:"sharesOffered"`
	FundsRaised   any      `json:"fundsRaised"`
	Status        string   `json:"status"`
	Sector        string   `json:"sector"`
	Industry      string   `json:"industry"`
	Business      string   `json:"businessDescription"`
	Website       string   `json:"website"`
	Sponsors      []string `json:"sponsors"`
	MarketCap     any      `json:"marketCap"`
	Revenue       any      `json:"revenue"`
	NetIncome     any      `json:"netProfit"`
	Employees     any      `json:"employees"`
}

// Label implements sources.Record.
func (l Listing) Label() string {
	return strings.TrimSpace(l.StockCode)
}

// Skip implements sources.Record.
func (l Listing) Skip() (bool, string) {
	if strings.TrimSpace(l.StockCode) == "" || strings.TrimSpace(l.CompanyName) == "" {
		return true, "missing symbol or name"
	}
	if strings.EqualFold(strings.TrimSpace(l.Status), "withdrawn") {
		return true, "withdrawn at source"
	}
	if !utils.IsPositive(l.SharesOffered) &&
		strings.TrimSpace(utils.ToString(l.OfferPrice)) == "" &&
		!utils.IsPositive(l.FundsRaised) {
		return true, "no economic data"
	}
	return false, ""
}

// Transform implements sources.Record.
func (l Listing) Transform(now time.Time) (models.CanonicalStockRecord, error) {
	date := sources.ParseDate(l.ListingDate)
	priceText := strings.TrimSpace(utils.ToString(l.OfferPrice))

	underwriters := make([]string, 0, len(l.Sponsors))
	for _, s := range l.Sponsors {
		if s = strings.TrimSpace(s); s != "" {
			underwriters = append(underwriters, s)
		}
	}

	return models.CanonicalStockRecord{
		Symbol:        NormalizeCode(l.StockCode),
		CompanyName:   strings.TrimSpace(l.CompanyName),
		Market:        models.MarketHK,
		Status:        sources.InferStatus(l.Status, date, now),
		ExpectedPrice: sources.ParsePrice(priceText),
		PriceRange:    utils.StringPtr(priceText),
		SharesOffered: utils.ToInt64Ptr(l.SharesOffered),
		IPODate:       date,
		Sector:        utils.StringPtr(l.Sector),
		Industry:      utils.StringPtr(l.Industry),
		Description:   utils.StringPtr(l.Business),
		Website:       utils.StringPtr(l.Website),
		Underwriters:  underwriters,
		MarketCap:     utils.ToFloatPtr(l.MarketCap),
		Revenue:       utils.ToFloatPtr(l.Revenue),
		NetIncome:     utils.ToFloatPtr(l.NetIncome),
		Employees:     utils.ToInt64Ptr(l.Employees),
	}, nil
}

// NormalizeCode upper-cases a stock code and left-pads numeric codes to four digits,
// so "700" and "0700" reconcile to the same stock.
func NormalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.TrimSuffix(code, ".HK")
	for _, r := range code {
		if r < '0' || r > '9' {
			return code
		}
	}
	for len(code) < 4 {
		code = "0" + code
	}
	return code
}
