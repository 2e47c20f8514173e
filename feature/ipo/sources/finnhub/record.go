package finnhub

import (
	"strings"
	"time"

	"ipo-tracker/core/utils"
	"ipo-tracker/feature/ipo/models"
	"ipo-tracker/feature/ipo/sources"
)

// CalendarResponse is the body of GET /calendar/ipo.
type CalendarResponse struct {
	IPOCalendar []CalendarEntry `json:"ipoCalendar"`
}

// CalendarEntry is one IPO calendar row. Numeric fields are left loosely typed
// because the feed mixes numbers, strings and nulls.
type CalendarEntry struct {
	Date             string `json:"date"`
	Exchange         string `json:"exchange"`
	Name             string `json:"name"`
	NumberOfShares   any    `json:"numberOfShares"`
	Price            any    `json:"price"`
	Status           string `json:"status"`
	Symbol           string `json:"symbol"`
	TotalSharesValue any    `json:"totalSharesValue"`
}

// Label implements sources.Record.
func (e CalendarEntry) Label() string {
	return strings.TrimSpace(e.Symbol)
}

// Skip implements sources.Record.
func (e CalendarEntry) Skip() (bool, string) {
	if strings.TrimSpace(e.Symbol) == "" || strings.TrimSpace(e.Name) == "" {
		return true, "missing symbol or name"
	}
	if strings.EqualFold(strings.TrimSpace(e.Status), "withdrawn") {
		return true, "withdrawn at source"
	}
	if !hasEconomicData(e) {
		return true, "no economic data"
	}
	return false, ""
}

func hasEconomicData(e CalendarEntry) bool {
	return utils.IsPositive(e.NumberOfShares) ||
		strings.TrimSpace(utils.ToString(e.Price)) != "" ||
		utils.IsPositive(e.TotalSharesValue)
}

// Transform implements sources.Record.
func (e CalendarEntry) Transform(now time.Time) (models.CanonicalStockRecord, error) {
	date := sources.ParseDate(e.Date)
	priceText := strings.TrimSpace(utils.ToString(e.Price))

	rec := models.CanonicalStockRecord{
		Symbol:        strings.ToUpper(strings.TrimSpace(e.Symbol)),
		CompanyName:   strings.TrimSpace(e.Name),
		Market:        models.MarketUS,
		Status:        sources.InferStatus(e.Status, date, now),
		ExpectedPrice: sources.ParsePrice(priceText),
		PriceRange:    utils.StringPtr(priceText),
		SharesOffered: utils.ToInt64Ptr(e.NumberOfShares),
		IPODate:       date,
		Underwriters:  []string{},
	}

	// totalSharesValue is the offering size, the closest thing the calendar has to a cap
	rec.MarketCap = utils.ToFloatPtr(e.TotalSharesValue)

	return rec, nil
}
