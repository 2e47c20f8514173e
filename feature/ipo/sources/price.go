package sources

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	priceNumber = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d+)?|\.\d+`)

	// text allowed between the two bounds of a range: a dash or "to", plus a currency prefix
	rangeSeparator = regexp.MustCompile(`^\s*(?:-|–|to)\s*[A-Za-z]{0,3}\$?\s*$`)
)

// ParsePrice reads a single price ("$12.50") or a range ("$10-$15",
// "HK$3.50 - HK$4.20", "10 to 12") and returns the price or the range midpoint.
// Any other trailing number is ignored. It returns nil when the text holds no number.
func ParsePrice(text string) *float64 {
	locs := priceNumber.FindAllStringIndex(text, 2)
	if len(locs) == 0 {
		return nil
	}
	// a second number only counts as the upper bound of a range
	if len(locs) == 2 && !rangeSeparator.MatchString(text[locs[0][1]:locs[1][0]]) {
		locs = locs[:1]
	}

	values := make([]decimal.Decimal, 0, len(locs))
	for _, loc := range locs {
		d, err := decimal.NewFromString(strings.ReplaceAll(text[loc[0]:loc[1]], ",", ""))
		if err != nil {
			return nil
		}
		values = append(values, d)
	}

	price := values[0]
	if len(values) == 2 {
		price = values[0].Add(values[1]).Div(decimal.NewFromInt(2))
	}

	f := price.InexactFloat64()
	return &f
}
