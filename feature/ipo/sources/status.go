package sources

import (
	"strings"
	"time"

	"ipo-tracker/feature/ipo/models"
)

// InferStatus maps a native status to the canonical one.
//
// Once the IPO date has passed, filed, expected and priced become LISTED since
// feeds are slow to flip them. Withdrawn and postponed are kept regardless of date.
func InferStatus(native string, ipoDate *time.Time, now time.Time) models.Status {
	s := strings.ToLower(strings.TrimSpace(native))

	switch s {
	case "withdrawn":
		return models.StatusWithdrawn
	case "postponed":
		return models.StatusPostponed
	}

	if ipoDate != nil && beforeDay(*ipoDate, now) {
		switch s {
		case "filed", "expected", "priced":
			return models.StatusListed
		}
	}

	switch s {
	case "expected", "filed":
		return models.StatusUpcoming
	case "priced":
		return models.StatusPricing
	case "listed":
		return models.StatusListed
	default:
		return models.StatusUpcoming
	}
}

// beforeDay reports whether a is on a calendar day strictly before b, in UTC.
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC).Before(time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC))
}

// ParseDate reads a YYYY-MM-DD date. Malformed or empty input yields nil.
func ParseDate(text string) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006/01/02", "02/01/2006"} {
		if t, err := time.Parse(layout, text); err == nil {
			d := t.UTC()
			return &d
		}
	}
	return nil
}
