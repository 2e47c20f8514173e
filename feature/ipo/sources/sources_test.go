package sources

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"ipo-tracker/feature/ipo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"$10-$15", ptr(12.5)},
		{"$12.50", ptr(12.5)},
		{"", nil},
		{"TBD", nil},
		{"HK$3.50 - HK$4.20", ptr(3.85)},
		{"10.00-12.00", ptr(11)},
		{"$1,200", ptr(1200)},
		{"$10 to $14", ptr(12)},
		{"US$8–US$9", ptr(8.5)},
		{"$12.50 per ADS (2 shares)", ptr(12.5)},
		{"$15 (revised 3/1)", ptr(15)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParsePrice(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestInferStatus(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	yesterday := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
	today := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		native string
		date   *time.Time
		want   models.Status
	}{
		{"filed past date becomes listed", "filed", &yesterday, models.StatusListed},
		{"filed future date stays upcoming", "filed", &tomorrow, models.StatusUpcoming},
		{"same day is not elapsed", "expected", &today, models.StatusUpcoming},
		{"priced past date becomes listed", "priced", &yesterday, models.StatusListed},
		{"priced future", "priced", &tomorrow, models.StatusPricing},
		{"withdrawn past date passes through", "withdrawn", &yesterday, models.StatusWithdrawn},
		{"postponed passes through", "Postponed", &yesterday, models.StatusPostponed},
		{"listed", "listed", nil, models.StatusListed},
		{"no date", "expected", nil, models.StatusUpcoming},
		{"unknown", "rumoured", &tomorrow, models.StatusUpcoming},
		{"unknown past date", "rumoured", &yesterday, models.StatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferStatus(tt.native, tt.date, now))
		})
	}
}

func TestParseDate(t *testing.T) {
	d := ParseDate("2026-10-16")
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), *d)

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("soon"))
}

func TestSourceError(t *testing.T) {
	err := fmt.Errorf("fetch: %w", NewStatusError("finnhub", 401, []byte("invalid token")))

	var se *SourceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "finnhub", se.Source)
	assert.Equal(t, 401, se.StatusCode)
	assert.Contains(t, err.Error(), "finnhub")
	assert.Contains(t, err.Error(), "401")

	wrapped := &SourceError{Source: "hkex", Err: ErrMalformedResponse}
	assert.ErrorIs(t, wrapped, ErrMalformedResponse)
	assert.Equal(t, "hkex: malformed upstream response", wrapped.Error())
}

func ptr(f float64) *float64 { return &f }
