package finnhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ipo-tracker/core/ratelimit"
	"ipo-tracker/feature/ipo/models"
	"ipo-tracker/feature/ipo/sources"

	"go.uber.org/zap"
)

// Name is the source name.
const Name = "finnhub"

// Client fetches the Finnhub IPO calendar.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	logger     *zap.Logger
	now        func() time.Time
}

// NewClient creates a Finnhub source.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 45
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		limiter:    ratelimit.New(cfg.MaxRequests, time.Duration(cfg.WindowSeconds)*time.Second),
		logger:     logger,
		now:        time.Now,
	}
}

// Name implements sources.Source.
func (c *Client) Name() string {
	return Name
}

// Market implements sources.Source.
func (c *Client) Market() models.Market {
	return models.MarketUS
}

// Fetch implements sources.Source.
func (c *Client) Fetch(ctx context.Context) (*sources.Batch, error) {
	today := c.now().UTC()
	from := today.AddDate(0, 0, -c.cfg.LookbackDays)
	to := today.AddDate(0, 0, c.cfg.LookaheadDays)

	body, err := c.get(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var resp CalendarResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &sources.SourceError{Source: Name, Err: fmt.Errorf("%w: %v", sources.ErrMalformedResponse, err)}
	}

	records := make([]sources.Record, 0, len(resp.IPOCalendar))
	for _, entry := range resp.IPOCalendar {
		records = append(records, entry)
	}

	c.logger.Debug("Fetched IPO calendar",
		zap.String("from", from.Format("2006-01-02")),
		zap.String("to", to.Format("2006-01-02")),
		zap.Int("records", len(records)))

	return &sources.Batch{Records: records, Raw: body}, nil
}

func (c *Client) get(ctx context.Context, from, to time.Time) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &sources.SourceError{Source: Name, Err: err}
	}

	params := url.Values{}
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", to.Format("2006-01-02"))
	params.Set("token", c.cfg.APIKey)

	endpoint := fmt.Sprintf("%s/calendar/ipo?%s", strings.TrimRight(c.cfg.BaseURL, "/"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &sources.SourceError{Source: Name, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &sources.SourceError{Source: Name, Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &sources.SourceError{Source: Name, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, sources.NewStatusError(Name, resp.StatusCode, bytes.TrimSpace(body))
	}

	return body, nil
}
