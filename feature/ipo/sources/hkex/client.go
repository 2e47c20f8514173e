package hkex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ipo-tracker/core/ratelimit"
	"ipo-tracker/feature/ipo/models"
	"ipo-tracker/feature/ipo/sources"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Name is the source name.
const Name = "hkex"

// Client fetches HKEX new listings.
type Client struct {
	cfg        Config
	oauth      clientcredentials.Config
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	logger     *zap.Logger
}

// NewClient creates an HKEX source.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 45
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 20
	}

	var scopes []string
	if cfg.Scope != "" {
		scopes = strings.Fields(cfg.Scope)
	}

	return &Client{
		cfg: cfg,
		oauth: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       scopes,
		},
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		limiter:    ratelimit.New(cfg.MaxRequests, time.Duration(cfg.WindowSeconds)*time.Second),
		logger:     logger,
	}
}

// Name implements sources.Source.
func (c *Client) Name() string {
	return Name
}

// Market implements sources.Source.
func (c *Client) Market() models.Market {
	return models.MarketHK
}

// Fetch implements sources.Source. It walks every page, one rate-limited request each.
// Raw is a JSON array of the page bodies.
func (c *Client) Fetch(ctx context.Context) (*sources.Batch, error) {
	// token requests go through the same timeout-bound transport
	authed := c.oauth.Client(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient))

	var records []sources.Record
	pages := make([]json.RawMessage, 0, 1)

	for page := 1; page <= c.cfg.MaxPages; page++ {
		body, err := c.get(ctx, authed, page)
		if err != nil {
			return nil, err
		}

		var resp ListingsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, &sources.SourceError{Source: Name, Err: fmt.Errorf("%w: page %d: %v", sources.ErrMalformedResponse, page, err)}
		}
		pages = append(pages, body)

		for _, l := range resp.Data {
			records = append(records, l)
		}

		if len(resp.Data) == 0 || page >= resp.TotalPages {
			break
		}
		if page == c.cfg.MaxPages {
			c.logger.Warn("HKEX listings truncated at page limit",
				zap.Int("max_pages", c.cfg.MaxPages),
				zap.Int("total_pages", resp.TotalPages))
		}
	}

	raw, err := json.Marshal(pages)
	if err != nil {
		return nil, &sources.SourceError{Source: Name, Err: err}
	}

	c.logger.Debug("Fetched HKEX listings", zap.Int("pages", len(pages)), zap.Int("records", len(records)))

	return &sources.Batch{Records: records, Raw: raw}, nil
}

func (c *Client) get(ctx context.Context, client *http.Client, page int) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &sources.SourceError{Source: Name, Err: err}
	}

	params := url.Values{}
	params.Set("status", c.cfg.Status)
	params.Set("page", strconv.Itoa(page))

	endpoint := fmt.Sprintf("%s/listings?%s", strings.TrimRight(c.cfg.BaseURL, "/"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &sources.SourceError{Source: Name, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
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
