package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/feedmirror/pkg/config"
	"github.com/umputun/feedmirror/pkg/domain"
)

//go:generate moq -out mocks/prober.go -pkg mocks -skip-ensure -fmt goimports . Prober

// maxErrorBody limits how much of a failed response is kept for the error message
const maxErrorBody = 4096

// Prober reports whether the network is reachable
type Prober interface {
	Online(ctx context.Context) bool
}

// Client fetches the source feed over HTTP and converts it to domain types.
// Connectivity is verified with the prober before any request goes out.
type Client struct {
	url       string
	format    string
	userAgent string
	client    *http.Client
	prober    Prober
	sanitizer *bluemonday.Policy
}

// New creates a client for the given source, deriving the connectivity
// probe address from the source URL when none is configured
func New(cfg config.SourceConfig) (*Client, error) {
	addr := cfg.Probe.Address
	if addr == "" {
		var err error
		addr, err = ProbeAddr(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("derive probe address: %w", err)
		}
	}
	return NewWithProber(cfg, NewDialProber(addr, cfg.Probe.Timeout)), nil
}

// NewWithProber creates a client with a custom connectivity prober
func NewWithProber(cfg config.SourceConfig, prober Prober) *Client {
	return &Client{
		url:       cfg.URL,
		format:    cfg.Format,
		userAgent: cfg.UserAgent,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		prober:    prober,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Fetch retrieves the source feed and converts it to a collection.
// Returns ErrNoConnection without touching the network when the probe fails,
// and *StatusError when the source answers with a non-200 status.
func (c *Client) Fetch(ctx context.Context) (*domain.Collection, error) {
	if !c.prober.Online(ctx) {
		return nil, ErrNoConnection
	}

	body, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var res *domain.Collection
	switch c.format {
	case "rss":
		res, err = c.parseRSS(body)
	default:
		res, err = c.parseJSON(body)
	}
	if err != nil {
		return nil, err
	}

	c.sanitize(res)
	return res, nil
}

// fetch retrieves raw content from the source URL
func (c *Client) fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	// add browser-like headers
	addBrowserHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	return resp.Body, nil
}

// sanitize strips markup and surrounding whitespace from all text fields
func (c *Client) sanitize(res *domain.Collection) {
	clean := func(s string) string { return strings.TrimSpace(c.sanitizer.Sanitize(s)) }

	res.Title = clean(res.Title)
	for i := range res.Items {
		res.Items[i].Title = clean(res.Items[i].Title)
		res.Items[i].Description = clean(res.Items[i].Description)
	}
}
