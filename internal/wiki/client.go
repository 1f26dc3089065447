package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"

	"github.com/wikigeo/onthisday/internal/logger"
)

const (
	DefaultBaseURL   = "https://en.wikipedia.org"
	DefaultRestURL   = "https://en.wikipedia.org/w/rest.php/v1/page"
	DefaultUserAgent = "onthisday/1.0 (github.com/wikigeo/onthisday)"
	DefaultTimeout   = 30 * time.Second
)

// RetryPolicy controls the backoff applied to day-page fetches.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// Config holds client settings. Zero values fall back to the defaults.
type Config struct {
	BaseURL   string
	RestURL   string
	UserAgent string
	Timeout   time.Duration
	Retry     RetryPolicy
}

// Client talks to the encyclopedia site.
type Client struct {
	httpClient *http.Client
	baseURL    string
	restURL    string
	userAgent  string
	retry      RetryPolicy
}

// New creates a client from the given configuration.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RestURL == "" {
		cfg.RestURL = DefaultRestURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = RetryPolicy{
			MaxAttempts:  3,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     5 * time.Second,
			Multiplier:   2.0,
		}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   cfg.BaseURL,
		restURL:   cfg.RestURL,
		userAgent: cfg.UserAgent,
		retry:     cfg.Retry,
	}
}

// BaseURL returns the site's base address, used for rewriting relative
// links into absolute form.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// DayPageURL returns the address of the day page for a month and day.
func (c *Client) DayPageURL(month string, day int) string {
	return fmt.Sprintf("%s/wiki/%s_%d", c.baseURL, month, day)
}

// FetchDayPage fetches and parses the day page. Transient failures are
// retried under the client's retry policy; a 4xx status aborts
// immediately, since a nonexistent page will not appear on retry. Any
// final failure is a *FetchError.
func (c *Client) FetchDayPage(ctx context.Context, month string, day int) (*goquery.Document, error) {
	url := c.DayPageURL(month, day)

	var doc *goquery.Document
	operation := func() error {
		d, err := c.fetchHTML(ctx, url)
		if err != nil {
			var fe *FetchError
			if errors.As(err, &fe) && fe.Status >= 400 && fe.Status < 500 {
				return backoff.Permanent(err)
			}
			logger.Debug("retrying day page fetch", logger.Fields{"url": url})
			return err
		}
		doc = d
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retry.InitialDelay
	policy.MaxInterval = c.retry.MaxDelay
	policy.Multiplier = c.retry.Multiplier

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(c.retry.MaxAttempts-1)), ctx))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// fetchHTML performs a single GET of an HTML page.
func (c *Client) fetchHTML(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	logger.IncrCounter("wiki.calls")
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("parsing HTML: %w", err)}
	}
	return doc, nil
}

// PageSource fetches a page's raw wikitext source via the REST endpoint.
// Any non-success status maps to ErrPageUnavailable.
func (c *Client) PageSource(ctx context.Context, title string) (string, error) {
	url := c.restURL + "/" + title

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request for %q: %w", title, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	logger.IncrCounter("wiki.calls")
	if err != nil {
		return "", fmt.Errorf("looking up %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %q (status %d)", ErrPageUnavailable, title, resp.StatusCode)
	}

	var page struct {
		Source string `json:"source"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return "", fmt.Errorf("decoding source of %q: %w", title, err)
	}
	return page.Source, nil
}
