package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrMissingLocation is returned when a redirect response carries no Location header.
	ErrMissingLocation = errors.New("redirect location not provided")
	// ErrTooManyRedirects is returned once MaxRedirects is exceeded.
	ErrTooManyRedirects = errors.New("too many redirects")
)

// StatusError reports a final response outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// Fetcher retrieves a raw furnidata payload.
type Fetcher interface {
	// Fetch downloads url and returns the body as text.
	Fetch(ctx context.Context, url string) (string, error)
}

// Client is the HTTP implementation of Fetcher.
type Client struct {
	http         *http.Client
	userAgent    string
	maxRedirects int
}

// NewClient creates a fetch client based on the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	maxRedirects := cfg.MaxRedirects
	if maxRedirects <= 0 {
		maxRedirects = 10
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
			// Redirects are followed by hand so the user agent survives every hop.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent:    userAgent,
		maxRedirects: maxRedirects,
	}
}

// Fetch downloads rawURL, following redirects, and returns the body.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid furnidata url: %w", err)
	}

	for hop := 0; ; hop++ {
		resp, err := c.get(ctx, target)
		if err != nil {
			return "", err
		}

		if isRedirect(resp.StatusCode) {
			location := resp.Header.Get("Location")
			drain(resp)
			if location == "" {
				return "", fmt.Errorf("%s: %w", target, ErrMissingLocation)
			}
			if hop >= c.maxRedirects {
				return "", fmt.Errorf("%s: %w", rawURL, ErrTooManyRedirects)
			}
			next, err := target.Parse(location)
			if err != nil {
				return "", fmt.Errorf("invalid redirect location %q: %w", location, err)
			}
			target = next
			continue
		}

		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", &StatusError{URL: target.String(), StatusCode: resp.StatusCode}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read furnidata body: %w", err)
		}
		return string(body), nil
	}
}

func (c *Client) get(ctx context.Context, target *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	return resp, nil
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// CloseIdleConnections releases pooled connections held by the client.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}
