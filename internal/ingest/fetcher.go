package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/amir-khosravi/ComplianceCore/internal/cache"
	"github.com/amir-khosravi/ComplianceCore/internal/model"
	"github.com/amir-khosravi/ComplianceCore/internal/util"
	"github.com/amir-khosravi/ComplianceCore/internal/worker"
)

// Fetcher retrieves regulatory documents from URLs. Fetches honor robots.txt,
// are rate-limited per host, and are cached so re-running an analysis does
// not hammer the source.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	cache      cache.Cache
	cacheTTL   time.Duration
}

// NewFetcher creates a fetcher from the HTTP and cache configuration. A nil
// docCache disables caching.
func NewFetcher(cfg model.HTTPConfig, docCache cache.Cache, cacheTTL time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		robots:    util.NewRobotsChecker(cfg.UserAgent, 10*time.Second),
		limiter:   worker.NewLimiter(cfg.RatePerHost, cfg.RateBurst),
		cache:     docCache,
		cacheTTL:  cacheTTL,
	}
}

// Fetch retrieves a document and returns its plain text. HTML responses are
// reduced to visible text.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	key := cache.Key(rawURL)
	if f.cache != nil {
		if cached, found := f.cache.Get(key); found {
			return string(cached), nil
		}
	}

	allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return "", fmt.Errorf("fetch %s: disallowed by robots.txt", rawURL)
	}
	if delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "html") {
		text, err = HTMLToText(text)
		if err != nil {
			return "", fmt.Errorf("parse HTML: %w", err)
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("document %s: %w", rawURL, model.ErrEmptyInput)
	}

	if f.cache != nil {
		_ = f.cache.Set(key, []byte(text), f.cacheTTL)
	}
	return text, nil
}
