package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"projects/showcase/internal/config"
	"projects/showcase/internal/domain"
	"projects/showcase/internal/fixture"
	"projects/showcase/internal/mirror"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// FixtureClient fetches catalog documents from <mirror>/<kind>.json. The
// response content type picks the decoder, so a server may answer with an
// HTML or YAML export instead. A failed fetch moves on to the next mirror.
type FixtureClient interface {
	fixture.Source
	GetCatalogDocument(ctx context.Context, kind domain.CatalogKind) (fixture.Format, []byte, error)
}

type fixtureClient struct {
	rl         ratelimit.Limiter
	mirrors    mirror.Supplier
	timeout    time.Duration
	httpClient *resty.Client
}

func NewFixtureClient(cfg config.FixturesConfig, mirrors mirror.Supplier) FixtureClient {
	timeout := time.Duration(cfg.Timeout) * time.Second

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", "application/json, application/yaml;q=0.9, text/html;q=0.8")

	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
	}

	return &fixtureClient{
		rl:         ratelimit.New(cfg.MaxRequestsPerSecond),
		mirrors:    mirrors,
		timeout:    timeout,
		httpClient: client,
	}
}

func (c *fixtureClient) LoadCatalog(ctx context.Context, kind domain.CatalogKind) ([]domain.Item, error) {
	format, body, err := c.GetCatalogDocument(ctx, kind)
	if err != nil {
		return nil, err
	}

	items, err := fixture.Decode(format, body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s catalog: %w", kind, err)
	}

	log.Debugf("Fetched %d %s items", len(items), kind)
	return items, nil
}

func (c *fixtureClient) GetCatalogDocument(ctx context.Context, kind domain.CatalogKind) (fixture.Format, []byte, error) {
	var lastErr error

	mirrors := c.mirrors.Rotation()
	if len(mirrors) == 0 {
		return "", nil, fmt.Errorf("no fixture mirror available for %s", kind)
	}

	for _, baseURL := range mirrors {
		format, body, err := c.fetch(ctx, baseURL, kind)
		if err == nil {
			return format, body, nil
		}
		if ctx.Err() != nil {
			return "", nil, err
		}
		log.Warnf("⚠️ %v", err)
		lastErr = err
	}

	return "", nil, lastErr
}

func (c *fixtureClient) fetch(ctx context.Context, baseURL string, kind domain.CatalogKind) (fixture.Format, []byte, error) {
	url := fmt.Sprintf("%s/%s.json", strings.TrimRight(baseURL, "/"), kind)

	c.rl.Take()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.httpClient.R().
		SetContext(reqCtx).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return "", nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return "", nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.IsError() {
		return "", nil, fmt.Errorf("HTTP error fetching %s: %s", url, resp.Status())
	}

	format, err := fixture.FormatFromContentType(resp.Header().Get("Content-Type"))
	if err != nil {
		log.Warnf("⚠️ %s: %v, assuming JSON", url, err)
		format = fixture.FormatJSON
	}

	return format, resp.Bytes(), nil
}
