// Package warehouse resolves item references against the warehouse service.
package warehouse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/philly/showcase/backend/internal/platform/logger"
	"github.com/philly/showcase/backend/internal/showcase/domain"
	"github.com/philly/showcase/backend/internal/showcase/ports"
	"github.com/tidwall/gjson"
)

const (
	itemsPath = "/internal/warehouse/items/"

	// maxBodyBytes caps how much of a warehouse response is read.
	maxBodyBytes = 1 << 20
)

// Config configures the warehouse client.
type Config struct {
	BaseURL string
	Timeout time.Duration // per request, on top of any caller deadline
}

// Client implements ports.ItemResolver over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

// NewClient creates a new warehouse client.
func NewClient(cfg Config, logger logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 3 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// Resolve fetches one item. It makes a single request and never retries.
//
// 400, 404 and 410 mean the item does not exist. Any other non-2xx status,
// a transport error or an unreadable body means the warehouse is unavailable.
func (c *Client) Resolve(ctx context.Context, warehouseItemID string) (*domain.ResolvedItem, error) {
	endpoint := c.baseURL + itemsPath + url.PathEscape(warehouseItemID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ports.ErrWarehouseUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "warehouse request failed", "warehouseItemID", warehouseItemID, "error", err)
		return nil, fmt.Errorf("%w: %w", ports.ErrWarehouseUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ports.ErrWarehouseUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusNotFound,
		resp.StatusCode == http.StatusGone:
		return nil, fmt.Errorf("%w: %s", ports.ErrItemNotFound, warehouseItemID)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Warn(ctx, "warehouse returned unexpected status",
			"warehouseItemID", warehouseItemID,
			"status", resp.StatusCode,
		)
		return nil, fmt.Errorf("%w: status %d", ports.ErrWarehouseUnavailable, resp.StatusCode)
	}

	return parseItem(warehouseItemID, body)
}

// parseItem reads the fields the publish workflow needs. owner_login may be
// missing, null or empty, all meaning "no recorded owner".
func parseItem(requestedID string, body []byte) (*domain.ResolvedItem, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed item document", ports.ErrWarehouseUnavailable)
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: item document is not an object", ports.ErrWarehouseUnavailable)
	}

	item := &domain.ResolvedItem{ID: requestedID}
	if owner := doc.Get("owner_login"); owner.Type == gjson.String {
		item.OwnerLogin = strings.TrimSpace(owner.Str)
	}

	return item, nil
}
