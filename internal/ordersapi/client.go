package ordersapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nordport/terminal-orders/internal/domain"
	"github.com/nordport/terminal-orders/internal/pkg/breaker"

	"go.uber.org/zap"
)

// Client consumes the external order-listing endpoint:
// GET /orders?filter={"reference":...,"terminal_id":...}. It exists solely
// so the uniqueness checker can run against a remote orders backend. A shed
// or failed call surfaces as an error; the checker fails open on it. There
// are no retries here.
type Client struct {
	base   string
	http   *http.Client
	brk    *breaker.Breaker
	logger *zap.Logger
}

func New(baseURL string, brk *breaker.Breaker, logger *zap.Logger) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 50,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   5 * time.Second,
		},
		brk:    brk,
		logger: logger,
	}
}

func (c *Client) FindByReference(ctx context.Context, reference, terminalID string) ([]domain.Order, error) {
	if c.brk != nil {
		if err := c.brk.Allow(); err != nil {
			return nil, err
		}
	}

	orders, err := c.fetch(ctx, reference, terminalID)
	if c.brk != nil {
		if err != nil {
			c.brk.Failure()
		} else {
			c.brk.Success()
		}
	}
	return orders, err
}

func (c *Client) fetch(ctx context.Context, reference, terminalID string) ([]domain.Order, error) {
	filter, err := json.Marshal(map[string]string{
		"reference":   reference,
		"terminal_id": terminalID,
	})
	if err != nil {
		return nil, err
	}

	u := c.base + "/orders?filter=" + url.QueryEscape(string(filter))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("orders api: unexpected status %d", resp.StatusCode)
	}

	var orders []domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("orders api: decode response: %w", err)
	}
	return orders, nil
}
