// Package board keeps a client-side mirror of the CRM pipelines: it fetches
// resource lists over the REST API, applies mutations, and re-derives the
// kanban grouping from the current list. After any mutation the full list is
// reloaded from the server; the reload is the source of truth, never a local
// merge.
package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/brunovtr/pipecrm/internal/entity"
	"github.com/brunovtr/pipecrm/internal/usecase"
)

// APIError carries the server's error payload for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ListLeads(ctx context.Context, stage, followUpBefore string) ([]entity.Lead, error) {
	q := url.Values{}
	if stage != "" {
		q.Set("stage", stage)
	}
	if followUpBefore != "" {
		q.Set("follow_up_before", followUpBefore)
	}

	var leads []entity.Lead
	if err := c.do(ctx, http.MethodGet, withQuery("/api/leads", q), nil, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (c *Client) CreateLead(ctx context.Context, input usecase.CreateLeadInput) (*entity.Lead, error) {
	var lead entity.Lead
	if err := c.do(ctx, http.MethodPost, "/api/leads", input, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (c *Client) UpdateLead(ctx context.Context, id int64, patch usecase.UpdateLeadInput) (*entity.Lead, error) {
	var lead entity.Lead
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/leads/%d", id), patch, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (c *Client) ListOrders(ctx context.Context, status string) ([]entity.Order, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}

	var orders []entity.Order
	if err := c.do(ctx, http.MethodGet, withQuery("/api/orders", q), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	var order entity.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", input, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id int64, patch usecase.UpdateOrderInput) (*entity.Order, error) {
	var order entity.Order
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d", id), patch, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) Dashboard(ctx context.Context) (*usecase.DashboardSummary, error) {
	var summary usecase.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, into any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var payload struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Error == "" {
			payload.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	if into == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(into)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
