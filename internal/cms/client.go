// Package cms wraps the remote content backend's JSON API. Orders live
// there, never locally; this client is the only write path and the bulk read
// path the rest of the service builds on.
package cms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"translation-admin-backend/internal/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const fetchAllPageSize = 100

type Client struct {
	baseURL    string
	auth       AuthProvider
	httpClient *http.Client
}

func NewClient(baseURL string, auth AuthProvider) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		auth:    auth,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListOrdersParams narrows and pages the unified order list. Zero values are
// omitted from the query.
type ListOrdersParams struct {
	Status   string
	ClientID string
	PerPage  int
	Page     int
}

// OrderPage is one page of the unified order list with its paging envelope.
type OrderPage struct {
	Orders      []models.Order
	Total       int
	Pages       int
	CurrentPage int
	PerPage     int
}

func (c *Client) ListOrders(params ListOrdersParams) (*OrderPage, error) {
	q := url.Values{}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.ClientID != "" {
		q.Set("clientId", params.ClientID)
	}
	if params.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(params.PerPage))
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}

	endpoint := c.baseURL + "/unified-orders"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	req, err := c.newRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError("list orders", resp)
	}

	var page wireOrderPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	orders := make([]models.Order, len(page.Orders))
	for i, w := range page.Orders {
		orders[i] = w.toModel()
	}
	return &OrderPage{
		Orders:      orders,
		Total:       page.Total,
		Pages:       page.Pages,
		CurrentPage: page.CurrentPage,
		PerPage:     page.PerPage,
	}, nil
}

// FetchAllOrders walks every page of the unified order list. Projection
// needs global knowledge, so nothing downstream runs on a partial list.
func (c *Client) FetchAllOrders() ([]models.Order, error) {
	var all []models.Order
	page := 1
	for {
		res, err := c.ListOrders(ListOrdersParams{PerPage: fetchAllPageSize, Page: page})
		if err != nil {
			return nil, err
		}
		all = append(all, res.Orders...)
		if res.Pages <= page || len(res.Orders) == 0 {
			return all, nil
		}
		page++
	}
}

// CreateOrder creates the order and its client snapshot atomically.
func (c *Client) CreateOrder(data models.CreateUnifiedOrderData) (*models.CreateOrderResult, error) {
	body, err := json.Marshal(wireCreateOrder(data))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := c.newRequest(http.MethodPost, c.baseURL+"/unified-orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, remoteError("create order", resp)
	}

	var result struct {
		OrderID    string `json:"order_id"`
		OrderCode  string `json:"order_code"`
		ClientID   string `json:"client_id"`
		ClientCode string `json:"client_code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &models.CreateOrderResult{
		OrderID:    result.OrderID,
		OrderCode:  result.OrderCode,
		ClientID:   result.ClientID,
		ClientCode: result.ClientCode,
	}, nil
}

// UpdateOrderField patches a single order field. backendField must already be
// the backend's name; the workflow package owns the translation tables.
func (c *Client) UpdateOrderField(orderID, backendField string, value interface{}) error {
	body, err := json.Marshal(map[string]interface{}{backendField: value})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := c.newRequest(http.MethodPut, c.baseURL+"/unified-orders/"+orderID, bytes.NewReader(body))
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return remoteError("update order field", resp)
	}
	return nil
}

// UpdateOrderStatus posts a status transition. The backend appends the
// history record; this client never writes the audit trail itself.
func (c *Client) UpdateOrderStatus(orderID, status, changedBy, notes string) error {
	body, err := json.Marshal(map[string]string{
		"status":     status,
		"changed_by": changedBy,
		"notes":      notes,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := c.newRequest(http.MethodPost, c.baseURL+"/orders/"+orderID+"/status", bytes.NewReader(body))
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return remoteError("update order status", resp)
	}
	return nil
}

// UpdateClientField patches one client-snapshot field across the backend's
// records for that client.
func (c *Client) UpdateClientField(clientID, backendField string, value interface{}) error {
	body, err := json.Marshal(map[string]interface{}{
		"field": backendField,
		"value": value,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := c.newRequest(http.MethodPut, c.baseURL+"/clients/"+clientID+"/update", bytes.NewReader(body))
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return remoteError("update client field", resp)
	}
	return nil
}

// ArchiveClient flips the client's backend status to archived. Issued as the
// secondary step of a ready transition.
func (c *Client) ArchiveClient(clientID string) error {
	return c.UpdateClientField(clientID, "status", "archived")
}

// DeleteOrder removes an order. A 404 means already gone and counts as
// success.
func (c *Client) DeleteOrder(orderID string) error {
	return c.delete("delete order", c.baseURL+"/unified-orders/"+orderID)
}

// DeleteClient removes a client and its orders. Idempotent like DeleteOrder.
func (c *Client) DeleteClient(clientID string) error {
	return c.delete("delete client", c.baseURL+"/clients/"+clientID)
}

func (c *Client) delete(op, endpoint string) error {
	req, err := c.newRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return remoteError(op, resp)
	}
}

func (c *Client) newRequest(method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	headers, err := c.auth.AuthHeaders()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth headers: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// RemoteError is a non-2xx backend rejection. Message is set only when the
// backend supplied a structured {message} body; the raw body is never carried
// past the log line.
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("failed to %s: %s (status %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("failed to %s: status %d", e.Op, e.StatusCode)
}

// remoteError reads the rejection body as text and logs it, preferring the
// backend's structured message when one is present.
func remoteError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	logger.Error().
		Str("op", op).
		Int("status", resp.StatusCode).
		Str("body", string(body)).
		Msg("backend rejected request")

	var structured struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &structured)
	return &RemoteError{Op: op, StatusCode: resp.StatusCode, Message: structured.Message}
}
