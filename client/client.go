// Package client provides typed wrappers around the REST API for UI and
// CLI code.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"restaurant-orders-api/credentials"
	"restaurant-orders-api/models"
)

// APIError carries the status code and server-supplied message of a failed
// request.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type RegisterInput struct {
	Email             string      `json:"email"`
	FirstName         string      `json:"first_name"`
	LastName          string      `json:"last_name"`
	Password          string      `json:"password"`
	Role              models.Role `json:"role,omitempty"`
	WaiterPassphrase  string      `json:"waiterPassphrase,omitempty"`
	ManagerPassphrase string      `json:"managerPassphrase,omitempty"`
}

type CreateOrderInput struct {
	Email       string           `json:"email"`
	Address     string           `json:"address"`
	Date        string           `json:"date"`
	Description string           `json:"description,omitempty"`
	OrderItems  []OrderItemInput `json:"orderItems"`
}

type OrderItemInput struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

// DeleteResult is the acknowledgement returned by delete endpoints.
type DeleteResult struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Register creates a new account.
func (c *Client) Register(in RegisterInput) error {
	return c.do(http.MethodPost, "/api/auth/register", in, nil)
}

// Login verifies credentials and returns the record the caller should save
// into its credential store.
func (c *Client) Login(email, password string) (*credentials.Record, error) {
	body := map[string]string{"email": email, "password": password}
	var rec credentials.Record
	if err := c.do(http.MethodPost, "/api/auth/login", body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// FetchMenu returns the available menu items, name-sorted.
func (c *Client) FetchMenu() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.do(http.MethodGet, "/api/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateMenuItem adds a menu item (manager action).
func (c *Client) CreateMenuItem(name, description string, price float64) (*models.MenuItem, error) {
	body := map[string]interface{}{"name": name, "description": description, "price": price}
	var item models.MenuItem
	if err := c.do(http.MethodPost, "/api/menu", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// FetchOrders returns the orders owned by email, newest first.
func (c *Client) FetchOrders(email string) ([]models.Order, error) {
	path := "/api/orders?email=" + url.QueryEscape(email)
	var orders []models.Order
	if err := c.do(http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FetchAllOrders returns every order (staff views).
func (c *Client) FetchAllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder places a new order.
func (c *Client) CreateOrder(in CreateOrderInput) (*models.Order, error) {
	var order models.Order
	if err := c.do(http.MethodPost, "/api/orders", in, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder fetches one order with its items.
func (c *Client) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus moves an order to the given status.
func (c *Client) UpdateOrderStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	body := map[string]models.OrderStatus{"status": status}
	var order models.Order
	if err := c.do(http.MethodPatch, fmt.Sprintf("/api/orders/%d", id), body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder is sugar for moving the order to CANCELLED.
func (c *Client) CancelOrder(id uint) (*models.Order, error) {
	return c.UpdateOrderStatus(id, models.StatusCancelled)
}

// DeleteOrder removes an order entirely (manager action).
func (c *Client) DeleteOrder(id uint) (*DeleteResult, error) {
	var res DeleteResult
	if err := c.do(http.MethodDelete, fmt.Sprintf("/api/orders/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) do(method, path string, body, out interface{}) error {
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

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
