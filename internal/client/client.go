// Package client is a typed Go client for the retail-manager HTTP API.
//
// The client holds the session token and injects it as a bearer Authorization
// header on every request. A 401 response clears the session and invokes the
// configured expiry callback, mirroring how the web frontends treat expired
// sessions.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"retail-manager/internal/app"
	"retail-manager/internal/core"
)

// genericErrorMessage is surfaced when the server's error envelope cannot be
// read.
const genericErrorMessage = "an error occurred"

// AuthError reports a rejected or expired session. The client has already
// cleared its token when this is returned.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// APIError reports a non-2xx response other than 401. Message carries the
// server's error envelope text when one was sent.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to a retail-manager server. It is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu    sync.RWMutex
	token string

	// onSessionExpired, if set, runs after a 401 clears the session.
	onSessionExpired func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithSessionExpiredHandler registers a callback invoked when a 401 clears
// the session.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// WithToken seeds the client with an existing session token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New builds a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the session token. An empty string logs out.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// do performs one request. Non-2xx responses become AuthError (401, session
// cleared) or APIError; out, when non-nil, receives the decoded 2xx body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		message := genericErrorMessage
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil && envelope.Error != "" {
			message = envelope.Error
		}
		if resp.StatusCode == http.StatusUnauthorized {
			c.SetToken("")
			if c.onSessionExpired != nil {
				c.onSessionExpired()
			}
			return &AuthError{Message: message}
		}
		return &APIError{Status: resp.StatusCode, Code: envelope.Code, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// AuthResponse is the body of a successful login or signup.
type AuthResponse struct {
	Token string    `json:"token"`
	User  core.User `json:"user"`
}

// Login exchanges credentials for a session. The token is stored on the
// client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// SignupInput mirrors the signup form, confirmation field included.
type SignupInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	ShopName        string `json:"shopName"`
	Address         string `json:"address"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Signup creates an account and stores the returned session token.
func (c *Client) Signup(ctx context.Context, in SignupInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/signup", in, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Logout drops the session token.
func (c *Client) Logout() {
	c.SetToken("")
}

// Me returns the authenticated account.
func (c *Client) Me(ctx context.Context) (*core.User, error) {
	var out core.User
	if err := c.do(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Sales ─────────────────────────────────────────────────────────────────────

func (c *Client) ListSales(ctx context.Context) ([]core.Sale, error) {
	var out app.SaleListResult
	if err := c.do(ctx, http.MethodGet, "/sales", nil, &out); err != nil {
		return nil, err
	}
	return out.Sales, nil
}

// SaleLine is one product/quantity pair in a new sale.
type SaleLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// NewSaleInput is the body for recording a sale.
type NewSaleInput struct {
	Items        []SaleLine `json:"items"`
	PaymentType  string     `json:"paymentType"`
	CustomerName string     `json:"customerName,omitempty"`
	DueDate      string     `json:"dueDate,omitempty"`
}

func (c *Client) RecordSale(ctx context.Context, in NewSaleInput) (*app.SaleResult, error) {
	var out app.SaleResult
	if err := c.do(ctx, http.MethodPost, "/sales", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSale(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/sales/"+strconv.Itoa(id), nil, nil)
}

// ── Inventory ─────────────────────────────────────────────────────────────────

func (c *Client) ListInventory(ctx context.Context) ([]core.Product, error) {
	var out app.ProductListResult
	if err := c.do(ctx, http.MethodGet, "/inventory", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) AddProduct(ctx context.Context, p core.Product) (*core.Product, error) {
	var out core.Product
	if err := c.do(ctx, http.MethodPost, "/inventory/add", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, p core.Product) (*core.Product, error) {
	var out core.Product
	if err := c.do(ctx, http.MethodPut, "/inventory/"+strconv.Itoa(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/inventory/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]core.Product, error) {
	var out app.ProductListResult
	if err := c.do(ctx, http.MethodGet, "/inventory/category/"+url.PathEscape(category), nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) ProductsBySupplier(ctx context.Context, supplier string) ([]core.Product, error) {
	var out app.ProductListResult
	if err := c.do(ctx, http.MethodGet, "/inventory/supplier/"+url.PathEscape(supplier), nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// ProductQuery narrows an inventory search.
type ProductQuery struct {
	Search   string
	Category string
	Supplier string
	LowStock bool
}

func (c *Client) SearchProducts(ctx context.Context, q ProductQuery) ([]core.Product, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("q", q.Search)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Supplier != "" {
		params.Set("supplier", q.Supplier)
	}
	if q.LowStock {
		params.Set("lowStock", "true")
	}
	path := "/inventory/search"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var out app.ProductListResult
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// ── Debts ─────────────────────────────────────────────────────────────────────

// DebtQuery narrows and orders the debt list.
type DebtQuery struct {
	Search string
	Status string
	Sort   string
}

func (c *Client) ListDebts(ctx context.Context, q DebtQuery) (*app.DebtListResult, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	path := "/debts"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var out app.DebtListResult
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDebt(ctx context.Context, id int) (*core.Debt, error) {
	var out core.Debt
	if err := c.do(ctx, http.MethodGet, "/debts/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddDebt(ctx context.Context, d core.Debt) (*core.Debt, error) {
	var out core.Debt
	if err := c.do(ctx, http.MethodPost, "/debts/add", d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDebt(ctx context.Context, id int, d core.Debt) (*core.Debt, error) {
	var out core.Debt
	if err := c.do(ctx, http.MethodPut, "/debts/"+strconv.Itoa(id), d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PayDebt(ctx context.Context, id int) (*core.Debt, error) {
	var out core.Debt
	if err := c.do(ctx, http.MethodPost, "/debts/"+strconv.Itoa(id)+"/pay", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemindDebt(ctx context.Context, id int) (*core.Debt, error) {
	var out core.Debt
	if err := c.do(ctx, http.MethodPost, "/debts/"+strconv.Itoa(id)+"/remind", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

func (c *Client) ListSuppliers(ctx context.Context) ([]core.Supplier, error) {
	var out app.SupplierListResult
	if err := c.do(ctx, http.MethodGet, "/suppliers/all", nil, &out); err != nil {
		return nil, err
	}
	return out.Suppliers, nil
}

func (c *Client) GetSupplier(ctx context.Context, id int) (*core.Supplier, error) {
	var out core.Supplier
	if err := c.do(ctx, http.MethodGet, "/suppliers/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddSupplier(ctx context.Context, sup core.Supplier) (*core.Supplier, error) {
	var out core.Supplier
	if err := c.do(ctx, http.MethodPost, "/suppliers/add", sup, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSupplier(ctx context.Context, id int, sup core.Supplier) (*core.Supplier, error) {
	var out core.Supplier
	if err := c.do(ctx, http.MethodPut, "/suppliers/"+strconv.Itoa(id), sup, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSupplier(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/suppliers/"+strconv.Itoa(id), nil, nil)
}

// ── Reports, dashboard, assistant ─────────────────────────────────────────────

func (c *Client) GenerateReport(ctx context.Context, period, startDate, endDate string) (*core.SalesReport, error) {
	params := url.Values{}
	params.Set("period", period)
	params.Set("startDate", startDate)
	params.Set("endDate", endDate)
	var out core.SalesReport
	if err := c.do(ctx, http.MethodGet, "/reports/generate?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DashboardSummary(ctx context.Context) (*app.DashboardSummaryResult, error) {
	var out app.DashboardSummaryResult
	if err := c.do(ctx, http.MethodGet, "/dashboard/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AskAssistant(ctx context.Context, question string) (string, error) {
	var out app.AssistantResult
	if err := c.do(ctx, http.MethodPost, "/assistant", map[string]string{"question": question}, &out); err != nil {
		return "", err
	}
	return out.Answer, nil
}
