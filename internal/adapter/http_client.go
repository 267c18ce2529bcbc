package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/employee-registry/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(body.AccessToken)
	return body.AccessToken, nil
}

func (h *httpAPIClient) CreateEmployee(ctx context.Context, input models.EmployeeInput) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/api/employees")
	if err != nil {
		return fmt.Errorf("create employee request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) Employees(ctx context.Context, filter models.EmployeeFilter, page int) (models.EmployeeListResponse, error) {
	req := h.authedRequest(ctx)
	if filter.Department != "" {
		req.SetQueryParam("department", filter.Department)
	}
	if filter.Role != "" {
		req.SetQueryParam("role", filter.Role)
	}
	if page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}

	resp, err := req.Get("/api/employees")
	if err != nil {
		return models.EmployeeListResponse{}, fmt.Errorf("list employees request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EmployeeListResponse{}, err
	}

	var listing models.EmployeeListResponse
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return models.EmployeeListResponse{}, fmt.Errorf("decode employee listing: %w", err)
	}

	return listing, nil
}

func (h *httpAPIClient) Employee(ctx context.Context, id int64) (models.Employee, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/employees/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Employee{}, fmt.Errorf("get employee request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	var employee models.Employee
	if err = json.Unmarshal(resp.Body(), &employee); err != nil {
		return models.Employee{}, fmt.Errorf("decode employee: %w", err)
	}

	return employee, nil
}

func (h *httpAPIClient) UpdateEmployee(ctx context.Context, id int64, input models.EmployeeInput) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Put("/api/employees/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("update employee request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) DeleteEmployee(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/employees/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete employee request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
