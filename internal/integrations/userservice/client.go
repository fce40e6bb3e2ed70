package userservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с UserService (справочник поставщиков и клиентов)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProvider получает поставщика по ID
func (c *Client) GetProvider(ctx context.Context, providerID string) (*Provider, error) {
	reqURL := fmt.Sprintf("%s/internal/providers/%s", c.baseURL, url.PathEscape(providerID))

	var provider Provider
	if err := c.doGet(ctx, reqURL, &provider, ErrProviderNotFound); err != nil {
		return nil, err
	}

	return &provider, nil
}

// GetClient получает клиента по ID
func (c *Client) GetClient(ctx context.Context, clientID string) (*ClientInfo, error) {
	reqURL := fmt.Sprintf("%s/internal/clients/%s", c.baseURL, url.PathEscape(clientID))

	var client ClientInfo
	if err := c.doGet(ctx, reqURL, &client, ErrClientNotFound); err != nil {
		return nil, err
	}

	return &client, nil
}

// doGet выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается при статусе 404
func (c *Client) doGet(ctx context.Context, reqURL string, dest interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
