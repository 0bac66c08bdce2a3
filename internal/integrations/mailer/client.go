package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxErrorBody = 4096

// Client клиент HTTP-сервиса отправки писем.
// Сервис принимает POST {to, subject, html} с Bearer ключом.
type Client struct {
	url        string
	key        string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(url, key string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		key: key,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Enabled возвращает false, если адрес сервиса не задан
func (c *Client) Enabled() bool {
	return c.url != ""
}

// Send отправляет одно письмо
func (c *Client) Send(ctx context.Context, to, subject, html string) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(Message{To: to, Subject: subject, HTML: html})
	if err != nil {
		return fmt.Errorf("%w: failed to encode message: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Error("Send: transport rejected message to=%s: status=%d", to, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(payload))
	}

	c.log.Info("Send: message delivered to=%s", to)
	return nil
}
