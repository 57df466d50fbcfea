// Package adapters provides implementations for external service integrations.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/receber-inter/backend/internal/application/adapter"
)

// WhatsAppConfig carries the messaging relay settings.
type WhatsAppConfig struct {
	MessageURL string
	Timeout    time.Duration
}

// WhatsAppClient implements the MessagingService against a local WhatsApp
// relay. The relay answers 200 with code "SUCCESS" on delivery.
type WhatsAppClient struct {
	config     WhatsAppConfig
	httpClient *http.Client
}

// NewWhatsAppClient creates a new WhatsApp relay client instance.
func NewWhatsAppClient(config WhatsAppConfig) *WhatsAppClient {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &WhatsAppClient{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SendMessage posts one text message to the relay.
func (c *WhatsAppClient) SendMessage(ctx context.Context, phone, message string) error {
	body, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.MessageURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach whatsapp relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp relay returned %d: %s", resp.StatusCode, string(respBody))
	}

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode relay response: %w", err)
	}
	if payload.Code != "SUCCESS" {
		return fmt.Errorf("whatsapp relay rejected the message: %s", payload.Message)
	}

	return nil
}

var _ adapter.MessagingService = (*WhatsAppClient)(nil)
