package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/order-notifier/internal/entities"
	"github.com/SergeyBogomolovv/order-notifier/pkg/upstream"
)

const serviceName = "resend"

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ResendConfig struct {
	BaseURL string
	APIKey  string
	Sender  string
}

// ResendClient отправляет письма через POST {base}/emails
type ResendClient struct {
	logger  *slog.Logger
	http    Doer
	baseURL string
	apiKey  string
	sender  string
}

func NewResendClient(logger *slog.Logger, client Doer, cfg ResendConfig) *ResendClient {
	return &ResendClient{
		logger:  logger.With(slog.String("client", serviceName)),
		http:    client,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		sender:  cfg.Sender,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send делает ровно одну попытку отправки
func (c *ResendClient) Send(ctx context.Context, to string, msg entities.Email) (entities.DeliveryResult, error) {
	if to == "" || msg.Subject == "" || msg.HTML == "" {
		return entities.DeliveryResult{}, fmt.Errorf("incomplete email envelope: %w", entities.ErrMissingFields)
	}

	body, err := json.Marshal(sendRequest{
		From:    c.sender,
		To:      []string{to},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return entities.DeliveryResult{}, fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return entities.DeliveryResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return entities.DeliveryResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := upstream.NewStatusError(serviceName, resp)
		c.logger.ErrorContext(ctx, "email rejected",
			slog.Int("status", statusErr.StatusCode),
			slog.String("body", statusErr.Body),
			slog.String("to", RedactAddress(to)),
		)
		return entities.DeliveryResult{}, statusErr
	}

	var res sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return entities.DeliveryResult{}, fmt.Errorf("failed to decode %s response: %w", serviceName, err)
	}

	c.logger.DebugContext(ctx, "email sent", slog.String("id", res.ID), slog.String("to", RedactAddress(to)))
	return entities.DeliveryResult{ID: res.ID}, nil
}

// RedactAddress оставляет первый символ локальной части и домен
func RedactAddress(addr string) string {
	at := strings.LastIndex(addr, "@")
	if at <= 0 {
		return "***"
	}
	return addr[:1] + "***" + addr[at:]
}
