package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SergeyBogomolovv/order-notifier/internal/entities"
	"github.com/SergeyBogomolovv/order-notifier/pkg/upstream"
)

const firebaseService = "firebase"

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type FirebaseConfig struct {
	BaseURL   string
	AuthToken string
}

// FirebaseStore хранит заказы в Realtime Database по пути /orders/{orderNumber}.json
type FirebaseStore struct {
	logger    *slog.Logger
	http      Doer
	baseURL   string
	authToken string
}

func NewFirebaseStore(logger *slog.Logger, client Doer, cfg FirebaseConfig) *FirebaseStore {
	return &FirebaseStore{
		logger:    logger.With(slog.String("store", firebaseService)),
		http:      client,
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		authToken: cfg.AuthToken,
	}
}

// PutOrder полностью заменяет документ, последняя запись побеждает
func (s *FirebaseStore) PutOrder(ctx context.Context, order entities.OrderRecord) error {
	if order.Messages == nil {
		order.Messages = []entities.Message{}
	}

	data, err := order.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.orderURL(order.OrderNumber), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return upstream.NewStatusError(firebaseService, resp)
	}

	s.logger.DebugContext(ctx, "order written", slog.String("order_number", order.OrderNumber))
	return nil
}

func (s *FirebaseStore) GetOrder(ctx context.Context, orderNumber string) (entities.OrderRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.orderURL(orderNumber), nil)
	if err != nil {
		return entities.OrderRecord{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return entities.OrderRecord{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.OrderRecord{}, upstream.NewStatusError(firebaseService, resp)
	}

	// Для отсутствующего ключа Firebase отвечает 200 с телом null
	var order *entities.OrderRecord
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return entities.OrderRecord{}, fmt.Errorf("%w: %w", entities.ErrInvalidOrder, err)
	}
	if order == nil {
		return entities.OrderRecord{}, entities.ErrOrderNotFound
	}

	return *order, nil
}

func (s *FirebaseStore) orderURL(orderNumber string) string {
	u := s.baseURL + "/orders/" + url.PathEscape(orderNumber) + ".json"
	if s.authToken != "" {
		u += "?" + url.Values{"auth": {s.authToken}}.Encode()
	}
	return u
}
