package entities

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

type Stage string

const (
	// Остальные стадии выставляются внешними процессами
	StageConfirmed Stage = "confirmed"
)

type Sender string

const (
	SenderCustomer Sender = "customer"
	SenderTeam     Sender = "team"
)

type Message struct {
	Sender  Sender `json:"sender"`
	Message string `json:"message"`
}

// OrderRecord хранится целиком по ключу OrderNumber
type OrderRecord struct {
	OrderNumber      string    `json:"orderNumber"`
	TrackingToken    string    `json:"trackingToken"`
	CustomerName     string    `json:"customerName"`
	Email            string    `json:"email"`
	DeliveryPostcode string    `json:"deliveryPostcode"`
	OrderDate        string    `json:"orderDate"`
	Stage            Stage     `json:"stage"`
	DeliveryDate     string    `json:"deliveryDate"`
	ETA              string    `json:"eta"`
	Messages         []Message `json:"messages"`
}

const trackingTokenBytes = 32

// NewTrackingToken возвращает 64 hex-символа (256 бит)
func NewTrackingToken() (string, error) {
	b := make([]byte, trackingTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate tracking token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (o *OrderRecord) Marshal() ([]byte, error) {
	return json.Marshal(o)
}

func (o *OrderRecord) Unmarshal(data []byte) error {
	if err := json.Unmarshal(data, o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

type Customer struct {
	FirstName string
	LastName  string
	Email     string
}

// OrderEvent событие о создании заказа от витрины
type OrderEvent struct {
	OrderNumber      string
	Customer         *Customer
	Email            string
	CreatedAt        string
	ShippingPostcode string
}
