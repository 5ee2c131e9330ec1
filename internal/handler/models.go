package handler

import (
	"encoding/json"
	"fmt"

	"github.com/SergeyBogomolovv/order-notifier/internal/entities"
)

// OrderNumber витрина присылает номер числом, UI строкой
type OrderNumber string

func (n *OrderNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = OrderNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("order number must be a string or a number: %w", err)
	}
	*n = OrderNumber(num.String())
	return nil
}

// ShopifyOrder событие orders/create
type ShopifyOrder struct {
	OrderNumber     OrderNumber      `json:"order_number" swaggertype:"integer"`
	Customer        *ShopifyCustomer `json:"customer,omitempty"`
	Email           string           `json:"email,omitempty"`
	CreatedAt       string           `json:"created_at"`
	ShippingAddress *ShopifyAddress  `json:"shipping_address,omitempty"`
}

type ShopifyCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type ShopifyAddress struct {
	Zip string `json:"zip"`
}

// UpdateNotificationRequest запрос на отправку уведомления
type UpdateNotificationRequest struct {
	OrderNumber    OrderNumber `json:"orderNumber" validate:"required" swaggertype:"string"`
	CustomerName   string      `json:"customerName,omitempty"`
	Email          string      `json:"email" validate:"required"`
	UpdateType     string      `json:"updateType,omitempty" enums:"message,status"`
	Message        string      `json:"message,omitempty"`
	MessageHistory []Message   `json:"messageHistory,omitempty"`
}

// Message сообщение из переписки по заказу
type Message struct {
	Sender  string `json:"sender" enums:"customer,team"`
	Message string `json:"message"`
}

// SuccessResponse успешный ответ
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TrackedOrder публичное представление заказа, без email и токена
type TrackedOrder struct {
	OrderNumber  string    `json:"orderNumber"`
	CustomerName string    `json:"customerName"`
	OrderDate    string    `json:"orderDate"`
	Stage        string    `json:"stage"`
	DeliveryDate string    `json:"deliveryDate"`
	ETA          string    `json:"eta"`
	Messages     []Message `json:"messages"`
}

func ShopifyOrderToEntity(o ShopifyOrder) entities.OrderEvent {
	event := entities.OrderEvent{
		OrderNumber: string(o.OrderNumber),
		Email:       o.Email,
		CreatedAt:   o.CreatedAt,
	}
	if o.Customer != nil {
		event.Customer = &entities.Customer{
			FirstName: o.Customer.FirstName,
			LastName:  o.Customer.LastName,
			Email:     o.Customer.Email,
		}
	}
	if o.ShippingAddress != nil {
		event.ShippingPostcode = o.ShippingAddress.Zip
	}
	return event
}

func UpdateRequestToEntity(r UpdateNotificationRequest) entities.NotificationRequest {
	history := make([]entities.Message, 0, len(r.MessageHistory))
	for _, m := range r.MessageHistory {
		history = append(history, entities.Message{
			Sender:  entities.Sender(m.Sender),
			Message: m.Message,
		})
	}

	return entities.NotificationRequest{
		OrderNumber:    string(r.OrderNumber),
		CustomerName:   r.CustomerName,
		Email:          r.Email,
		UpdateType:     entities.UpdateType(r.UpdateType),
		Message:        r.Message,
		MessageHistory: history,
	}
}

func OrderEntityToTracked(o entities.OrderRecord) TrackedOrder {
	messages := make([]Message, 0, len(o.Messages))
	for _, m := range o.Messages {
		messages = append(messages, Message{
			Sender:  string(m.Sender),
			Message: m.Message,
		})
	}

	return TrackedOrder{
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		OrderDate:    o.OrderDate,
		Stage:        string(o.Stage),
		DeliveryDate: o.DeliveryDate,
		ETA:          o.ETA,
		Messages:     messages,
	}
}
