package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-notifier/internal/entities"
)

const (
	guestName  = "Guest"
	dateLayout = "2006-01-02"
)

type RecordStore interface {
	// Полная замена документа, без слияния полей
	PutOrder(ctx context.Context, order entities.OrderRecord) error
	GetOrder(ctx context.Context, orderNumber string) (entities.OrderRecord, error)
}

type Renderer interface {
	Confirmation(order entities.OrderRecord) (entities.Email, error)
	Update(req entities.NotificationRequest) (entities.Email, error)
}

type Mailer interface {
	Send(ctx context.Context, to string, msg entities.Email) (entities.DeliveryResult, error)
}

type Cache interface {
	Get(key string) (entities.OrderRecord, bool)
	Set(key string, value entities.OrderRecord)
	Delete(key string)
}

type orderService struct {
	logger   *slog.Logger
	store    RecordStore
	renderer Renderer
	mailer   Mailer
	cache    Cache
}

func NewOrderService(logger *slog.Logger, store RecordStore, renderer Renderer, mailer Mailer, cache Cache) *orderService {
	return &orderService{
		logger:   logger.With(slog.String("service", "order")),
		store:    store,
		renderer: renderer,
		mailer:   mailer,
		cache:    cache,
	}
}

// IntakeOrder сохраняет новый заказ и отправляет письмо-подтверждение.
// Письмо не отправляется, если запись не сохранилась.
func (s *orderService) IntakeOrder(ctx context.Context, event entities.OrderEvent) (entities.OrderRecord, error) {
	order, err := newOrderRecord(event)
	if err != nil {
		return entities.OrderRecord{}, err
	}

	if err := s.store.PutOrder(ctx, order); err != nil {
		return entities.OrderRecord{}, fmt.Errorf("%w: %w", entities.ErrStoreFailed, err)
	}
	s.cache.Delete(order.OrderNumber)
	s.logger.InfoContext(ctx, "order saved", slog.String("order_number", order.OrderNumber))

	msg, err := s.renderer.Confirmation(order)
	if err != nil {
		return order, fmt.Errorf("%w: %w", entities.ErrDeliveryFailed, err)
	}

	res, err := s.mailer.Send(ctx, order.Email, msg)
	if err != nil {
		return order, fmt.Errorf("%w: %w", entities.ErrDeliveryFailed, err)
	}

	s.logger.InfoContext(ctx, "confirmation sent",
		slog.String("order_number", order.OrderNumber),
		slog.String("email_id", res.ID),
	)
	return order, nil
}

// SendUpdate отправляет уведомление об обновлении, хранилище не трогает
func (s *orderService) SendUpdate(ctx context.Context, req entities.NotificationRequest) (entities.DeliveryResult, error) {
	if strings.TrimSpace(req.OrderNumber) == "" || strings.TrimSpace(req.Email) == "" {
		return entities.DeliveryResult{}, entities.ErrMissingFields
	}

	msg, err := s.renderer.Update(req)
	if err != nil {
		return entities.DeliveryResult{}, fmt.Errorf("%w: %w", entities.ErrDeliveryFailed, err)
	}

	res, err := s.mailer.Send(ctx, req.Email, msg)
	if err != nil {
		return entities.DeliveryResult{}, fmt.Errorf("%w: %w", entities.ErrDeliveryFailed, err)
	}

	s.logger.InfoContext(ctx, "update notification sent",
		slog.String("order_number", req.OrderNumber),
		slog.String("update_type", string(req.UpdateType)),
		slog.String("email_id", res.ID),
	)
	return res, nil
}

// TrackOrder возвращает заказ, если токен совпадает с сохраненным
func (s *orderService) TrackOrder(ctx context.Context, orderNumber, token string) (entities.OrderRecord, error) {
	if orderNumber == "" || token == "" {
		return entities.OrderRecord{}, entities.ErrMissingFields
	}

	order, ok := s.cache.Get(orderNumber)
	if !ok {
		var err error
		order, err = s.store.GetOrder(ctx, orderNumber)
		if errors.Is(err, entities.ErrOrderNotFound) {
			return entities.OrderRecord{}, err
		}
		if err != nil {
			return entities.OrderRecord{}, fmt.Errorf("%w: %w", entities.ErrStoreFailed, err)
		}
		s.cache.Set(orderNumber, order)
	}

	if subtle.ConstantTimeCompare([]byte(order.TrackingToken), []byte(token)) != 1 {
		s.logger.WarnContext(ctx, "tracking token mismatch", slog.String("order_number", orderNumber))
		return entities.OrderRecord{}, entities.ErrInvalidToken
	}

	return order, nil
}

func newOrderRecord(event entities.OrderEvent) (entities.OrderRecord, error) {
	if event.OrderNumber == "" || event.CreatedAt == "" {
		return entities.OrderRecord{}, fmt.Errorf("%w: order number and created_at are required", entities.ErrInvalidOrderEvent)
	}

	orderDate, err := parseOrderDate(event.CreatedAt)
	if err != nil {
		return entities.OrderRecord{}, fmt.Errorf("%w: %w", entities.ErrInvalidOrderEvent, err)
	}

	name, email := guestName, event.Email
	if c := event.Customer; c != nil {
		if full := strings.TrimSpace(c.FirstName + " " + c.LastName); full != "" {
			name = full
		}
		if c.Email != "" {
			email = c.Email
		}
	}
	if email == "" {
		return entities.OrderRecord{}, fmt.Errorf("%w: email is required", entities.ErrInvalidOrderEvent)
	}

	token, err := entities.NewTrackingToken()
	if err != nil {
		return entities.OrderRecord{}, err
	}

	return entities.OrderRecord{
		OrderNumber:      event.OrderNumber,
		TrackingToken:    token,
		CustomerName:     name,
		Email:            email,
		DeliveryPostcode: event.ShippingPostcode,
		OrderDate:        orderDate,
		Stage:            entities.StageConfirmed,
		Messages:         []entities.Message{},
	}, nil
}

// parseOrderDate календарный день заказа в часовом поясе витрины.
// Метка без смещения тоже принимается, от нее берется только дата.
func parseOrderDate(createdAt string) (string, error) {
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		return t.Format(dateLayout), nil
	}

	day, _, _ := strings.Cut(createdAt, "T")
	t, err := time.Parse(dateLayout, day)
	if err != nil {
		return "", fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	return t.Format(dateLayout), nil
}
