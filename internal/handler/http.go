package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/order-notifier/internal/email"
	"github.com/SergeyBogomolovv/order-notifier/internal/entities"
	"github.com/SergeyBogomolovv/order-notifier/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	msgMissingFields    = "Missing required fields"
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidBody      = "Invalid request body"
	msgOrderNotFound    = "order not found"
	msgInternal         = "internal server error"
)

type OrderService interface {
	IntakeOrder(ctx context.Context, event entities.OrderEvent) (entities.OrderRecord, error)
	SendUpdate(ctx context.Context, req entities.NotificationRequest) (entities.DeliveryResult, error)
	TrackOrder(ctx context.Context, orderNumber, token string) (entities.OrderRecord, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.MethodNotAllowed(methodNotAllowed)

	r.Post("/shopify-webhook", h.ShopifyWebhook)
	r.Options("/shopify-webhook", preflight)

	r.Post("/send-update-notification", h.SendUpdateNotification)
	r.Options("/send-update-notification", preflight)

	r.Get("/orders/{order_number}", h.TrackOrder)
}

// ShopifyWebhook принимает событие создания заказа.
// @Summary      Вебхук создания заказа
// @Description  Сохраняет заказ и отправляет письмо-подтверждение
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        order  body      ShopifyOrder  true  "Событие orders/create"
// @Success      200    {object}  SuccessResponse
// @Failure      405    {object}  utils.ErrorResponse "Метод не поддерживается"
// @Failure      500    {object}  utils.ErrorResponse "Ошибка сохранения или отправки"
// @Router       /shopify-webhook [post]
func (h *HTTPHandler) ShopifyWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var order ShopifyOrder
	if err := utils.DecodeBody(r, &order); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode order event", slog.Any("error", err))
		intakeTotal.WithLabelValues(intakeResult(entities.ErrInvalidOrderEvent)).Inc()
		utils.WriteError(w, "invalid order event: "+err.Error(), http.StatusInternalServerError)
		return
	}

	_, err := h.svc.IntakeOrder(ctx, ShopifyOrderToEntity(order))
	intakeTotal.WithLabelValues(intakeResult(err)).Inc()

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to intake order",
			slog.Any("error", err),
			slog.String("order_number", string(order.OrderNumber)),
		)
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, SuccessResponse{Success: true, Message: "Order created"}, http.StatusOK)
}

// SendUpdateNotification отправляет письмо об обновлении заказа.
// @Summary      Уведомление об обновлении
// @Description  Новое сообщение, смена статуса или общее обновление заказа
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateNotificationRequest  true  "Параметры уведомления"
// @Success      200      {object}  SuccessResponse
// @Failure      400      {object}  utils.ErrorResponse "Не указаны обязательные поля"
// @Failure      405      {object}  utils.ErrorResponse "Метод не поддерживается"
// @Failure      500      {object}  utils.ErrorResponse "Ошибка отправки"
// @Router       /send-update-notification [post]
func (h *HTTPHandler) SendUpdateNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateNotificationRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.WriteError(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	template := string(email.VariantFor(entities.UpdateType(req.UpdateType)))

	_, err := h.svc.SendUpdate(ctx, UpdateRequestToEntity(req))

	if errors.Is(err, entities.ErrMissingFields) {
		utils.WriteError(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	if err != nil {
		notificationsTotal.WithLabelValues(template, "failed").Inc()
		h.logger.ErrorContext(ctx, "failed to send notification",
			slog.Any("error", err),
			slog.String("order_number", string(req.OrderNumber)),
		)
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	notificationsTotal.WithLabelValues(template, "sent").Inc()
	utils.WriteJSON(w, SuccessResponse{Success: true, Message: "Notification sent"}, http.StatusOK)
}

// TrackOrder возвращает заказ по номеру и токену отслеживания.
// @Summary      Отслеживание заказа
// @Description  Доступ только с токеном, выданным при создании заказа
// @Tags         orders
// @Produce      json
// @Param        order_number  path      string  true  "Номер заказа"
// @Param        token         query     string  true  "Токен отслеживания"
// @Success      200  {object}  TrackedOrder
// @Failure      400  {object}  utils.ErrorResponse "Не указан токен"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_number} [get]
func (h *HTTPHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber := chi.URLParam(r, "order_number")
	token := r.URL.Query().Get("token")

	if err := h.validate.Var(token, "required"); err != nil {
		utils.WriteError(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	order, err := h.svc.TrackOrder(ctx, orderNumber, token)

	if errors.Is(err, entities.ErrOrderNotFound) || errors.Is(err, entities.ErrInvalidToken) {
		utils.WriteError(w, msgOrderNotFound, http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to track order", slog.Any("error", err), slog.String("order_number", orderNumber))
		utils.WriteError(w, msgInternal, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToTracked(order), http.StatusOK)
}

func preflight(w http.ResponseWriter, r *http.Request) {
	utils.WriteEmpty(w, http.StatusOK)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, msgMethodNotAllowed, http.StatusMethodNotAllowed)
}

func intakeResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, entities.ErrStoreFailed):
		return "store_failed"
	case errors.Is(err, entities.ErrDeliveryFailed):
		return "email_failed"
	default:
		return "invalid"
	}
}
