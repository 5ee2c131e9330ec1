package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/order-notifier/internal/entities"
	"github.com/SergeyBogomolovv/order-notifier/internal/handler"
	mocks "github.com/SergeyBogomolovv/order-notifier/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, svc *mocks.MockOrderService) chi.Router {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func do(r http.Handler, method, target, body string) (int, string) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()
	data, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(data)
}

func TestHTTPHandler_ShopifyWebhook(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "guest order",
			body: `{"order_number":1001,"email":"a@b.com","created_at":"2024-01-05T10:00:00Z"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					IntakeOrder(mock.Anything, entities.OrderEvent{
						OrderNumber: "1001",
						Email:       "a@b.com",
						CreatedAt:   "2024-01-05T10:00:00Z",
					}).
					Return(entities.OrderRecord{OrderNumber: "1001"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"Order created"}`,
		},
		{
			name: "customer with shipping address",
			body: `{"order_number":"1002","customer":{"first_name":"Jane","last_name":"Doe","email":"jane@example.com"},"created_at":"2024-01-05T10:00:00Z","shipping_address":{"zip":"AB1 2CD"}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					IntakeOrder(mock.Anything, entities.OrderEvent{
						OrderNumber:      "1002",
						Customer:         &entities.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
						CreatedAt:        "2024-01-05T10:00:00Z",
						ShippingPostcode: "AB1 2CD",
					}).
					Return(entities.OrderRecord{OrderNumber: "1002"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name: "store failed",
			body: `{"order_number":1001,"email":"a@b.com","created_at":"2024-01-05T10:00:00Z"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().IntakeOrder(mock.Anything, mock.Anything).
					Return(entities.OrderRecord{}, fmt.Errorf("%w: firebase returned status 401", entities.ErrStoreFailed)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"order store failed: firebase returned status 401"`,
		},
		{
			name: "email failed",
			body: `{"order_number":1001,"email":"a@b.com","created_at":"2024-01-05T10:00:00Z"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().IntakeOrder(mock.Anything, mock.Anything).
					Return(entities.OrderRecord{OrderNumber: "1001"}, fmt.Errorf("%w: resend returned status 422", entities.ErrDeliveryFailed)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"email delivery failed`,
		},
		{
			name:         "malformed body",
			body:         `{"order_number":`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusInternalServerError,
			wantBody:     `"error":"invalid order event`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := do(newRouter(t, svc), http.MethodPost, "/shopify-webhook", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_SendUpdateNotification(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "message with history",
			body: `{"orderNumber":"1001","customerName":"Jane","email":"a@b.com","updateType":"message","message":"Hello","messageHistory":[{"sender":"customer","message":"Hi"},{"sender":"team","message":"Hello"}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					SendUpdate(mock.Anything, entities.NotificationRequest{
						OrderNumber:  "1001",
						CustomerName: "Jane",
						Email:        "a@b.com",
						UpdateType:   entities.UpdateMessage,
						Message:      "Hello",
						MessageHistory: []entities.Message{
							{Sender: entities.SenderCustomer, Message: "Hi"},
							{Sender: entities.SenderTeam, Message: "Hello"},
						},
					}).
					Return(entities.DeliveryResult{ID: "msg_1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"Notification sent"}`,
		},
		{
			name: "numeric order number",
			body: `{"orderNumber":1001,"email":"a@b.com","updateType":"status"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					SendUpdate(mock.Anything, mock.MatchedBy(func(req entities.NotificationRequest) bool {
						return req.OrderNumber == "1001" && req.UpdateType == entities.UpdateStatus
					})).
					Return(entities.DeliveryResult{ID: "msg_2"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name:         "missing email",
			body:         `{"orderNumber":"1001"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"error":"Missing required fields"}`,
		},
		{
			name:         "missing order number",
			body:         `{"email":"a@b.com"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"error":"Missing required fields"}`,
		},
		{
			name: "blank email rejected by service",
			body: `{"orderNumber":"1001","email":"  "}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().SendUpdate(mock.Anything, mock.Anything).
					Return(entities.DeliveryResult{}, entities.ErrMissingFields).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name: "delivery failed",
			body: `{"orderNumber":"1001","email":"a@b.com"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().SendUpdate(mock.Anything, mock.Anything).
					Return(entities.DeliveryResult{}, fmt.Errorf("%w: resend returned status 500", entities.ErrDeliveryFailed)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"email delivery failed: resend returned status 500"`,
		},
		{
			name:         "invalid json",
			body:         `not json`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"error":"Invalid request body"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := do(newRouter(t, svc), http.MethodPost, "/send-update-notification", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_MethodsAndPreflight(t *testing.T) {
	for _, path := range []string{"/shopify-webhook", "/send-update-notification"} {
		t.Run(path, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			r := newRouter(t, svc)

			status, body := do(r, http.MethodGet, path, "")
			assert.Equal(t, http.StatusMethodNotAllowed, status)
			assert.Contains(t, body, `"error":"Method not allowed"`)

			status, body = do(r, http.MethodOptions, path, "")
			assert.Equal(t, http.StatusOK, status)
			assert.Empty(t, body)
		})
	}
}

func TestHTTPHandler_TrackOrder(t *testing.T) {
	order := entities.OrderRecord{
		OrderNumber:   "1001",
		TrackingToken: "secret",
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		OrderDate:     "2024-01-05",
		Stage:         entities.StageConfirmed,
		Messages:      []entities.Message{{Sender: entities.SenderTeam, Message: "Dispatched soon"}},
	}

	testCases := []struct {
		name         string
		target       string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			target: "/orders/1001?token=secret",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().TrackOrder(mock.Anything, "1001", "secret").Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orderNumber":"1001"`,
		},
		{
			name:         "missing token",
			target:       "/orders/1001",
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"error":"Missing required fields"`,
		},
		{
			name:   "wrong token",
			target: "/orders/1001?token=guess",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().TrackOrder(mock.Anything, "1001", "guess").
					Return(entities.OrderRecord{}, entities.ErrInvalidToken).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"error":"order not found"`,
		},
		{
			name:   "not found",
			target: "/orders/404?token=secret",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().TrackOrder(mock.Anything, "404", "secret").
					Return(entities.OrderRecord{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"error":"order not found"`,
		},
		{
			name:   "store error",
			target: "/orders/1001?token=secret",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().TrackOrder(mock.Anything, "1001", "secret").
					Return(entities.OrderRecord{}, errors.New("timeout")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := do(newRouter(t, svc), http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.NotContains(t, resp, "trackingToken")
				assert.NotContains(t, resp, "email")
				assert.Equal(t, "confirmed", resp["stage"])
			}
		})
	}
}
