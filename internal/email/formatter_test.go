package email_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-notifier/internal/email"
	"github.com/SergeyBogomolovv/order-notifier/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trackingBase = "https://lumbr.uk/pages/track-order"

func newFormatter(t *testing.T) *email.Formatter {
	t.Helper()
	f, err := email.NewFormatter(email.FormatterConfig{
		TrackingBaseURL: trackingBase,
		LogoURL:         "https://lumbr.uk/logo.png",
		Brand:           "Lumbr",
		Now:             func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return f
}

func TestFormatter_UpdateSubjectAndHeading(t *testing.T) {
	testCases := []struct {
		name        string
		updateType  entities.UpdateType
		wantPrefix  string
		wantHeading string
	}{
		{
			name:        "message",
			updateType:  entities.UpdateMessage,
			wantPrefix:  "New Message - Order #",
			wantHeading: "You have a new message",
		},
		{
			name:        "status",
			updateType:  entities.UpdateStatus,
			wantPrefix:  "Status Update - Order #",
			wantHeading: "Your order status has changed",
		},
		{
			name:        "unknown type",
			updateType:  "shipping",
			wantPrefix:  "Order Update - Order #",
			wantHeading: "Your order has been updated",
		},
		{
			name:        "missing type",
			wantPrefix:  "Order Update - Order #",
			wantHeading: "Your order has been updated",
		},
	}

	f := newFormatter(t)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := f.Update(entities.NotificationRequest{
				OrderNumber: "1001",
				Email:       "a@b.com",
				UpdateType:  tc.updateType,
				Message:     "Hello",
			})
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(msg.Subject, tc.wantPrefix), msg.Subject)
			assert.Contains(t, msg.Subject, "1001")
			assert.Contains(t, msg.HTML, tc.wantHeading)
		})
	}
}

func TestFormatter_MessageBody(t *testing.T) {
	f := newFormatter(t)

	msg, err := f.Update(entities.NotificationRequest{
		OrderNumber: "1001",
		Email:       "a@b.com",
		UpdateType:  entities.UpdateMessage,
		Message:     "Hello",
	})
	require.NoError(t, err)
	assert.Contains(t, msg.HTML, ">Hello</div>")

	status, err := f.Update(entities.NotificationRequest{
		OrderNumber: "1001",
		UpdateType:  entities.UpdateStatus,
		Message:     "Hello",
	})
	require.NoError(t, err)
	assert.NotContains(t, status.HTML, "Hello")
	assert.Contains(t, status.HTML, "The status of your order has changed")
}

func TestFormatter_EscapesMessage(t *testing.T) {
	f := newFormatter(t)

	msg, err := f.Update(entities.NotificationRequest{
		OrderNumber: "1001",
		UpdateType:  entities.UpdateMessage,
		Message:     `<script>alert("x")</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}

func TestFormatter_Greeting(t *testing.T) {
	f := newFormatter(t)

	msg, err := f.Update(entities.NotificationRequest{OrderNumber: "1001"})
	require.NoError(t, err)
	assert.Contains(t, msg.HTML, "Hi there,")

	msg, err = f.Update(entities.NotificationRequest{OrderNumber: "1001", CustomerName: "Jane Doe"})
	require.NoError(t, err)
	assert.Contains(t, msg.HTML, "Hi Jane Doe,")
}

func TestFormatter_History(t *testing.T) {
	f := newFormatter(t)

	history := []entities.Message{
		{Sender: entities.SenderCustomer, Message: "first"},
		{Sender: entities.SenderTeam, Message: "second"},
		{Sender: entities.SenderCustomer, Message: "third"},
		{Sender: entities.SenderTeam, Message: "fourth"},
		{Sender: entities.SenderCustomer, Message: "fifth"},
	}

	msg, err := f.Update(entities.NotificationRequest{
		OrderNumber:    "1001",
		UpdateType:     entities.UpdateStatus,
		MessageHistory: history,
	})
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "first")
	assert.NotContains(t, msg.HTML, "second")
	assert.Equal(t, 3, strings.Count(msg.HTML, `class="transcript-entry"`))

	third := strings.Index(msg.HTML, "third")
	fourth := strings.Index(msg.HTML, "fourth")
	fifth := strings.Index(msg.HTML, "fifth")
	require.True(t, third > 0 && fourth > 0 && fifth > 0)
	assert.Less(t, third, fourth)
	assert.Less(t, fourth, fifth)

	assert.Equal(t, 2, strings.Count(msg.HTML, ">You</span>"))
	assert.Equal(t, 1, strings.Count(msg.HTML, ">Lumbr Team</span>"))
	assert.NotContains(t, msg.HTML, "No messages yet")
}

func TestFormatter_EmptyHistory(t *testing.T) {
	f := newFormatter(t)

	for _, history := range [][]entities.Message{nil, {}} {
		msg, err := f.Update(entities.NotificationRequest{
			OrderNumber:    "1001",
			MessageHistory: history,
		})
		require.NoError(t, err)

		assert.Contains(t, msg.HTML, "No messages yet")
		assert.Contains(t, msg.HTML, `href="`+trackingBase+`?order=1001"`)
		assert.NotContains(t, msg.HTML, "transcript-entry")
	}
}

func TestFormatter_Confirmation(t *testing.T) {
	f := newFormatter(t)

	msg, err := f.Confirmation(entities.OrderRecord{
		OrderNumber:  "1001",
		CustomerName: "Jane Doe",
		OrderDate:    "2024-01-05",
		Stage:        entities.StageConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, "Order Confirmed - Order #1001", msg.Subject)
	assert.Contains(t, msg.HTML, "#1001")
	assert.Contains(t, msg.HTML, "2024-01-05")
	assert.Contains(t, msg.HTML, "Order Confirmed")
	assert.Contains(t, msg.HTML, "Track Your Order")
	assert.Contains(t, msg.HTML, `href="`+trackingBase+`?order=1001"`)
	assert.Contains(t, msg.HTML, "2024 Lumbr")
	assert.NotContains(t, msg.HTML, "No messages yet")
}

func TestVariantFor(t *testing.T) {
	assert.Equal(t, email.VariantMessageUpdate, email.VariantFor(entities.UpdateMessage))
	assert.Equal(t, email.VariantStatusUpdate, email.VariantFor(entities.UpdateStatus))
	assert.Equal(t, email.VariantGenericUpdate, email.VariantFor(""))
}

func TestFormatter_MessageUpdateWithoutText(t *testing.T) {
	f := newFormatter(t)

	msg, err := f.Update(entities.NotificationRequest{
		OrderNumber: "1001",
		UpdateType:  entities.UpdateMessage,
	})
	require.NoError(t, err)

	assert.Contains(t, msg.HTML, "The team has sent you a message about your order.")
	assert.NotRegexp(t, `<p[^>]*>\s*</p>`, msg.HTML)
}
