package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-notifier/internal/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

type Variant string

const (
	VariantConfirmation  Variant = "confirmation"
	VariantMessageUpdate Variant = "message-update"
	VariantStatusUpdate  Variant = "status-update"
	VariantGenericUpdate Variant = "generic-update"
)

// VariantFor выбирает шаблон по типу обновления, неизвестные типы дают generic
func VariantFor(t entities.UpdateType) Variant {
	switch t {
	case entities.UpdateMessage:
		return VariantMessageUpdate
	case entities.UpdateStatus:
		return VariantStatusUpdate
	default:
		return VariantGenericUpdate
	}
}

type content struct {
	subject string
	heading string
	body    string
}

var variants = map[Variant]content{
	VariantConfirmation: {
		subject: "Order Confirmed - Order #%s",
		heading: "Thank you for your order",
	},
	VariantMessageUpdate: {
		subject: "New Message - Order #%s",
		heading: "You have a new message",
		body:    "The team has sent you a message about your order. View the tracking page to read it and reply.",
	},
	VariantStatusUpdate: {
		subject: "Status Update - Order #%s",
		heading: "Your order status has changed",
		body:    "The status of your order has changed. View the tracking page for the latest status and details.",
	},
	VariantGenericUpdate: {
		subject: "Order Update - Order #%s",
		heading: "Your order has been updated",
		body:    "There has been an update to your order. View the tracking page for the latest details.",
	},
}

const (
	historyLimit    = 3
	defaultGreeting = "there"
)

type FormatterConfig struct {
	TrackingBaseURL string
	LogoURL         string
	Brand           string

	// Now подменяется в тестах, по умолчанию time.Now
	Now func() time.Time
}

// Formatter собирает тему и HTML письма. Ввода-вывода нет.
type Formatter struct {
	confirmation *template.Template
	update       *template.Template

	trackingBaseURL string
	logoURL         string
	brand           string
	now             func() time.Time
}

func NewFormatter(cfg FormatterConfig) (*Formatter, error) {
	confirmation, err := template.ParseFS(templateFS, "templates/layout.html", "templates/confirmation.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse confirmation template: %w", err)
	}
	update, err := template.ParseFS(templateFS, "templates/layout.html", "templates/update.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse update template: %w", err)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Formatter{
		confirmation:    confirmation,
		update:          update,
		trackingBaseURL: cfg.TrackingBaseURL,
		logoURL:         cfg.LogoURL,
		brand:           cfg.Brand,
		now:             now,
	}, nil
}

type historyEntry struct {
	Label        string
	FromCustomer bool
	Message      string
}

type templateData struct {
	Subject      string
	Heading      string
	Body         string
	Message      string
	CustomerName string
	OrderNumber  string
	OrderDate    string
	TrackingURL  string
	LogoURL      string
	Brand        string
	Year         int
	History      []historyEntry
}

func (f *Formatter) TrackingURL(orderNumber string) string {
	return f.trackingBaseURL + "?order=" + url.QueryEscape(orderNumber)
}

// Confirmation письмо о создании заказа, без блока переписки
func (f *Formatter) Confirmation(order entities.OrderRecord) (entities.Email, error) {
	data := f.baseData(VariantConfirmation, order.OrderNumber, order.CustomerName)
	data.OrderDate = order.OrderDate

	return f.render(f.confirmation, data)
}

// Update письмо об обновлении заказа. Наличие OrderNumber и Email
// проверяет вызывающий.
func (f *Formatter) Update(req entities.NotificationRequest) (entities.Email, error) {
	variant := VariantFor(req.UpdateType)

	data := f.baseData(variant, req.OrderNumber, req.CustomerName)
	if variant == VariantMessageUpdate {
		data.Message = req.Message
	}
	data.History = f.history(req.MessageHistory)

	return f.render(f.update, data)
}

func (f *Formatter) baseData(v Variant, orderNumber, customerName string) templateData {
	c := variants[v]

	if strings.TrimSpace(customerName) == "" {
		customerName = defaultGreeting
	}

	return templateData{
		Subject:      fmt.Sprintf(c.subject, orderNumber),
		Heading:      c.heading,
		Body:         c.body,
		CustomerName: customerName,
		OrderNumber:  orderNumber,
		TrackingURL:  f.TrackingURL(orderNumber),
		LogoURL:      f.logoURL,
		Brand:        f.brand,
		Year:         f.now().Year(),
	}
}

// history последние historyLimit сообщений в исходном порядке
func (f *Formatter) history(messages []entities.Message) []historyEntry {
	if len(messages) > historyLimit {
		messages = messages[len(messages)-historyLimit:]
	}

	entries := make([]historyEntry, 0, len(messages))
	for _, m := range messages {
		entry := historyEntry{
			Label:   f.brand + " Team",
			Message: m.Message,
		}
		if m.Sender == entities.SenderCustomer {
			entry.Label = "You"
			entry.FromCustomer = true
		}
		entries = append(entries, entry)
	}
	return entries
}

func (f *Formatter) render(tmpl *template.Template, data templateData) (entities.Email, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return entities.Email{}, fmt.Errorf("failed to render %q: %w", data.Subject, err)
	}

	return entities.Email{
		Subject: data.Subject,
		HTML:    buf.String(),
	}, nil
}
