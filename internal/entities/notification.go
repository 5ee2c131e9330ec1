package entities

type UpdateType string

const (
	UpdateMessage UpdateType = "message"
	UpdateStatus  UpdateType = "status"
)

type NotificationRequest struct {
	OrderNumber    string
	CustomerName   string
	Email          string
	UpdateType     UpdateType
	Message        string
	MessageHistory []Message
}

// Email готовое к отправке письмо
type Email struct {
	Subject string
	HTML    string
}

type DeliveryResult struct {
	ID string
}
