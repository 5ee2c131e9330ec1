package entities

import "errors"

var (
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidOrderEvent = errors.New("invalid order event")
	ErrInvalidOrder      = errors.New("invalid order record")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidToken      = errors.New("invalid tracking token")

	// Ошибки по стадиям пайплайна, наружу обе отдаются как 500
	ErrStoreFailed    = errors.New("order store failed")
	ErrDeliveryFailed = errors.New("email delivery failed")
)
