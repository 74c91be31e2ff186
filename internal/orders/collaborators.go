package orders

//go:generate mockgen -source=collaborators.go -destination=ordersmock/mock_orders.go -package=ordersmock

import (
	"context"
	"errors"

	"backoffice/internal/models"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrUnknownStatus  = errors.New("unknown order status")
	ErrSessionExpired = errors.New("order session not found")
)

// Source fetches the full order collection, most recent first.
type Source interface {
	FetchOrders(ctx context.Context) ([]models.Order, error)
}

// StatusSink persists a status change for one order.
type StatusSink interface {
	SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error
}
