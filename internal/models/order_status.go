package models

import "strings"

type OrderStatus string

const (
	StatusOrderPlaced    OrderStatus = "Order Placed"
	StatusPacking        OrderStatus = "Packing"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// OrderStatuses lists the statuses in fulfilment order.
var OrderStatuses = []OrderStatus{
	StatusOrderPlaced,
	StatusPacking,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseOrderStatus accepts the stored spelling as well as the compact form
// used by older clients ("OrderPlaced", "OutForDelivery").
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}
	compact := strings.ToLower(strings.ReplaceAll(value, " ", ""))
	for _, known := range OrderStatuses {
		if string(known) == value {
			return known, true
		}
		if strings.ToLower(strings.ReplaceAll(string(known), " ", "")) == compact {
			return known, true
		}
	}
	return "", false
}
