package events

import "time"

const (
	OrderConfirmedSubject       = "order.confirmed"
	OrderCancelledSubject       = "order.cancelled"
	FulfillmentCompletedSubject = "fulfillment.completed"
)

// OrderEvent arrives from marketplace webhooks or operator action.
// Delivery is at least once; consumers must tolerate replays.
type OrderEvent struct {
	OrderID string `json:"order_id"`
}

// FulfillmentCompletedEvent is emitted after a successful fulfillment.
type FulfillmentCompletedEvent struct {
	OrderID     string    `json:"order_id"`
	PaymentID   string    `json:"payment_id"`
	ShippingID  string    `json:"shipping_id"`
	CompletedAt time.Time `json:"completed_at"`
}
