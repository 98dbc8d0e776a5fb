package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// Bus publishes platform events to NATS.
type Bus struct {
	nc *nats.Conn
}

func NewBus(nc *nats.Conn) *Bus {
	return &Bus{nc: nc}
}

func (b *Bus) FulfillmentCompleted(_ context.Context, orderID, paymentID, shippingID string) error {
	return b.publish(FulfillmentCompletedSubject, FulfillmentCompletedEvent{
		OrderID:     orderID,
		PaymentID:   paymentID,
		ShippingID:  shippingID,
		CompletedAt: time.Now().UTC(),
	})
}

func (b *Bus) OrderConfirmed(orderID string) error {
	return b.publish(OrderConfirmedSubject, OrderEvent{OrderID: orderID})
}

func (b *Bus) OrderCancelled(orderID string) error {
	return b.publish(OrderCancelledSubject, OrderEvent{OrderID: orderID})
}

func (b *Bus) publish(subject string, msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed marshal event")
	}
	return errors.Wrapf(b.nc.Publish(subject, data), "failed publish to %s", subject)
}
