package fulfillment

import (
	"context"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"
	"go.uber.org/zap"

	"github.com/sunwoo0067/dropship/payment"
	"github.com/sunwoo0067/dropship/shipping"
)

// Authorizer is the slice of the payment processor the coordinator
// drives.
type Authorizer interface {
	Authorize(ctx context.Context, orderID string, amount int64, method payment.Method) (*payment.Record, error)
}

// Shipper creates shipments. Opaque external capability: one attempt,
// never retried here.
type Shipper interface {
	CreateShipment(ctx context.Context, req shipping.Request) (*shipping.Shipment, error)
}

// Publisher announces completed fulfillments. May be nil when no event
// rail is wired.
type Publisher interface {
	FulfillmentCompleted(ctx context.Context, orderID, paymentID, shippingID string) error
}

// PaymentRequest carries the payment half of a fulfillment call.
// A zero Amount means "whatever the order says".
type PaymentRequest struct {
	Amount int64
	Method payment.Method
}

// Result is what one fulfillment attempt produced. Shipment is nil when
// payment was declined or shipping failed.
type Result struct {
	Payment  *payment.Record
	Shipment *shipping.Shipment
}

// Coordinator sequences payment and shipment for one order and rolls
// the order status forward.
type Coordinator struct {
	orders    OrderStore
	payments  Authorizer
	shipper   Shipper
	publisher Publisher
	logger    *zap.Logger
}

func NewCoordinator(orders OrderStore, payments Authorizer, shipper Shipper, publisher Publisher) *Coordinator {
	return &Coordinator{
		orders:    orders,
		payments:  payments,
		shipper:   shipper,
		publisher: publisher,
		logger:    zap.L().Named("fulfillment"),
	}
}

// Fulfill authorizes payment and requests shipment for the order.
//
// A declined payment short-circuits: no shipment is attempted, the
// order is untouched and the failed payment record comes back with a
// nil error. A shipment failure is returned as an error with the
// payment still reserved; the caller decides whether to cancel.
func (c *Coordinator) Fulfill(ctx context.Context, orderID string, pay PaymentRequest, ship shipping.Request) (*Result, error) {
	ctx, span := trace.StartSpan(ctx, "fulfillment.Fulfill")
	defer span.End()

	amount := pay.Amount
	if amount == 0 {
		o, err := c.orders.ByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		amount = o.PaymentAmount
	}

	rec, err := c.payments.Authorize(ctx, orderID, amount, pay.Method)
	if err != nil {
		return nil, err
	}
	if !rec.Status.Match(payment.CompletedPayment) {
		c.logger.Info("fulfillment short-circuited on declined payment",
			zap.String("order_id", orderID),
			zap.String("payment_id", rec.PaymentID),
		)
		return &Result{Payment: rec}, nil
	}

	if err := c.orders.UpdateStatus(ctx, orderID, PaymentCompletedOrder); err != nil {
		return &Result{Payment: rec}, err
	}

	ship.OrderID = orderID
	shp, err := c.shipper.CreateShipment(ctx, ship)
	if err != nil {
		// payment stays reserved until the caller confirms or cancels
		c.logger.Warn("shipment creation failed, payment left reserved",
			zap.String("order_id", orderID),
			zap.String("payment_id", rec.PaymentID),
			zap.Error(err),
		)
		return &Result{Payment: rec}, errors.Wrap(err, "failed create shipment")
	}

	if err := c.orders.UpdateStatus(ctx, orderID, ProcessingOrder); err != nil {
		return &Result{Payment: rec, Shipment: shp}, err
	}

	if c.publisher != nil {
		if err := c.publisher.FulfillmentCompleted(ctx, orderID, rec.PaymentID, shp.ShippingID); err != nil {
			c.logger.Warn("failed publish fulfillment event",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
	}

	c.logger.Info("order fulfilled",
		zap.String("order_id", orderID),
		zap.String("payment_id", rec.PaymentID),
		zap.String("shipping_id", shp.ShippingID),
	)
	return &Result{Payment: rec, Shipment: shp}, nil
}
