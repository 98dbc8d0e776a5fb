package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sunwoo0067/dropship/fulfillment"
	"github.com/sunwoo0067/dropship/ledger"
)

const workerQueue = "dropship-core"

// PaymentControl is the slice of the payment processor the worker
// drives.
type PaymentControl interface {
	Confirm(ctx context.Context, orderID string) error
	Cancel(ctx context.Context, orderID string) error
}

// OrderControl is the slice of the order store the worker drives.
type OrderControl interface {
	UpdateStatus(ctx context.Context, orderID string, next fulfillment.OrderStatus) error
}

// SubToNATS wires the order confirm/cancel subjects to the payment
// processor and the order store. Queue subscription: one worker in the
// group handles each event; replays land on the ledger's
// terminal-state guard and are dropped as no-ops.
func SubToNATS(nc *nats.Conn, payments PaymentControl, orders OrderControl) error {
	logger := zap.L().Named("events")

	handle := func(subject string) func(*nats.Msg) {
		return func(msg *nats.Msg) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := applyOrderEvent(ctx, payments, orders, subject, msg.Data); err != nil {
				logger.Error("failed apply order event",
					zap.String("subject", subject),
					zap.Error(err),
				)
			}
		}
	}

	if _, err := nc.QueueSubscribe(OrderConfirmedSubject, workerQueue, handle(OrderConfirmedSubject)); err != nil {
		return errors.Wrap(err, "failed subscribe order.confirmed")
	}
	if _, err := nc.QueueSubscribe(OrderCancelledSubject, workerQueue, handle(OrderCancelledSubject)); err != nil {
		return errors.Wrap(err, "failed subscribe order.cancelled")
	}
	return nil
}

func applyOrderEvent(ctx context.Context, payments PaymentControl, orders OrderControl, subject string, data []byte) error {
	var ev OrderEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return errors.Wrap(err, "failed unmarshal order event")
	}
	if ev.OrderID == "" {
		return errors.New("order event without order_id")
	}

	switch subject {
	case OrderConfirmedSubject:
		err := payments.Confirm(ctx, ev.OrderID)
		// at-least-once delivery: a replayed event is already settled
		if ledger.IsCause(err, ledger.ErrAlreadyFinal) {
			return nil
		}
		return err
	case OrderCancelledSubject:
		err := payments.Cancel(ctx, ev.OrderID)
		if err != nil && !ledger.IsCause(err, ledger.ErrAlreadyFinal) {
			return err
		}
		if err := orders.UpdateStatus(ctx, ev.OrderID, fulfillment.CancelledOrder); err != nil {
			// a replayed event finds the order already cancelled
			if errors.Cause(err) == fulfillment.ErrBadStatusRoll {
				return nil
			}
			return err
		}
		return nil
	default:
		return errors.Errorf("unexpected subject %q", subject)
	}
}
