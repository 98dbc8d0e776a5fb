package fulfillment

import (
	"time"

	"github.com/pkg/errors"
)

type OrderStatus string

// Order status only rolls forward: pending → payment_completed →
// processing. Cancellation is allowed until the order is processing.
const (
	PendingOrder          OrderStatus = "pending"
	PaymentCompletedOrder OrderStatus = "payment_completed"
	ProcessingOrder       OrderStatus = "processing"
	CancelledOrder        OrderStatus = "cancelled"
)

var orderStatusForward = map[OrderStatus][]OrderStatus{
	PendingOrder:          {PaymentCompletedOrder, CancelledOrder},
	PaymentCompletedOrder: {ProcessingOrder, CancelledOrder},
	ProcessingOrder:       {},
	CancelledOrder:        {},
}

func (s OrderStatus) CanRollTo(next OrderStatus) bool {
	for _, allowed := range orderStatusForward[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

//go:generate reform

// Order is the platform-local view of a marketplace order.
//
//reform:dropship.local_orders
type Order struct {
	OrderID       string      `reform:"order_id,pk"`
	SupplierID    string      `reform:"supplier_id"`
	AccountName   string      `reform:"account_name"`
	PaymentAmount int64       `reform:"payment_amount"`
	Status        OrderStatus `reform:"status"`
	CreatedAt     time.Time   `reform:"created_at"`
	UpdatedAt     time.Time   `reform:"updated_at"`
}

func (o *Order) BeforeInsert() error {
	if o.PaymentAmount < 0 {
		return errors.New("payment amount must not be negative")
	}
	if o.Status == "" {
		o.Status = PendingOrder
	}
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	return nil
}

func (o *Order) BeforeUpdate() error {
	o.UpdatedAt = time.Now().UTC()
	return nil
}
