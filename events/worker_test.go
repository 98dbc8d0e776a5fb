package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwoo0067/dropship/fulfillment"
	"github.com/sunwoo0067/dropship/ledger"
)

type fakePayments struct {
	confirmed []string
	cancelled []string
	err       error
}

func (f *fakePayments) Confirm(_ context.Context, orderID string) error {
	f.confirmed = append(f.confirmed, orderID)
	return f.err
}

func (f *fakePayments) Cancel(_ context.Context, orderID string) error {
	f.cancelled = append(f.cancelled, orderID)
	return f.err
}

type fakeOrders struct {
	rolled map[string]fulfillment.OrderStatus
	err    error
}

func (f *fakeOrders) UpdateStatus(_ context.Context, orderID string, next fulfillment.OrderStatus) error {
	if f.err != nil {
		return f.err
	}
	if f.rolled == nil {
		f.rolled = make(map[string]fulfillment.OrderStatus)
	}
	f.rolled[orderID] = next
	return nil
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestApplyOrderEvent_confirm(t *testing.T) {
	payments := &fakePayments{}
	orders := &fakeOrders{}
	data := mustMarshal(t, OrderEvent{OrderID: "ORD1"})

	err := applyOrderEvent(context.Background(), payments, orders, OrderConfirmedSubject, data)
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD1"}, payments.confirmed)
	assert.Empty(t, payments.cancelled)
	assert.Empty(t, orders.rolled, "confirmation must not touch the order status")
}

func TestApplyOrderEvent_cancelReleasesHoldAndRollsOrder(t *testing.T) {
	payments := &fakePayments{}
	orders := &fakeOrders{}
	data := mustMarshal(t, OrderEvent{OrderID: "ORD2"})

	err := applyOrderEvent(context.Background(), payments, orders, OrderCancelledSubject, data)
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD2"}, payments.cancelled)
	assert.Equal(t, fulfillment.CancelledOrder, orders.rolled["ORD2"])
}

func TestApplyOrderEvent_cancelRollsOrderInStore(t *testing.T) {
	store := fulfillment.NewMemOrderStore()
	ctx := context.Background()
	require.NoError(t, store.Insert(ctx, &fulfillment.Order{
		OrderID:       "ORD10",
		SupplierID:    "SUP1",
		AccountName:   "main",
		PaymentAmount: 10000,
	}))
	payments := &fakePayments{}
	data := mustMarshal(t, OrderEvent{OrderID: "ORD10"})

	err := applyOrderEvent(ctx, payments, store, OrderCancelledSubject, data)
	require.NoError(t, err)

	o, err := store.ByID(ctx, "ORD10")
	require.NoError(t, err)
	assert.Equal(t, fulfillment.CancelledOrder, o.Status)
}

func TestApplyOrderEvent_replayIsNoOp(t *testing.T) {
	payments := &fakePayments{err: ledger.ErrAlreadyFinal}
	orders := &fakeOrders{err: errors.Wrap(fulfillment.ErrBadStatusRoll, "cancelled -> cancelled")}
	data := mustMarshal(t, OrderEvent{OrderID: "ORD3"})

	err := applyOrderEvent(context.Background(), payments, orders, OrderConfirmedSubject, data)
	assert.NoError(t, err, "a replayed event must be dropped silently")

	err = applyOrderEvent(context.Background(), payments, orders, OrderCancelledSubject, data)
	assert.NoError(t, err, "a replayed cancellation must be dropped silently")
}

func TestApplyOrderEvent_badPayload(t *testing.T) {
	payments := &fakePayments{}
	orders := &fakeOrders{}

	err := applyOrderEvent(context.Background(), payments, orders, OrderConfirmedSubject, []byte("{not json"))
	assert.Error(t, err)

	err = applyOrderEvent(context.Background(), payments, orders, OrderConfirmedSubject, []byte(`{}`))
	assert.Error(t, err, "an event without order_id is malformed")

	assert.Empty(t, payments.confirmed)
	assert.Empty(t, payments.cancelled)
	assert.Empty(t, orders.rolled)
}

func TestApplyOrderEvent_errorPropagates(t *testing.T) {
	payments := &fakePayments{err: ledger.ErrReservationNotFound}
	orders := &fakeOrders{}
	data := mustMarshal(t, OrderEvent{OrderID: "ORD4"})

	err := applyOrderEvent(context.Background(), payments, orders, OrderCancelledSubject, data)
	assert.Equal(t, ledger.ErrReservationNotFound, err)
	assert.Empty(t, orders.rolled, "the order must not roll when the hold release fails")
}
