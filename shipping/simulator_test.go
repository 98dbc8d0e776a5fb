package shipping

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_createShipment(t *testing.T) {
	sim := NewSimulator(NewMemStore())
	ctx := context.Background()

	sh, err := sim.CreateShipment(ctx, Request{
		OrderID: "ORD1",
		Carrier: CJLogistics,
		Method:  StandardShipping,
		Address: "Seoul, Gangnam-gu",
		Items:   []Item{{ProductID: "P1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Contains(t, sh.ShippingID, "SHIP_")
	assert.Equal(t, "ORD1", sh.OrderID)
	assert.Equal(t, Preparing, sh.Status)
	require.NotNil(t, sh.TrackingNumber)
	assert.Len(t, *sh.TrackingNumber, 12)

	// standard is three days out
	wantDay := time.Now().UTC().AddDate(0, 0, 3)
	assert.WithinDuration(t, wantDay, sh.EstimatedDelivery, time.Minute)
}

func TestSimulator_trackingNumberFormats(t *testing.T) {
	sim := NewSimulator(NewMemStore())

	tests := []struct {
		carrier Carrier
		digits  int
	}{
		{CJLogistics, 12},
		{Hanjin, 10},
		{Lotte, 12},
		{Epost, 13},
	}
	for _, tt := range tests {
		t.Run(string(tt.carrier), func(t *testing.T) {
			sh, err := sim.CreateShipment(context.Background(), Request{
				OrderID: "ORD_" + string(tt.carrier),
				Carrier: tt.carrier,
				Method:  ExpressShipping,
			})
			require.NoError(t, err)
			require.NotNil(t, sh.TrackingNumber)
			assert.Len(t, *sh.TrackingNumber, tt.digits)
			for _, r := range *sh.TrackingNumber {
				assert.True(t, r >= '0' && r <= '9')
			}
		})
	}
}

func TestSimulator_estimatedDeliveryByMethod(t *testing.T) {
	sim := NewSimulator(NewMemStore())
	now := time.Now().UTC()

	tests := []struct {
		method Method
		days   int
	}{
		{StandardShipping, 3},
		{ExpressShipping, 1},
		{SameDayShipping, 0},
	}
	for _, tt := range tests {
		sh, err := sim.CreateShipment(context.Background(), Request{
			OrderID: "ORD_" + string(tt.method),
			Carrier: Hanjin,
			Method:  tt.method,
		})
		require.NoError(t, err)
		assert.WithinDuration(t, now.AddDate(0, 0, tt.days), sh.EstimatedDelivery, time.Minute, "method=%s", tt.method)
	}
}

func TestSimulator_rejectsUnknownCarrierAndMethod(t *testing.T) {
	sim := NewSimulator(NewMemStore())

	_, err := sim.CreateShipment(context.Background(), Request{OrderID: "ORD1", Carrier: Carrier("dhl"), Method: StandardShipping})
	assert.Equal(t, ErrUnknownCarrier, err)

	_, err = sim.CreateShipment(context.Background(), Request{OrderID: "ORD1", Carrier: Hanjin, Method: Method("teleport")})
	assert.Error(t, err)

	// nothing was persisted for the rejected requests
	_, err = NewMemStore().ByOrder(context.Background(), "ORD1")
	assert.Equal(t, ErrShipmentNotFound, err)
}

func TestSimulator_persistsShipment(t *testing.T) {
	store := NewMemStore()
	sim := NewSimulator(store)

	sh, err := sim.CreateShipment(context.Background(), Request{OrderID: "ORD9", Carrier: Lotte, Method: StandardShipping})
	require.NoError(t, err)

	stored, err := store.ByOrder(context.Background(), "ORD9")
	require.NoError(t, err)
	assert.Equal(t, sh.ShippingID, stored.ShippingID)
	assert.Equal(t, sh.TrackingNumber, stored.TrackingNumber)
}
