package shipping

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrUnknownCarrier = errors.New("unknown carrier")

// Simulator stands in for the carrier APIs: it assigns a
// carrier-formatted tracking number, estimates delivery from the
// shipping method and persists the record. Single attempt, no retries.
type Simulator struct {
	store  Store
	logger *zap.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSimulator(store Store) *Simulator {
	return &Simulator{
		store:  store,
		logger: zap.L().Named("shipping"),
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Simulator) CreateShipment(ctx context.Context, req Request) (*Shipment, error) {
	if !req.Carrier.Known() {
		return nil, ErrUnknownCarrier
	}
	days, err := req.Method.DeliveryDays()
	if err != nil {
		return nil, err
	}

	tracking := s.trackingNumber(req.Carrier)
	sh := &Shipment{
		ShippingID:        "SHIP_" + uuid.NewString(),
		OrderID:           req.OrderID,
		TrackingNumber:    &tracking,
		Method:            req.Method,
		Status:            Preparing,
		Carrier:           req.Carrier,
		EstimatedDelivery: time.Now().UTC().AddDate(0, 0, days),
	}
	if err := s.store.Insert(ctx, sh); err != nil {
		return nil, err
	}

	s.logger.Info("shipment created",
		zap.String("shipping_id", sh.ShippingID),
		zap.String("order_id", req.OrderID),
		zap.String("carrier", string(req.Carrier)),
		zap.String("tracking_number", tracking),
	)
	return sh, nil
}

// trackingNumber formats a random serial the way each carrier numbers
// its parcels.
func (s *Simulator) trackingNumber(c Carrier) string {
	s.mu.Lock()
	n := s.rnd.Int63()
	s.mu.Unlock()

	switch c {
	case CJLogistics:
		return fmt.Sprintf("%012d", n%1e12)
	case Hanjin:
		return fmt.Sprintf("%010d", n%1e10)
	case Lotte:
		return fmt.Sprintf("%012d", n%1e12)
	case Epost:
		return fmt.Sprintf("%013d", n%1e13)
	}
	// Carrier.Known is checked before dispatch
	panic("unreachable carrier " + string(c))
}
