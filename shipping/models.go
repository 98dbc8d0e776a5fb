package shipping

import (
	"time"

	"github.com/pkg/errors"
)

type Carrier string

// Closed set of supported carriers. Dispatch is an exhaustive switch;
// an unknown carrier is rejected at the boundary, never passed through.
const (
	CJLogistics Carrier = "cj_logistics"
	Hanjin      Carrier = "hanjin"
	Lotte       Carrier = "lotte"
	Epost       Carrier = "epost"
)

func (c Carrier) Known() bool {
	switch c {
	case CJLogistics, Hanjin, Lotte, Epost:
		return true
	}
	return false
}

type Method string

const (
	StandardShipping Method = "standard"
	ExpressShipping  Method = "express"
	SameDayShipping  Method = "same_day"
)

// DeliveryDays returns the estimated transit time for the method.
func (m Method) DeliveryDays() (int, error) {
	switch m {
	case StandardShipping:
		return 3, nil
	case ExpressShipping:
		return 1, nil
	case SameDayShipping:
		return 0, nil
	}
	return 0, errors.Errorf("unknown shipping method %q", string(m))
}

type Status string

const (
	Preparing Status = "preparing"
	InTransit Status = "in_transit"
	Delivered Status = "delivered"
)

// Item is one line of a shipment request.
type Item struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Request describes what to ship and how.
type Request struct {
	OrderID string  `json:"order_id"`
	Carrier Carrier `json:"carrier"`
	Method  Method  `json:"method"`
	Address string  `json:"address"`
	Items   []Item  `json:"items"`
}

//go:generate reform

// Shipment is one fulfillment attempt's shipping record.
//
//reform:dropship.shipping
type Shipment struct {
	ShippingID        string    `reform:"shipping_id,pk"`
	OrderID           string    `reform:"order_id"`
	TrackingNumber    *string   `reform:"tracking_number"`
	Method            Method    `reform:"method"`
	Status            Status    `reform:"status"`
	Carrier           Carrier   `reform:"carrier"`
	EstimatedDelivery time.Time `reform:"estimated_delivery"`
	CreatedAt         time.Time `reform:"created_at"`
}

func (s *Shipment) BeforeInsert() error {
	if !s.Carrier.Known() {
		return errors.Errorf("unknown carrier %q", string(s.Carrier))
	}
	s.CreatedAt = time.Now().UTC()
	return nil
}
