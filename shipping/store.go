package shipping

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	reform "gopkg.in/reform.v1"
)

var ErrShipmentNotFound = errors.New("shipment not found")

// Store persists shipping records.
type Store interface {
	Insert(ctx context.Context, s *Shipment) error
	ByOrder(ctx context.Context, orderID string) (*Shipment, error)
}

type PgStore struct {
	db *reform.DB
}

func NewPgStore(db *reform.DB) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Insert(ctx context.Context, sh *Shipment) error {
	if err := sh.BeforeInsert(); err != nil {
		return err
	}
	return errors.Wrap(s.db.WithContext(ctx).Insert(sh), "failed insert shipment")
}

func (s *PgStore) ByOrder(ctx context.Context, orderID string) (*Shipment, error) {
	var sh Shipment
	err := s.db.WithContext(ctx).SelectOneTo(&sh, "WHERE order_id = $1 ORDER BY created_at DESC LIMIT 1", orderID)
	if err != nil {
		if err == reform.ErrNoRows {
			return nil, ErrShipmentNotFound
		}
		return nil, errors.Wrap(err, "failed find shipment by order")
	}
	return &sh, nil
}

type MemStore struct {
	mu        sync.Mutex
	shipments map[string]*Shipment
}

func NewMemStore() *MemStore {
	return &MemStore{shipments: make(map[string]*Shipment)}
}

func (s *MemStore) Insert(_ context.Context, sh *Shipment) error {
	if err := sh.BeforeInsert(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sh
	s.shipments[sh.ShippingID] = &cp
	return nil
}

func (s *MemStore) ByOrder(_ context.Context, orderID string) (*Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found *Shipment
	for _, sh := range s.shipments {
		if sh.OrderID != orderID {
			continue
		}
		if found == nil || sh.CreatedAt.After(found.CreatedAt) {
			found = sh
		}
	}
	if found == nil {
		return nil, ErrShipmentNotFound
	}
	cp := *found
	return &cp, nil
}

var (
	_ Store = (*PgStore)(nil)
	_ Store = (*MemStore)(nil)
)
