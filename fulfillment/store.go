package fulfillment

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	reform "gopkg.in/reform.v1"

	"github.com/sunwoo0067/dropship/payment"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore persists platform-local orders.
type OrderStore interface {
	Insert(ctx context.Context, o *Order) error
	ByID(ctx context.Context, orderID string) (*Order, error)
	// UpdateStatus rolls the order forward; an illegal transition is
	// rejected without touching the row.
	UpdateStatus(ctx context.Context, orderID string, next OrderStatus) error
}

var ErrBadStatusRoll = errors.New("illegal order status transition")

// Directory adapts an OrderStore to the payment order-directory
// contract.
type Directory struct {
	store OrderStore
}

func NewDirectory(store OrderStore) *Directory {
	return &Directory{store: store}
}

func (d *Directory) OrderInfo(ctx context.Context, orderID string) (*payment.OrderInfo, error) {
	o, err := d.store.ByID(ctx, orderID)
	if err != nil {
		if errors.Cause(err) == ErrOrderNotFound {
			return nil, payment.ErrOrderNotFound
		}
		return nil, err
	}
	return &payment.OrderInfo{
		SupplierID:    o.SupplierID,
		AccountName:   o.AccountName,
		PaymentAmount: o.PaymentAmount,
	}, nil
}

var _ payment.OrderDirectory = (*Directory)(nil)

type PgOrderStore struct {
	db *reform.DB
}

func NewPgOrderStore(db *reform.DB) *PgOrderStore {
	return &PgOrderStore{db: db}
}

func (s *PgOrderStore) Insert(ctx context.Context, o *Order) error {
	if err := o.BeforeInsert(); err != nil {
		return err
	}
	return errors.Wrap(s.db.WithContext(ctx).Insert(o), "failed insert order")
}

func (s *PgOrderStore) ByID(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	err := s.db.WithContext(ctx).FindByPrimaryKeyTo(&o, orderID)
	if err != nil {
		if err == reform.ErrNoRows {
			return nil, ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "failed find order")
	}
	return &o, nil
}

func (s *PgOrderStore) UpdateStatus(ctx context.Context, orderID string, next OrderStatus) error {
	o, err := s.ByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !o.Status.CanRollTo(next) {
		return errors.Wrapf(ErrBadStatusRoll, "%s -> %s", o.Status, next)
	}
	o.Status = next
	if err := o.BeforeUpdate(); err != nil {
		return err
	}
	return errors.Wrap(s.db.WithContext(ctx).UpdateColumns(o, "status", "updated_at"), "failed update order status")
}

type MemOrderStore struct {
	mu     sync.Mutex
	orders map[string]*Order
}

func NewMemOrderStore() *MemOrderStore {
	return &MemOrderStore{orders: make(map[string]*Order)}
}

func (s *MemOrderStore) Insert(_ context.Context, o *Order) error {
	if err := o.BeforeInsert(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *o
	s.orders[o.OrderID] = &cp
	return nil
}

func (s *MemOrderStore) ByID(_ context.Context, orderID string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *MemOrderStore) UpdateStatus(_ context.Context, orderID string, next OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	if !o.Status.CanRollTo(next) {
		return errors.Wrapf(ErrBadStatusRoll, "%s -> %s", o.Status, next)
	}
	o.Status = next
	return o.BeforeUpdate()
}

var (
	_ OrderStore = (*PgOrderStore)(nil)
	_ OrderStore = (*MemOrderStore)(nil)
)
