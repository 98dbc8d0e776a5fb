package payment

import (
	"context"

	"github.com/pkg/errors"
	reform "gopkg.in/reform.v1"
)

// PgStore persists payment records in PostgreSQL through reform.
type PgStore struct {
	db *reform.DB
}

func NewPgStore(db *reform.DB) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Insert(ctx context.Context, r *Record) error {
	if err := r.BeforeInsert(); err != nil {
		return err
	}
	return errors.Wrap(s.db.WithContext(ctx).Insert(r), "failed insert payment record")
}

func (s *PgStore) Update(ctx context.Context, r *Record) error {
	err := s.db.WithContext(ctx).UpdateColumns(r, "status", "transaction_id", "refunded_amount", "completed_at", "failure_reason")
	if err == reform.ErrNoRows {
		return ErrPaymentNotFound
	}
	return errors.Wrap(err, "failed update payment record")
}

func (s *PgStore) ByID(ctx context.Context, paymentID string) (*Record, error) {
	var r Record
	err := s.db.WithContext(ctx).FindByPrimaryKeyTo(&r, paymentID)
	if err != nil {
		if err == reform.ErrNoRows {
			return nil, ErrPaymentNotFound
		}
		return nil, errors.Wrap(err, "failed find payment record")
	}
	return &r, nil
}

func (s *PgStore) ByOrder(ctx context.Context, orderID string) (*Record, error) {
	var r Record
	err := s.db.WithContext(ctx).SelectOneTo(&r, "WHERE order_id = $1 ORDER BY created_at DESC LIMIT 1", orderID)
	if err != nil {
		if err == reform.ErrNoRows {
			return nil, ErrPaymentNotFound
		}
		return nil, errors.Wrap(err, "failed find payment by order")
	}
	return &r, nil
}

var _ Store = (*PgStore)(nil)
