package payment

import (
	"context"
	"sync"
)

// MemStore keeps payment records in process. Used by tests and the
// single-process wiring.
type MemStore struct {
	mu      sync.Mutex
	records map[string]*Record
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]*Record)}
}

func (s *MemStore) Insert(_ context.Context, r *Record) error {
	if err := r.BeforeInsert(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.records[r.PaymentID] = &cp
	return nil
}

func (s *MemStore) Update(_ context.Context, r *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[r.PaymentID]; !ok {
		return ErrPaymentNotFound
	}
	cp := *r
	s.records[r.PaymentID] = &cp
	return nil
}

func (s *MemStore) ByID(_ context.Context, paymentID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[paymentID]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *MemStore) ByOrder(_ context.Context, orderID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found *Record
	for _, r := range s.records {
		if r.OrderID != orderID {
			continue
		}
		if found == nil || r.CreatedAt.After(found.CreatedAt) {
			found = r
		}
	}
	if found == nil {
		return nil, ErrPaymentNotFound
	}
	cp := *found
	return &cp, nil
}

var _ Store = (*MemStore)(nil)
