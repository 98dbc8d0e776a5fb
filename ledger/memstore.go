package ledger

import (
	"context"
	"sort"
	"sync"
)

// MemStore is the in-process Store: a map guarded by one mutex. Suitable for
// tests and single-process deployments; the coarse lock trivially satisfies
// the atomic-unit contract because a unit sees no concurrent writes at all.
type MemStore struct {
	mu            sync.Mutex
	balances      map[balanceKey]*SupplierBalance
	transactions  map[string]*CreditTransaction
	nextBalanceID int64
}

type balanceKey struct {
	supplierID  string
	accountName string
}

func NewMemStore() *MemStore {
	return &MemStore{
		balances:     make(map[balanceKey]*SupplierBalance),
		transactions: make(map[string]*CreditTransaction),
	}
}

// InTx runs fn against a copy of the state and swaps the copy in only when fn
// succeeds, so a failed unit leaves no partial mutation behind.
func (s *MemStore) InTx(ctx context.Context, fn func(Tx) error) error {
	if err := ctx.Err(); err != nil {
		return ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		balances:      make(map[balanceKey]*SupplierBalance, len(s.balances)),
		transactions:  make(map[string]*CreditTransaction, len(s.transactions)),
		nextBalanceID: s.nextBalanceID,
	}
	for k, v := range s.balances {
		cp := *v
		tx.balances[k] = &cp
	}
	for k, v := range s.transactions {
		cp := *v
		tx.transactions[k] = &cp
	}

	if err := fn(tx); err != nil {
		return err
	}

	s.balances = tx.balances
	s.transactions = tx.transactions
	s.nextBalanceID = tx.nextBalanceID
	return nil
}

type memTx struct {
	balances      map[balanceKey]*SupplierBalance
	transactions  map[string]*CreditTransaction
	nextBalanceID int64
}

func (t *memTx) BalanceForUpdate(supplierID, accountName string) (*SupplierBalance, error) {
	bal, ok := t.balances[balanceKey{supplierID, accountName}]
	if !ok {
		return nil, ErrBalanceNotFound
	}
	return bal, nil
}

func (t *memTx) InsertBalance(b *SupplierBalance) error {
	if err := b.BeforeInsert(); err != nil {
		return err
	}
	t.nextBalanceID++
	b.BalanceID = t.nextBalanceID
	t.balances[balanceKey{b.SupplierID, b.AccountName}] = b
	return nil
}

func (t *memTx) UpdateBalance(b *SupplierBalance) error {
	if err := b.BeforeUpdate(); err != nil {
		return err
	}
	t.balances[balanceKey{b.SupplierID, b.AccountName}] = b
	return nil
}

func (t *memTx) InsertTransaction(ct *CreditTransaction) error {
	if err := ct.BeforeInsert(); err != nil {
		return err
	}
	t.transactions[ct.TransactionID] = ct
	return nil
}

func (t *memTx) UpdateTransaction(ct *CreditTransaction) error {
	t.transactions[ct.TransactionID] = ct
	return nil
}

func (t *memTx) ReservationByOrder(supplierID, accountName, orderID string) (*CreditTransaction, error) {
	var found *CreditTransaction
	for _, ct := range t.transactions {
		if ct.SupplierID != supplierID || ct.AccountName != accountName {
			continue
		}
		if ct.Type != Withdrawal || ct.OrderID == nil || *ct.OrderID != orderID {
			continue
		}
		if found == nil || ct.CreatedAt.After(found.CreatedAt) {
			found = ct
		}
	}
	if found == nil {
		return nil, ErrReservationNotFound
	}
	return found, nil
}

func (t *memTx) ListTransactions(supplierID, accountName string, limit, offset int) ([]*CreditTransaction, error) {
	list := make([]*CreditTransaction, 0)
	for _, ct := range t.transactions {
		if ct.SupplierID == supplierID && ct.AccountName == accountName {
			list = append(list, ct)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].TransactionID > list[j].TransactionID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

var _ Store = (*MemStore)(nil)
var _ Tx = (*memTx)(nil)
