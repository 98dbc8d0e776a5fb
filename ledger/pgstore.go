package ledger

import (
	"context"
	"database/sql"
	"database/sql/driver"

	"github.com/pkg/errors"
	reform "gopkg.in/reform.v1"
)

// PgStore implements Store on PostgreSQL through reform. The balance row is
// serialized with a row-level lock (SELECT ... FOR UPDATE), so concurrent
// reservations against the same (supplier_id, account_name) pair queue up on
// the row instead of racing the availability check.
type PgStore struct {
	db *reform.DB
}

func NewPgStore(db *reform.DB) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) InTx(ctx context.Context, fn func(Tx) error) error {
	err := s.db.InTransactionContext(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(tx *reform.TX) error {
		return fn(&pgTx{tx: tx})
	})
	return asStoreError(err)
}

type pgTx struct {
	tx *reform.TX
}

func (t *pgTx) BalanceForUpdate(supplierID, accountName string) (*SupplierBalance, error) {
	var bal SupplierBalance
	err := t.tx.SelectOneTo(&bal, "WHERE supplier_id = $1 AND account_name = $2 FOR UPDATE", supplierID, accountName)
	if err != nil {
		if err == reform.ErrNoRows {
			return nil, ErrBalanceNotFound
		}
		return nil, errors.Wrap(err, "failed find balance row")
	}
	return &bal, nil
}

func (t *pgTx) InsertBalance(b *SupplierBalance) error {
	return errors.Wrap(t.tx.Insert(b), "failed insert balance row")
}

func (t *pgTx) UpdateBalance(b *SupplierBalance) error {
	return errors.Wrap(t.tx.UpdateColumns(b, "current_balance", "reserved_balance", "last_updated"), "failed update balance row")
}

func (t *pgTx) InsertTransaction(ct *CreditTransaction) error {
	return errors.Wrap(t.tx.Insert(ct), "failed insert credit transaction")
}

func (t *pgTx) UpdateTransaction(ct *CreditTransaction) error {
	return errors.Wrap(t.tx.UpdateColumns(ct, "status", "completed_at", "failure_reason"), "failed update credit transaction")
}

func (t *pgTx) ReservationByOrder(supplierID, accountName, orderID string) (*CreditTransaction, error) {
	var ct CreditTransaction
	err := t.tx.SelectOneTo(&ct,
		"WHERE supplier_id = $1 AND account_name = $2 AND order_id = $3 AND _type = $4 ORDER BY created_at DESC LIMIT 1",
		supplierID, accountName, orderID, Withdrawal,
	)
	if err != nil {
		if err == reform.ErrNoRows {
			return nil, ErrReservationNotFound
		}
		return nil, errors.Wrap(err, "failed find reservation by order")
	}
	return &ct, nil
}

func (t *pgTx) ListTransactions(supplierID, accountName string, limit, offset int) ([]*CreditTransaction, error) {
	rows, err := t.tx.SelectAllFrom(CreditTransactionTable,
		"WHERE supplier_id = $1 AND account_name = $2 ORDER BY created_at DESC OFFSET $3 LIMIT $4",
		supplierID, accountName, offset, limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed list credit transactions")
	}
	list := make([]*CreditTransaction, 0, len(rows))
	for _, r := range rows {
		list = append(list, r.(*CreditTransaction))
	}
	return list, nil
}

// asStoreError maps infrastructure faults to the transient taxonomy so that
// callers can tell "retry later" apart from ledger-state errors.
func asStoreError(err error) error {
	switch errors.Cause(err) {
	case nil:
		return nil
	case context.DeadlineExceeded, context.Canceled, driver.ErrBadConn, sql.ErrConnDone:
		return errors.Wrap(ErrUnavailable, err.Error())
	}
	return err
}

var _ Store = (*PgStore)(nil)
var _ Tx = (*pgTx)(nil)
