package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ledger owns the balance invariants and the reserve/confirm/cancel state
// machine for supplier credit accounts. All mutations go through the Store's
// atomic unit; the Ledger itself keeps no state.
func New(store Store) *Ledger {
	return &Ledger{
		store:  store,
		logger: zap.L().Named("ledger"),
	}
}

type Ledger struct {
	store  Store
	logger *zap.Logger
}

// GetBalance returns a read-only snapshot of the balance row.
//
// Common errors:
// - ErrBalanceNotFound
func (l *Ledger) GetBalance(ctx context.Context, supplierID, accountName string) (*SupplierBalance, error) {
	var bal *SupplierBalance
	err := l.store.InTx(ctx, func(tx Tx) error {
		var err error
		bal, err = tx.BalanceForUpdate(supplierID, accountName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bal, nil
}

// Deposit atomically increases the current balance and records a completed
// deposit transaction. The balance row is created on first deposit.
//
// Common errors:
// - ErrInvalidAmount
func (l *Ledger) Deposit(ctx context.Context, supplierID, accountName string, amount int64, description string) (txID string, err error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	err = l.store.InTx(ctx, func(tx Tx) error {
		bal, err := tx.BalanceForUpdate(supplierID, accountName)
		switch {
		case err == nil:
			bal.CurrentBalance += amount
			if err := tx.UpdateBalance(bal); err != nil {
				return err
			}
		case IsCause(err, ErrBalanceNotFound):
			bal = &SupplierBalance{
				SupplierID:      supplierID,
				AccountName:     accountName,
				CurrentBalance:  amount,
				ReservedBalance: 0,
			}
			if err := tx.InsertBalance(bal); err != nil {
				return err
			}
		default:
			return err
		}

		now := time.Now().UTC()
		ct := &CreditTransaction{
			TransactionID: uuid.NewString(),
			SupplierID:    supplierID,
			AccountName:   accountName,
			Type:          Deposit,
			Amount:        amount,
			Status:        CompletedTX,
			Description:   description,
			CompletedAt:   &now,
		}
		if err := tx.InsertTransaction(ct); err != nil {
			return err
		}
		txID = ct.TransactionID
		return nil
	})
	if err != nil {
		return "", err
	}
	l.logger.Info("deposit completed",
		zap.String("supplier_id", supplierID),
		zap.String("account_name", accountName),
		zap.Int64("amount", amount),
		zap.String("transaction_id", txID),
	)
	return txID, nil
}

// Reserve places a hold of amount against the available balance for orderID.
// The hold is additive: reservations for different orders coexist on the same
// balance row. The funds become a debit only after Confirm; Cancel releases
// them.
//
// Common errors:
// - ErrInvalidAmount
// - ErrInsufficientFunds (no pending record is created, balance untouched)
// - ErrAlreadyReserved (an active reservation for orderID already exists)
func (l *Ledger) Reserve(ctx context.Context, supplierID, accountName, orderID string, amount int64) (txID string, err error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	err = l.store.InTx(ctx, func(tx Tx) error {
		bal, err := tx.BalanceForUpdate(supplierID, accountName)
		if err != nil {
			if IsCause(err, ErrBalanceNotFound) {
				// no funds were ever deposited for this pair
				return ErrInsufficientFunds
			}
			return err
		}

		prev, err := tx.ReservationByOrder(supplierID, accountName, orderID)
		if err != nil && !IsCause(err, ErrReservationNotFound) {
			return err
		}
		if prev != nil && prev.Status.Match(PendingTX) {
			return ErrAlreadyReserved
		}

		if bal.AvailableBalance() < amount {
			return ErrInsufficientFunds
		}
		bal.ReservedBalance += amount
		if err := tx.UpdateBalance(bal); err != nil {
			return err
		}

		ct := &CreditTransaction{
			TransactionID: uuid.NewString(),
			SupplierID:    supplierID,
			AccountName:   accountName,
			Type:          Withdrawal,
			Amount:        amount,
			Status:        PendingTX,
			Description:   fmt.Sprintf("reservation for order %s", orderID),
			OrderID:       &orderID,
		}
		if err := tx.InsertTransaction(ct); err != nil {
			return err
		}
		txID = ct.TransactionID
		return nil
	})
	if err != nil {
		return "", err
	}
	l.logger.Info("funds reserved",
		zap.String("supplier_id", supplierID),
		zap.String("account_name", accountName),
		zap.String("order_id", orderID),
		zap.Int64("amount", amount),
		zap.String("transaction_id", txID),
	)
	return txID, nil
}

// Confirm realizes the reservation for orderID as an actual debit: the
// reserved amount leaves both current_balance and reserved_balance and the
// pending transaction closes as completed. This is the only operation that
// permanently removes money from the balance.
//
// Common errors:
// - ErrReservationNotFound
// - ErrAlreadyFinal (idempotent no-op on replay)
func (l *Ledger) Confirm(ctx context.Context, supplierID, accountName, orderID string) error {
	err := l.store.InTx(ctx, func(tx Tx) error {
		res, err := tx.ReservationByOrder(supplierID, accountName, orderID)
		if err != nil {
			return err
		}
		if res.Status.Terminal() {
			return ErrAlreadyFinal
		}

		bal, err := tx.BalanceForUpdate(supplierID, accountName)
		if err != nil {
			return err
		}
		bal.CurrentBalance -= res.Amount
		bal.ReservedBalance -= res.Amount
		l.floorBalances(bal, orderID)
		if err := tx.UpdateBalance(bal); err != nil {
			return err
		}

		res.Status = CompletedTX
		now := time.Now().UTC()
		res.CompletedAt = &now
		return tx.UpdateTransaction(res)
	})
	if err != nil {
		return err
	}
	l.logger.Info("reservation confirmed",
		zap.String("supplier_id", supplierID),
		zap.String("account_name", accountName),
		zap.String("order_id", orderID),
	)
	return nil
}

// Cancel releases the reservation for orderID: reserved_balance drops by the
// reserved amount, current_balance stays untouched, the transaction closes as
// cancelled.
//
// Common errors:
// - ErrReservationNotFound
// - ErrAlreadyFinal (idempotent no-op on replay)
func (l *Ledger) Cancel(ctx context.Context, supplierID, accountName, orderID string) error {
	err := l.store.InTx(ctx, func(tx Tx) error {
		res, err := tx.ReservationByOrder(supplierID, accountName, orderID)
		if err != nil {
			return err
		}
		if res.Status.Terminal() {
			return ErrAlreadyFinal
		}

		bal, err := tx.BalanceForUpdate(supplierID, accountName)
		if err != nil {
			return err
		}
		bal.ReservedBalance -= res.Amount
		l.floorBalances(bal, orderID)
		if err := tx.UpdateBalance(bal); err != nil {
			return err
		}

		res.Status = CancelledTX
		now := time.Now().UTC()
		res.CompletedAt = &now
		return tx.UpdateTransaction(res)
	})
	if err != nil {
		return err
	}
	l.logger.Info("reservation cancelled",
		zap.String("supplier_id", supplierID),
		zap.String("account_name", accountName),
		zap.String("order_id", orderID),
	)
	return nil
}

// ListTransactions returns the transaction log for the pair, newest first.
func (l *Ledger) ListTransactions(ctx context.Context, supplierID, accountName string, limit, offset int) ([]*CreditTransaction, error) {
	var list []*CreditTransaction
	err := l.store.InTx(ctx, func(tx Tx) error {
		var err error
		list, err = tx.ListTransactions(supplierID, accountName, limit, offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// floorBalances is the last-resort defensive floor. With the reservation
// invariant intact it never fires; if it does, the row was corrupted outside
// the ledger and we log loudly instead of silently going negative.
func (l *Ledger) floorBalances(bal *SupplierBalance, orderID string) {
	if bal.ReservedBalance < 0 {
		l.logger.Error("reserved balance underflow, flooring to zero",
			zap.String("supplier_id", bal.SupplierID),
			zap.String("account_name", bal.AccountName),
			zap.String("order_id", orderID),
			zap.Int64("reserved_balance", bal.ReservedBalance),
		)
		bal.ReservedBalance = 0
	}
	if bal.CurrentBalance < 0 {
		l.logger.Error("current balance underflow, flooring to zero",
			zap.String("supplier_id", bal.SupplierID),
			zap.String("account_name", bal.AccountName),
			zap.String("order_id", orderID),
			zap.Int64("current_balance", bal.CurrentBalance),
		)
		bal.CurrentBalance = 0
	}
}
