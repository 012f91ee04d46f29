// Package ledger holds the in-memory state of the charity token system:
// per-account balances, the gift catalog and the pending-order ledger.
//
// None of the structures here are safe for concurrent use. They are owned by
// the token service, which serializes every public operation behind a single
// lock (single-writer model).
package ledger

import (
	"math"

	"charity_token/internal/domain"
	"charity_token/internal/domain/value"
	"charity_token/pkg/errcodes"
)

// Balances maps account identities to unsigned token counts. Unknown
// accounts hold zero.
type Balances struct {
	accounts map[value.Identity]uint64
}

func NewBalances() *Balances {
	return &Balances{
		accounts: make(map[value.Identity]uint64),
	}
}

// Credit increases the account balance. Wrapping past the representable
// range is a hard failure, never a silent wraparound.
func (b *Balances) Credit(account value.Identity, amount uint64) error {
	current := b.accounts[account]

	if amount > math.MaxUint64-current {
		return domain.NewError(errcodes.Overflow, "credit overflows balance")
	}

	b.accounts[account] = current + amount

	return nil
}

// Debit decreases the account balance by exactly amount. The pre-check keeps
// the balance non-negative at all times.
func (b *Balances) Debit(account value.Identity, amount uint64) error {
	current := b.accounts[account]

	if amount > current {
		return domain.NewError(errcodes.InsufficientBalance, "debit exceeds balance")
	}

	b.accounts[account] = current - amount

	return nil
}

func (b *Balances) BalanceOf(account value.Identity) uint64 {
	return b.accounts[account]
}
