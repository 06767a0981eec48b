// Package ledger wraps the points balance store behind a small
// gateway interface. Each call is atomic on its own; callers that need
// several mutations to commit together must run them over one
// database transaction.
package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownUser       = errors.New("ledger: unknown user")
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")
)

// Gateway moves points in and out of a user balance. Credit and Debit
// return the balance after the mutation.
type Gateway interface {
	GetBalance(userID uint) (decimal.Decimal, error)
	Credit(userID uint, amount decimal.Decimal, reference, note string) (decimal.Decimal, error)
	Debit(userID uint, amount decimal.Decimal, reference, note string) (decimal.Decimal, error)
}

// Directory resolves login names to account ids.
type Directory interface {
	ResolveUsername(username string) (uint, error)
}
