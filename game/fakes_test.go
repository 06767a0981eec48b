package game

import (
	"errors"

	"chubgame/ledger"
	"chubgame/models"
	"chubgame/promotion"

	"github.com/shopspring/decimal"
)

var errFakeDown = errors.New("fake storage down")

type fakeEntry struct {
	userID    uint
	trxType   string
	amount    decimal.Decimal
	reference string
	note      string
}

type fakeLedger struct {
	balances map[uint]decimal.Decimal
	entries  []fakeEntry
	down     bool
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{balances: map[uint]decimal.Decimal{}}
}

func (f *fakeLedger) GetBalance(userID uint) (decimal.Decimal, error) {
	if f.down {
		return decimal.Zero, errFakeDown
	}
	b, ok := f.balances[userID]
	if !ok {
		return decimal.Zero, ledger.ErrUnknownUser
	}
	return b, nil
}

func (f *fakeLedger) Credit(userID uint, amount decimal.Decimal, reference, note string) (decimal.Decimal, error) {
	return f.mutate(userID, amount, "credit", reference, note)
}

func (f *fakeLedger) Debit(userID uint, amount decimal.Decimal, reference, note string) (decimal.Decimal, error) {
	return f.mutate(userID, amount.Neg(), "debit", reference, note)
}

func (f *fakeLedger) mutate(userID uint, delta decimal.Decimal, trxType, reference, note string) (decimal.Decimal, error) {
	if f.down {
		return decimal.Zero, errFakeDown
	}
	b, ok := f.balances[userID]
	if !ok {
		return decimal.Zero, ledger.ErrUnknownUser
	}
	after := b.Add(delta)
	if after.IsNegative() {
		return b, ledger.ErrInsufficientFunds
	}
	f.balances[userID] = after
	f.entries = append(f.entries, fakeEntry{userID, trxType, delta.Abs(), reference, note})
	return after, nil
}

type fakeDirectory map[string]uint

func (f fakeDirectory) ResolveUsername(username string) (uint, error) {
	id, ok := f[username]
	if !ok {
		return 0, ledger.ErrUnknownUser
	}
	return id, nil
}

type fakeRegistry struct {
	rounds []*models.DiceRound
	down   bool
}

func (f *fakeRegistry) FindGenerator(code string) (*models.DiceRound, error) {
	if f.down {
		return nil, errFakeDown
	}
	for _, r := range f.rounds {
		if r.PromotionCode == code && r.IsPromotionUser {
			return r, nil
		}
	}
	return nil, promotion.ErrNotFound
}

func (f *fakeRegistry) IsUsed(code string) (bool, error) {
	if f.down {
		return false, errFakeDown
	}
	for _, r := range f.rounds {
		if r.PromotionCode == code && (r.ParentUserID != nil || r.ChildUserID != nil) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRegistry) IsConsumed(code string) (bool, error) {
	if f.down {
		return false, errFakeDown
	}
	for _, r := range f.rounds {
		if r.PromotionCode == code && r.ChildUserID != nil {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRegistry) LinkParent(code string, parentUserID uint) error {
	if f.down {
		return errFakeDown
	}
	for _, r := range f.rounds {
		if r.PromotionCode == code && r.IsPromotionUser {
			if r.ParentUserID != nil {
				return promotion.ErrAlreadyLinked
			}
			id := parentUserID
			r.ParentUserID = &id
			return nil
		}
	}
	return promotion.ErrNotFound
}

func (f *fakeRegistry) Append(round *models.DiceRound) error {
	if f.down {
		return errFakeDown
	}
	f.rounds = append(f.rounds, round)
	return nil
}
