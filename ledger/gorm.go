package ledger

import (
	"errors"

	"chubgame/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm implements Gateway and Directory over the users and
// ledger_entries tables. Construct it over a transaction handle when a
// settlement needs several mutations to commit together.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) ResolveUsername(username string) (uint, error) {
	var user models.User
	err := g.db.Where("username = ? AND is_active = true", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrUnknownUser
	}
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (g *Gorm) GetBalance(userID uint) (decimal.Decimal, error) {
	var user models.User
	err := g.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, ErrUnknownUser
	}
	if err != nil {
		return decimal.Zero, err
	}
	return user.Balance, nil
}

func (g *Gorm) Credit(userID uint, amount decimal.Decimal, reference, note string) (decimal.Decimal, error) {
	return g.mutate(userID, amount, "credit", reference, note)
}

func (g *Gorm) Debit(userID uint, amount decimal.Decimal, reference, note string) (decimal.Decimal, error) {
	return g.mutate(userID, amount.Neg(), "debit", reference, note)
}

func (g *Gorm) mutate(userID uint, delta decimal.Decimal, trxType, reference, note string) (decimal.Decimal, error) {
	var user models.User
	err := g.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, ErrUnknownUser
	}
	if err != nil {
		return decimal.Zero, err
	}

	before := user.Balance
	after := before.Add(delta)
	if after.IsNegative() {
		return before, ErrInsufficientFunds
	}

	user.Balance = after
	if err := g.db.Save(&user).Error; err != nil {
		return before, err
	}

	entry := models.LedgerEntry{
		UserID:        userID,
		TrxType:       trxType,
		Amount:        delta.Abs(),
		BalanceBefore: before,
		BalanceAfter:  after,
		Reference:     reference,
		Note:          note,
		RefID:         uuid.New().String(),
	}
	if err := g.db.Create(&entry).Error; err != nil {
		return after, err
	}

	return after, nil
}
