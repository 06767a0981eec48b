package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Username string          `gorm:"uniqueIndex;size:64" json:"username"`
	Balance  decimal.Decimal `gorm:"type:numeric(20,2)" json:"balance"`
	IsActive bool            `gorm:"default:true" json:"is_active"`

	LedgerEntries []LedgerEntry `gorm:"foreignKey:UserID"`
}

// LedgerEntry is one credit or debit against a user balance, with
// before/after snapshots for reconciliation.
type LedgerEntry struct {
	gorm.Model

	UserID        uint            `gorm:"index"`
	TrxType       string          `gorm:"size:16"`
	Amount        decimal.Decimal `gorm:"type:numeric(20,2)" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(20,2)" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(20,2)" json:"balance_after"`
	Reference     string          `gorm:"size:64;index"`
	Note          string          `gorm:"size:255"`
	RefID         string          `gorm:"size:64"`
}
