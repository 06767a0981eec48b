package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiceRound is one audit row per participant per settled game. Rows are
// append-only; the single exception is the promotion-linking update that
// sets ParentUserID on a generator row.
type DiceRound struct {
	ID     uint `gorm:"primarykey"`
	UserID uint `gorm:"index"`

	DiceAmount  int64 `json:"dice_amount"`
	TotalPoints int64 `json:"total_points"`

	PromotionCode   string `gorm:"size:16;index" json:"promotion_code"`
	IsPromotionUser bool   `json:"is_promotion_user"`

	// Chips is the wager after clamping; DeductChips/IncreaseChips are the
	// two legs of the balance change and TotalChips the balance snapshot
	// after the mutation. The snapshot is audit data, not authoritative.
	Chips         int64           `json:"chips"`
	DeductChips   decimal.Decimal `gorm:"type:numeric(20,2)" json:"deduct_chips"`
	IncreaseChips decimal.Decimal `gorm:"type:numeric(20,2)" json:"increase_chips"`
	TotalChips    decimal.Decimal `gorm:"type:numeric(20,2)" json:"total_chips"`

	ParentUserID *uint `json:"parent_user_id"`
	ChildUserID  *uint `json:"child_user_id"`

	CreatedAt time.Time
}
