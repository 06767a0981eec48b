// Package game holds the settlement engine: the state machine that
// turns a validated wager request into balance mutations and audit
// rounds, for both solo (PvE) and promotion-linked (PvP) games.
package game

import (
	"errors"
	"math/rand"

	"chubgame/config"
	"chubgame/ledger"
	"chubgame/models"
	"chubgame/promotion"

	"github.com/shopspring/decimal"
)

// 0.5% of the pot is withheld from the PvP payout.
var serviceChargeRate = decimal.NewFromFloat(0.005)

type Engine struct {
	cfg      config.GameConfig
	ledger   ledger.Gateway
	accounts ledger.Directory
	registry promotion.Registry
	coin     func() bool
}

func NewEngine(cfg config.GameConfig, gw ledger.Gateway, dir ledger.Directory, reg promotion.Registry) *Engine {
	return &Engine{
		cfg:      cfg,
		ledger:   gw,
		accounts: dir,
		registry: reg,
		coin:     func() bool { return rand.Intn(2) == 1 },
	}
}

type SettleResult struct {
	Message       string
	Balance       decimal.Decimal
	Result        decimal.Decimal
	PromotionCode string
}

type ValidateResult struct {
	ParentUserID     uint
	ParentDiceAmount int64
}

// Settle runs one wager to completion. PvE when no promotion code is
// involved and the caller is not a generator; PvP otherwise.
func (e *Engine) Settle(req *SettleRequest) (*SettleResult, error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	userID, err := e.accounts.ResolveUsername(req.Username)
	if err != nil {
		return nil, e.lift(err)
	}

	isPromotionUser := *req.IsPromotionUser
	if req.PromotionCode == "" && !isPromotionUser {
		return e.settlePvE(req, userID)
	}
	return e.settlePvP(req, userID, isPromotionUser)
}

func (e *Engine) settlePvE(req *SettleRequest, userID uint) (*SettleResult, error) {
	if e.coin() {
		chips := clamp(req.Chips, e.cfg.WinPointsMin, e.cfg.WinPointsMax)
		stake := decimal.NewFromInt(chips)

		balance, err := e.ledger.Credit(userID, stake, e.cfg.AddReference, e.cfg.AddLogEntryPvE)
		if err != nil {
			return nil, e.lift(err)
		}

		round := &models.DiceRound{
			UserID:        userID,
			DiceAmount:    req.DiceAmount,
			TotalPoints:   req.TotalPoints,
			Chips:         chips,
			IncreaseChips: stake,
			TotalChips:    balance,
		}
		if err := e.registry.Append(round); err != nil {
			return nil, e.lift(err)
		}

		return &SettleResult{
			Message: "PvE game processed successfully. User wins.",
			Balance: balance,
			Result:  decimal.NewFromInt(chips * 2),
		}, nil
	}

	chips := clamp(req.Chips, e.cfg.LossPointsMin, e.cfg.LossPointsMax)
	stake := decimal.NewFromInt(chips)

	balance, err := e.ledger.Debit(userID, stake, e.cfg.SubtractReference, e.cfg.SubLogEntryPvE)
	if err != nil {
		return nil, e.lift(err)
	}

	round := &models.DiceRound{
		UserID:      userID,
		DiceAmount:  req.DiceAmount,
		TotalPoints: req.TotalPoints,
		Chips:       chips,
		DeductChips: stake,
		TotalChips:  balance,
	}
	if err := e.registry.Append(round); err != nil {
		return nil, e.lift(err)
	}

	return &SettleResult{
		Message: "PvE game processed successfully. User loses.",
		Balance: balance,
		Result:  decimal.NewFromInt(-chips),
	}, nil
}

func (e *Engine) settlePvP(req *SettleRequest, userID uint, isPromotionUser bool) (*SettleResult, error) {
	code := req.PromotionCode
	if code == "" && isPromotionUser {
		code = promotion.GenerateCode()
	}

	if isPromotionUser {
		return e.settleParent(req, userID, code)
	}
	return e.settleChild(req, userID, code)
}

// settleParent funds the pot: the generator wagers first, the code goes
// out to the client for distribution, and linkage happens later via the
// validate endpoint.
func (e *Engine) settleParent(req *SettleRequest, userID uint, code string) (*SettleResult, error) {
	used, err := e.registry.IsUsed(code)
	if err != nil {
		return nil, e.lift(err)
	}
	if used {
		return nil, ErrPromotionUsed
	}

	balance, err := e.ledger.GetBalance(userID)
	if err != nil {
		return nil, e.lift(err)
	}
	if balance.LessThan(decimal.NewFromInt(req.Chips)) {
		return nil, insufficientBalance("Insufficient balance for parent user", nil)
	}

	chips := clamp(req.Chips, e.cfg.LossPointsMin, e.cfg.LossPointsMax)
	stake := decimal.NewFromInt(chips)

	balance, err = e.ledger.Debit(userID, stake, e.cfg.SubtractReference, e.cfg.SubLogEntryPvP)
	if err != nil {
		return nil, e.lift(err)
	}

	round := &models.DiceRound{
		UserID:          userID,
		DiceAmount:      req.DiceAmount,
		TotalPoints:     req.TotalPoints,
		PromotionCode:   code,
		IsPromotionUser: true,
		Chips:           chips,
		DeductChips:     stake,
		TotalChips:      balance,
	}
	if err := e.registry.Append(round); err != nil {
		return nil, e.lift(err)
	}

	return &SettleResult{
		Message:       "Parent game processed successfully",
		Balance:       balance,
		Result:        decimal.NewFromInt(-chips),
		PromotionCode: code,
	}, nil
}

func (e *Engine) settleChild(req *SettleRequest, userID uint, code string) (*SettleResult, error) {
	consumed, err := e.registry.IsConsumed(code)
	if err != nil {
		return nil, e.lift(err)
	}
	if consumed {
		return nil, ErrPromotionUsed
	}

	generator, err := e.registry.FindGenerator(code)
	if errors.Is(err, promotion.ErrNotFound) {
		return nil, ErrNoParent
	}
	if err != nil {
		return nil, e.lift(err)
	}

	childBalance, err := e.ledger.GetBalance(userID)
	if err != nil {
		return nil, e.lift(err)
	}

	if childBalance.LessThan(decimal.NewFromInt(req.Chips)) {
		// Give the parent back the stake that was debited when the code
		// was generated. The child's balance is untouched.
		refund := decimal.NewFromInt(generator.Chips)
		if _, err := e.ledger.Credit(generator.UserID, refund, e.cfg.AddReference, e.cfg.AddLogEntryRefund); err != nil {
			return nil, e.lift(err)
		}
		ie := insufficientBalance("Child user does not have enough points. Parent refunded.", nil)
		ie.Mutated = true
		return nil, ie
	}

	chips := clamp(req.Chips, e.cfg.LossPointsMin, e.cfg.LossPointsMax)
	stake := decimal.NewFromInt(chips)

	childBalance, err = e.ledger.Debit(userID, stake, e.cfg.SubtractReference, e.cfg.SubLogEntryPvP)
	if err != nil {
		return nil, e.lift(err)
	}

	// Strictly greater wins; an exact tie pays the child.
	winnerID := userID
	if generator.TotalPoints > req.TotalPoints {
		winnerID = generator.UserID
	}

	pot := decimal.NewFromInt(chips + generator.Chips)
	payout := pot.Sub(pot.Mul(serviceChargeRate))

	if _, err := e.ledger.Credit(winnerID, payout, e.cfg.AddReference, e.cfg.AddLogEntryPvP); err != nil {
		return nil, e.lift(err)
	}

	parentBalance, err := e.ledger.GetBalance(generator.UserID)
	if err != nil {
		return nil, e.lift(err)
	}
	childBalance, err = e.ledger.GetBalance(userID)
	if err != nil {
		return nil, e.lift(err)
	}

	parentID := generator.UserID
	childRound := &models.DiceRound{
		UserID:        userID,
		DiceAmount:    req.DiceAmount,
		TotalPoints:   req.TotalPoints,
		PromotionCode: code,
		Chips:         chips,
		DeductChips:   stake,
		IncreaseChips: payout,
		TotalChips:    childBalance,
		ParentUserID:  &parentID,
	}
	parentRound := &models.DiceRound{
		UserID:        generator.UserID,
		DiceAmount:    req.DiceAmount,
		TotalPoints:   req.TotalPoints,
		PromotionCode: code,
		Chips:         generator.Chips,
		IncreaseChips: payout,
		TotalChips:    parentBalance,
		ChildUserID:   &userID,
	}
	if err := e.registry.Append(childRound); err != nil {
		return nil, e.lift(err)
	}
	if err := e.registry.Append(parentRound); err != nil {
		return nil, e.lift(err)
	}

	result := decimal.NewFromInt(-chips)
	if winnerID == userID {
		result = payout
	}

	return &SettleResult{
		Message:       "Game processed successfully",
		Balance:       childBalance,
		Result:        result,
		PromotionCode: code,
	}, nil
}

// ValidatePromotion links a promotion code to its generator on behalf
// of a redeeming child. No balance moves here; the child settles with a
// separate call afterwards.
func (e *Engine) ValidatePromotion(req *ValidateRequest) (*ValidateResult, error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	if _, err := e.accounts.ResolveUsername(req.Username); err != nil {
		return nil, e.lift(err)
	}

	generator, err := e.registry.FindGenerator(req.PromotionCode)
	if errors.Is(err, promotion.ErrNotFound) {
		return nil, ErrInvalidPromotionCode
	}
	if err != nil {
		return nil, e.lift(err)
	}

	used, err := e.registry.IsUsed(req.PromotionCode)
	if err != nil {
		return nil, e.lift(err)
	}
	if used {
		return nil, ErrPromotionCodeUsed
	}

	err = e.registry.LinkParent(req.PromotionCode, generator.UserID)
	if errors.Is(err, promotion.ErrAlreadyLinked) {
		return nil, ErrPromotionCodeUsed
	}
	if err != nil {
		return nil, e.lift(err)
	}

	return &ValidateResult{
		ParentUserID:     generator.UserID,
		ParentDiceAmount: generator.DiceAmount,
	}, nil
}

// CheckBalance reports whether the account can cover the wager.
// Read-only.
func (e *Engine) CheckBalance(req *BalanceRequest) (decimal.Decimal, error) {
	if verr := req.Validate(); verr != nil {
		return decimal.Zero, verr
	}

	userID, err := e.accounts.ResolveUsername(req.Username)
	if err != nil {
		return decimal.Zero, e.lift(err)
	}

	balance, err := e.ledger.GetBalance(userID)
	if err != nil {
		return decimal.Zero, e.lift(err)
	}

	if balance.LessThan(decimal.NewFromInt(req.Chips)) {
		return decimal.Zero, insufficientBalance("Insufficient balance for parent user", map[string]any{
			"balance":         balance.InexactFloat64(),
			"requested_chips": req.Chips,
		})
	}
	return balance, nil
}

// lift maps collaborator failures into the request error taxonomy.
// Anything unrecognized means the ledger or registry is misbehaving and
// is surfaced as unavailable.
func (e *Engine) lift(err error) error {
	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}
	switch {
	case errors.Is(err, ledger.ErrUnknownUser):
		return ErrUnknownUser
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return insufficientBalance("Insufficient balance for current user", nil)
	default:
		return ErrLedgerUnavailable
	}
}

func clamp(chips, min, max int64) int64 {
	if chips < min {
		return min
	}
	if chips > max {
		return max
	}
	return chips
}
