// Package promotion keeps the promotion-code registry: a projection
// over the dice_rounds audit table keyed by promotion code, plus the
// code generator.
//
// A code moves through three stages: generated (the parent's round row
// exists, no links), linked (validate stamped parent_user_id on the
// generator row), and consumed (a child round row exists for the code).
package promotion

import (
	"errors"

	"chubgame/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("promotion: code not found")

// ErrAlreadyLinked is returned when a conditional link update matched
// no rows, meaning a concurrent validate got there first.
var ErrAlreadyLinked = errors.New("promotion: code already linked")

type Registry interface {
	// FindGenerator returns the round row that created the code.
	FindGenerator(code string) (*models.DiceRound, error)
	// IsUsed reports whether any row for the code carries a link.
	IsUsed(code string) (bool, error)
	// IsConsumed reports whether a child has already settled the code.
	IsConsumed(code string) (bool, error)
	// LinkParent stamps parentUserID on the generator row, guarded by
	// parent_user_id IS NULL so concurrent validators cannot both win.
	LinkParent(code string, parentUserID uint) error
	// Append writes one settled round row.
	Append(round *models.DiceRound) error
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindGenerator(code string) (*models.DiceRound, error) {
	var round models.DiceRound
	err := s.db.Where("promotion_code = ? AND is_promotion_user = true", code).
		Order("id").First(&round).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &round, nil
}

func (s *Store) IsUsed(code string) (bool, error) {
	var count int64
	err := s.db.Model(&models.DiceRound{}).
		Where("promotion_code = ? AND (parent_user_id IS NOT NULL OR child_user_id IS NOT NULL)", code).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) IsConsumed(code string) (bool, error) {
	var count int64
	err := s.db.Model(&models.DiceRound{}).
		Where("promotion_code = ? AND child_user_id IS NOT NULL", code).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) LinkParent(code string, parentUserID uint) error {
	res := s.db.Model(&models.DiceRound{}).
		Where("promotion_code = ? AND is_promotion_user = true AND parent_user_id IS NULL", code).
		Update("parent_user_id", parentUserID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyLinked
	}
	return nil
}

func (s *Store) Append(round *models.DiceRound) error {
	return s.db.Create(round).Error
}
