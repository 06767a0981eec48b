package game

// Error is a terminal request failure with a machine-readable status
// tag and the HTTP status it maps to. Mutated marks the one case where
// state changed before the failure (the parent refund on a child's
// insufficient balance); handlers must still commit those.
type Error struct {
	Code    int
	Tag     string
	Message string
	Extra   map[string]any
	Mutated bool
}

func (e *Error) Error() string { return e.Message }

var (
	ErrUnknownUser = &Error{Code: 404, Tag: "no_user", Message: "Invalid username"}

	ErrInvalidPromotionCode = &Error{Code: 400, Tag: "invalid_promotion_code", Message: "Invalid promotion code"}

	// promotion_code_used is the validate endpoint's tag, promotion_used
	// the settlement endpoint's. Same condition, different wire tags.
	ErrPromotionCodeUsed = &Error{Code: 400, Tag: "promotion_code_used", Message: "This promotion code has already been used"}
	ErrPromotionUsed     = &Error{Code: 400, Tag: "promotion_used", Message: "This promotion code has already been used"}

	ErrNoParent = &Error{Code: 404, Tag: "no_parent", Message: "Invalid promotion code or parent not found"}

	ErrLedgerUnavailable = &Error{Code: 503, Tag: "ledger_unavailable", Message: "Points ledger is not available"}
)

func missingParameter(message, field string) *Error {
	return &Error{
		Code:    400,
		Tag:     "missing_parameters",
		Message: message,
		Extra:   map[string]any{"missing": field},
	}
}

func insufficientBalance(message string, extra map[string]any) *Error {
	return &Error{Code: 400, Tag: "insufficient_balance", Message: message, Extra: extra}
}
