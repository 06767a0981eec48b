package game

// Request shapes match the field names the dice client sends. Zero
// values for required numeric fields count as missing, so validation
// reports the first absent field rather than processing a no-op wager.

type SettleRequest struct {
	DiceAmount      int64  `json:"diceAmount"`
	TotalPoints     int64  `json:"totalPoints"`
	PromotionCode   string `json:"promotionCode"`
	IsPromotionUser *bool  `json:"isPromotionUser"`
	Username        string `json:"username"`
	Chips           int64  `json:"chips"`
}

func (r *SettleRequest) Validate() *Error {
	const msg = "All parameters are required."
	switch {
	case r.DiceAmount <= 0:
		return missingParameter(msg, "diceAmount")
	case r.TotalPoints == 0:
		return missingParameter(msg, "totalPoints")
	case r.IsPromotionUser == nil:
		return missingParameter(msg, "isPromotionUser")
	case r.Username == "":
		return missingParameter(msg, "username")
	case r.Chips <= 0:
		return missingParameter(msg, "chips")
	}
	return nil
}

type ValidateRequest struct {
	PromotionCode string `json:"promotionCode"`
	Username      string `json:"username"`
}

func (r *ValidateRequest) Validate() *Error {
	const msg = "Promotion code and username are required."
	switch {
	case r.PromotionCode == "":
		return missingParameter(msg, "promotionCode")
	case r.Username == "":
		return missingParameter(msg, "username")
	}
	return nil
}

type BalanceRequest struct {
	Username string `json:"username"`
	Chips    int64  `json:"chips"`
}

func (r *BalanceRequest) Validate() *Error {
	const msg = "Username and chips are required."
	switch {
	case r.Username == "":
		return missingParameter(msg, "username")
	case r.Chips <= 0:
		return missingParameter(msg, "chips")
	}
	return nil
}
