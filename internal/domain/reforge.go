package domain

// Outcome is the result class of one reforge attempt
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomeFailure          Outcome = "failure"
	OutcomeFailureProtected Outcome = "failure_protected"
	OutcomeCannotAttempt    Outcome = "cannot_attempt"
)

// RefusalReason explains a CannotAttempt outcome
type RefusalReason string

const (
	ReasonNone                  RefusalReason = ""
	ReasonInsufficientFunds     RefusalReason = "insufficient_funds"
	ReasonInsufficientMaterials RefusalReason = "insufficient_materials"
)

// AttemptResult describes a resolved attempt
type AttemptResult struct {
	ItemID        string                `json:"item_id"`
	DisplayName   string                `json:"display_name"`
	CurrentLevel  int                   `json:"current_level"`
	TargetLevel   int                   `json:"target_level"`
	SuccessChance float64               `json:"success_chance"`
	TotalCost     float64               `json:"total_cost"`
	WeaponBonus   float64               `json:"weapon_bonus"`
	ArmorBonus    float64               `json:"armor_bonus"`
	Category      Category              `json:"category"`
	Protected     bool                  `json:"protected"`
	Outcome       Outcome               `json:"outcome"`
	Reason        RefusalReason         `json:"reason,omitempty"`
	Roll          float64               `json:"-"`
	Returned      []MaterialRequirement `json:"returned,omitempty"`
}

// MaterialStatus pairs a requirement with how much the player owns
type MaterialStatus struct {
	MaterialRequirement
	Owned int  `json:"owned"`
	Met   bool `json:"met"`
}

// Preview describes the next attempt on an item without touching any resource
type Preview struct {
	ItemID           string           `json:"item_id"`
	DisplayName      string           `json:"display_name"`
	Category         Category         `json:"category"`
	CurrentLevel     int              `json:"current_level"`
	TargetLevel      int              `json:"target_level"`
	MaxLevel         int              `json:"max_level"`
	AtMaxLevel       bool             `json:"at_max_level"`
	SuccessChance    float64          `json:"success_chance"`
	CoinCost         float64          `json:"coin_cost"`
	ProtectionCost   float64          `json:"protection_cost"`
	Materials        []MaterialStatus `json:"materials"`
	HasMaterials     bool             `json:"has_materials"`
	HasCoins         bool             `json:"has_coins"`
	Balance          float64          `json:"balance"`
	FormattedBalance string           `json:"formatted_balance"`
	CurrentBonus     float64          `json:"current_bonus"`
	TargetBonus      float64          `json:"target_bonus"`
}

// ReforgeableSlot is an inventory slot holding a reforgeable item
type ReforgeableSlot struct {
	Slot   int    `json:"slot"`
	ItemID string `json:"item_id"`
	Level  int    `json:"level"`
}
