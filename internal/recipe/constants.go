package recipe

// Naming conventions used by the heuristic
const (
	WeaponPrefix   = "Weapon_"
	ArmorPrefix    = "Armor_"
	BarPrefix      = "Ingredient_Bar_"
	TokenSeparator = "_"
	MinNameTokens  = 3
	MinRefundCount = 1
)

// DefaultBaseUnits is used when no weapon type or armor slot matches
const DefaultBaseUnits = 12

// Log messages
const (
	LogMsgRecipeConfigured = "Using configured reverse recipe"
	LogMsgRecipeGuessed    = "Guessed reverse recipe"
	LogMsgNoRecipe         = "No reverse recipe for item"
)
