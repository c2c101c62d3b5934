package handler

// Generic HTTP error messages for client responses.
// These never carry internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidPlayerID       = "Invalid player_id"
	ErrMsgInvalidSlot           = "Invalid slot"
	ErrMsgInvalidLevel          = "Invalid level"
	ErrMsgInvalidIndex          = "Invalid index"
	ErrMsgUnsupportedLanguage   = "Unsupported language"
	ErrMsgInvalidPatternList    = "Pattern list must be weapons, armor or exclusions"
	ErrMsgGenericServerError    = "Something went wrong"

	ErrMsgAttemptFailed      = "Failed to reforge item"
	ErrMsgPreviewFailed      = "Failed to preview reforge"
	ErrMsgListSlotsFailed    = "Failed to list reforgeable slots"
	ErrMsgReloadConfigFailed = "Failed to reload configuration"
	ErrMsgUpdateConfigFailed = "Failed to update configuration"
	ErrMsgSetSlotFailed      = "Failed to set inventory slot"
	ErrMsgDepositFailed      = "Failed to deposit coins"
)

// Health response values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreFailed    = "level store unreachable"
)

// Query, path and validation names
const (
	ParamPlayerID = "player_id"
	ParamSlot     = "slot"
	ParamLang     = "lang"
	ParamLevel    = "level"
	ParamList     = "list"
	ParamItem     = "item"
	ParamIndex    = "index"

	HeaderAcceptLanguage = "Accept-Language"

	ValidationTagItemID      = "item_id"
	ValidationTagPatternList = "pattern_list"
)

// Log messages
const (
	LogMsgAttemptResolved = "Reforge attempt resolved"
	LogMsgAttemptRefused  = "Reforge attempt refused"
	LogMsgConfigReloaded  = "Reforge config reloaded via admin API"
	LogMsgConfigUpdated   = "Reforge config updated via admin API"
	LogMsgSlotSet         = "Inventory slot set via admin API"
	LogMsgDeposit         = "Coins deposited via admin API"
	LogMsgReadinessFailed = "Readiness check failed"
)

// DepositReason tags admin deposits in the economy log
const DepositReason = "admin deposit"
