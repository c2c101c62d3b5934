package reforge

// Economy transaction reasons
const (
	ReasonCharge = "reforge"
	ReasonRefund = "reforge refund"
)

// Refusal labels for requests rejected during validation
const (
	RefusalNoItem             = "no_item"
	RefusalNotReforgeable     = "not_reforgeable"
	RefusalMaxLevel           = "max_level"
	RefusalLevelNotConfigured = "level_not_configured"
	RefusalInProgress         = "attempt_in_progress"
)

// MinIncomingDamage is the floor applied when armor reduces a hit
const MinIncomingDamage = 1.0

// Error messages
const (
	ErrMsgSlotFmt         = "slot %d"
	ErrMsgItemFmt         = "%s"
	ErrMsgLevelFmt        = "%s at level %d of %d"
	ErrMsgTargetFmt       = "target level %d"
	ErrMsgInvalidPlayer   = "player id is required"
	ErrMsgMaterialsFailed = "failed to check materials: %w"
	ErrMsgFindSlotsFailed = "failed to list reforgeable slots: %w"
)

// Log messages
const (
	LogMsgAttemptStarted     = "Reforge attempt started"
	LogMsgAttemptBusy        = "Reforge attempt already in progress, ignoring"
	LogMsgAttemptRefused     = "Reforge attempt refused"
	LogMsgReadItemFailed     = "Failed to read item, treating slot as empty"
	LogMsgEconomyFailOpen    = "No economy provider available, skipping cost"
	LogMsgBalanceCheckFailed = "Failed to check balance"
	LogMsgWithdrawFailed     = "Failed to withdraw reforge cost"
	LogMsgConsumeFailed      = "Failed to consume materials"
	LogMsgRoll               = "Reforge roll"
	LogMsgAttemptResolved    = "Reforge attempt resolved"
	LogMsgCostRefunded       = "Reforge cost refunded"
	LogMsgRefundFailed       = "Failed to refund reforge cost"
	LogMsgPersistFailed      = "Failed to persist reforge level"
	LogMsgWriteItemFailed    = "Failed to write item back"
	LogMsgDestroyFailed      = "Failed to destroy item"
	LogMsgGrantFailed        = "Failed to grant refund materials"
	LogMsgPreviewBalanceFail = "Failed to read balance for preview"
)
