package inventory

// DefaultCapacity is the slot count of a memory inventory
const DefaultCapacity = 36

// Error messages
const (
	ErrMsgSlotFmt         = "slot %d of %d"
	ErrMsgMaterialFmt     = "%s: need %d, have %d"
	ErrMsgReadSlotFailed  = "failed to read slot %d: %w"
	ErrMsgWriteSlotFailed = "failed to write slot %d: %w"
	ErrMsgCapacityFailed  = "failed to read inventory capacity: %w"
	ErrMsgGrantFailedFmt  = "failed to grant %d x %s: %w"
)

// Log messages
const (
	LogMsgMaterialsConsumed = "Materials consumed"
	LogMsgMaterialsGranted  = "Materials granted"
	LogMsgGrantOverflow     = "Inventory full, refund material dropped"
)
