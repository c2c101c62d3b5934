package eligibility

// Display name rules
const (
	WeaponPrefix  = "Weapon_"
	ArmorPrefix   = "Armor_"
	NameSeparator = "_"
	NameSpace     = " "
)

// Log messages
const (
	LogMsgLevelDiverged   = "Item level tag disagrees with level store, using tag"
	LogMsgStoreReadFailed = "Failed to read level store, treating level as 0"
	LogMsgSlotReadFailed  = "Failed to read inventory slot, skipping"
)

// Error messages
const (
	ErrMsgCapacityFailed = "failed to read inventory capacity: %w"
)
