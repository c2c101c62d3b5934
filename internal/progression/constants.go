package progression

// ==================== Configuration Files ====================

// Default config locations and supported extensions
const (
	DefaultConfigPath = "config/reforging.json"
	ExtJSON           = ".json"
	ExtYAML           = ".yaml"
	ExtYML            = ".yml"
	FilePermissions   = 0o644
	DirPermissions    = 0o755
)

// ==================== General Defaults ====================

const (
	DefaultLanguage                 = "en"
	DefaultMessagePrefix            = "<dark_gray>[<gold>⚒ Reforge<dark_gray>]"
	DefaultMaxLevel                 = 10
	DefaultFailureReturnRate        = 0.30
	DefaultProtectionEnabled        = true
	DefaultProtectionCostMultiplier = 2.0
)

// Generated level ladder
const (
	DefaultBaseChance      = 0.95
	DefaultChanceStep      = 0.10
	DefaultMinChance       = 0.05
	DefaultWeaponBonusStep = 2.0
	DefaultArmorBonusStep  = 1.5
	DefaultCoinCostStep    = 100.0
	DefaultMaterialStep    = 2
	DefaultMaterialCap     = 20
	DefaultLevelMaterial   = "hytale:Iron_Ingot"
)

// Values used when an admin edit touches a level that is not configured yet
const (
	NewLevelChance      = 0.90
	NewLevelWeaponBonus = 2.0
	NewLevelArmorBonus  = 1.5
	NewLevelCoinCost    = 100.0
)

// Default eligibility patterns
const (
	DefaultWeaponPattern = "Weapon_*"
	DefaultArmorPattern  = "Armor_*"
	NewPatternFallback   = "New_*"
	Wildcard             = "*"
)

// Reverse recipe keys generated for blank admin input
const CustomRecipeKeyPrefix = "Custom_Item_"

// ==================== Admin Clamps ====================

const (
	MinMaxLevel                 = 1
	MaxMaxLevel                 = 20
	MinFailureReturnRate        = 0.0
	MaxFailureReturnRate        = 1.0
	MinProtectionCostMultiplier = 0.5
	MaxProtectionCostMultiplier = 10.0
	MinSuccessChance            = 0.01
	MaxSuccessChance            = 1.0
	MinMaterialCount            = 1
)

// ==================== Error Messages ====================

const (
	ErrMsgReadConfigFailed     = "failed to read config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse config: %w"
	ErrMsgEncodeConfigFailed   = "failed to encode config: %w"
	ErrMsgWriteConfigFailed    = "failed to write config file: %w"
	ErrMsgCreateConfigDir      = "failed to create config directory: %w"
	ErrMsgStatConfigFileFailed = "failed to stat config file: %w"
	ErrMsgLevelOutOfRangeFmt   = "level %d out of range"
	ErrMsgIndexOutOfRangeFmt   = "index %d out of range"
	ErrMsgUnknownPatternList   = "unknown pattern list: %s"
	ErrMsgLastMaterial         = "a level must keep at least one material"
	ErrMsgRecipeNotFoundFmt    = "no reverse recipe for %s"
)

// ==================== Log Messages ====================

const (
	LogMsgConfigCreated      = "Config file not found, wrote defaults"
	LogMsgConfigLoaded       = "Reforge config loaded"
	LogMsgConfigLoadFailed   = "Failed to load reforge config, using defaults"
	LogMsgConfigReloaded     = "Reforge config reloaded"
	LogMsgConfigReloadFailed = "Failed to reload reforge config, keeping previous snapshot"
	LogMsgConfigSaved        = "Reforge config saved"
	LogMsgConfigSaveFailed   = "Failed to save reforge config"
	LogMsgConfigUpdated      = "Reforge config updated"
	LogMsgWatcherStarted     = "Config watcher started"
	LogMsgWatcherStopped     = "Config watcher stopped"
	LogMsgWatcherChangeSeen  = "Config file changed on disk"
	LogMsgSubscriberLagging  = "Config subscriber lagging, replaced pending snapshot"
	LogMsgSnapshotObserved   = "Config snapshot exported"
)

// Reload status labels
const (
	ReloadStatusSuccess = "success"
	ReloadStatusFailure = "failure"
)
