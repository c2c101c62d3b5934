package i18n

// ==================== Locales ====================

const (
	LocaleEnglish = "en"
	LocaleRussian = "ru"
	LocaleGlob    = "locales/*.yaml"
)

// ==================== Message Keys ====================

// Refusals
const (
	KeyNoItem                = "reforge.no_item"
	KeyNotReforgeable        = "reforge.not_reforgeable"
	KeyMaxLevel              = "reforge.max_level"
	KeyLevelNotConfigured    = "reforge.level_not_configured"
	KeyInsufficientFunds     = "reforge.insufficient_funds"
	KeyInsufficientMaterials = "reforge.insufficient_materials"
	KeyAttemptInProgress     = "reforge.in_progress"
	KeyUnavailable           = "reforge.unavailable"
)

// Outcomes
const (
	KeySuccess          = "reforge.success"
	KeyFailure          = "reforge.failure"
	KeyFailureReturned  = "reforge.failure_returned"
	KeyFailureProtected = "reforge.failure_protected"
	KeyMaterialEntry    = "reforge.material_entry"
)

// Admin feedback
const (
	KeyReloadSuccess = "admin.reload_success"
	KeyReloadFailed  = "admin.reload_failed"
	KeySaved         = "admin.saved"
)

// ==================== Formatting ====================

const MaterialListSeparator = ", "

// ==================== Error Messages ====================

const (
	ErrMsgGlobFailed      = "glob locale catalogs: %w"
	ErrMsgNoCatalogs      = "no locale catalogs found"
	ErrMsgReadFailed      = "read catalog %s: %w"
	ErrMsgParseFailed     = "parse catalog %s: %w"
	ErrMsgLocaleRequired  = "catalog %s: locale is required"
	ErrMsgLocaleMismatch  = "catalog %s: locale %q must match file name"
	ErrMsgBadLocale       = "catalog %s: parse locale %q: %w"
	ErrMsgDuplicateLocale = "catalog %s: locale %q already loaded"
	ErrMsgBaseMissing     = "base locale %s is not defined"
	ErrMsgSetMessage      = "catalog %s: set %q: %w"
)
