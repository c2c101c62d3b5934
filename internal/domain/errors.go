package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound          = "item not found"
	ErrMsgNotReforgeable        = "item is not reforgeable"
	ErrMsgMaxLevel              = "item is already at max level"
	ErrMsgLevelNotConfigured    = "level is not configured"
	ErrMsgAttemptInProgress     = "a reforge is already in progress"
	ErrMsgSlotOutOfRange        = "slot out of range"
	ErrMsgInventoryFull         = "inventory is full"
	ErrMsgInsufficientMaterials = "insufficient materials"

	// Economy errors
	ErrMsgInsufficientFunds  = "insufficient funds"
	ErrMsgEconomyUnavailable = "economy is unavailable"
	ErrMsgProviderNotFound   = "economy provider not found"
	ErrMsgInvalidAmount      = "amount must be positive"

	// Config errors
	ErrMsgInvalidConfig       = "invalid configuration"
	ErrMsgUnsupportedLanguage = "unsupported language"
	ErrMsgUnsupportedFormat   = "unsupported config format"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound          = errors.New(ErrMsgItemNotFound)
	ErrNotReforgeable        = errors.New(ErrMsgNotReforgeable)
	ErrMaxLevel              = errors.New(ErrMsgMaxLevel)
	ErrLevelNotConfigured    = errors.New(ErrMsgLevelNotConfigured)
	ErrAttemptInProgress     = errors.New(ErrMsgAttemptInProgress)
	ErrSlotOutOfRange        = errors.New(ErrMsgSlotOutOfRange)
	ErrInventoryFull         = errors.New(ErrMsgInventoryFull)
	ErrInsufficientMaterials = errors.New(ErrMsgInsufficientMaterials)

	// Economy errors
	ErrInsufficientFunds  = errors.New(ErrMsgInsufficientFunds)
	ErrEconomyUnavailable = errors.New(ErrMsgEconomyUnavailable)
	ErrProviderNotFound   = errors.New(ErrMsgProviderNotFound)
	ErrInvalidAmount      = errors.New(ErrMsgInvalidAmount)

	// Config errors
	ErrInvalidConfig       = errors.New(ErrMsgInvalidConfig)
	ErrUnsupportedLanguage = errors.New(ErrMsgUnsupportedLanguage)
	ErrUnsupportedFormat   = errors.New(ErrMsgUnsupportedFormat)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
