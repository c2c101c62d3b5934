package levelstore

import "time"

// File store defaults
const (
	DefaultFileName  = "reforge_data.json"
	FilePermissions  = 0o644
	DirPermissions   = 0o755
	CacheKeySep      = "|"
	DefaultCacheSize = 4096
	DefaultCacheTTL  = 10 * time.Minute
)

// Persist operation labels for metrics
const (
	OpLoad    = "load"
	OpPersist = "persist"
)

// Error messages
const (
	ErrMsgReadStoreFailed   = "failed to read level store: %w"
	ErrMsgEncodeStoreFailed = "failed to encode level store: %w"
	ErrMsgWriteStoreFailed  = "failed to write level store: %w"
	ErrMsgCreateStoreDir    = "failed to create level store directory: %w"
	ErrMsgNegativeLevelFmt  = "level must not be negative, got %d"
)

// Log messages
const (
	LogMsgStoreLoaded          = "Level store loaded"
	LogMsgStoreMissing         = "Level store file not found, starting empty"
	LogMsgStoreMalformed       = "Level store document is malformed, starting empty"
	LogMsgSkippedPlayerKey     = "Skipping level store entry with invalid player id"
	LogMsgSkippedPlayerRecords = "Skipping level store entry with malformed records"
	LogMsgSkippedLevel         = "Skipping level store record with invalid level"
	LogMsgPersistFailed        = "Failed to persist level store"
)
