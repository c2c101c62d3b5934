package config

// Store backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// EnvironmentDev enables source locations in log lines
const EnvironmentDev = "dev"

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// Example values shipped in .env.example
const (
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
	ExampleDBPassword = "change_this_secure_password"
)

// Error messages
const (
	ErrMsgParseEnv         = "failed to parse environment: %w"
	ErrMsgAPIKeyRequired   = "API_KEY environment variable must be set for security"
	ErrMsgUnknownBackend   = "unknown STORE_BACKEND %q (want file, postgres or sqlite)"
	ErrMsgSchemaMismatch   = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgInvalidPort      = "PORT must be between 1 and 65535, got %d"
	ErrMsgInvalidCacheSize = "LEVEL_CACHE_SIZE must not be negative, got %d"
	ErrMsgInvalidInterval  = "CONFIG_WATCH_INTERVAL must not be negative, got %s"
)

// Warning messages
const (
	WarnMsgExampleAPIKey     = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgExampleDBPassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgUnprotectedDB     = "STORE_BACKEND is postgres but DB_PASSWORD is empty"
)
