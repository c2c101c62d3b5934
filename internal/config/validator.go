package config

import (
	"errors"
	"fmt"
)

// Validate rejects settings the process cannot start with
func (c *Config) Validate() error {
	if c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaMismatch, ExpectedEnvSchemaVersion, c.EnvSchemaVersion)
	}
	if c.APIKey == "" {
		return errors.New(ErrMsgAPIKeyRequired)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf(ErrMsgInvalidPort, c.Port)
	}

	switch c.StoreBackend {
	case BackendFile, BackendPostgres, BackendSQLite:
	default:
		return fmt.Errorf(ErrMsgUnknownBackend, c.StoreBackend)
	}

	if c.LevelCacheSize < 0 {
		return fmt.Errorf(ErrMsgInvalidCacheSize, c.LevelCacheSize)
	}
	if c.ConfigWatchInterval < 0 {
		return fmt.Errorf(ErrMsgInvalidInterval, c.ConfigWatchInterval)
	}
	return nil
}

// Warnings lists non-fatal issues such as example credentials left in place
func (c *Config) Warnings() []string {
	var warnings []string

	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}
	if c.StoreBackend == BackendPostgres {
		switch c.DBPassword {
		case "":
			warnings = append(warnings, WarnMsgUnprotectedDB)
		case ExampleDBPassword:
			warnings = append(warnings, WarnMsgExampleDBPassword)
		}
	}
	return warnings
}
