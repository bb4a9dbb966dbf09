package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after merging all sources.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing listen address or a non-positive upload limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
