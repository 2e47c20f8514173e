package ipo

import (
	"ipo-tracker/feature/ipo/sources/finnhub"
	"ipo-tracker/feature/ipo/sources/hkex"
)

// Config holds configuration for the IPO feature.
type Config struct {
	// Finnhub configures the US calendar source.
	Finnhub finnhub.Config `mapstructure:"finnhub"`
	// HKEX configures the Hong Kong listings source.
	HKEX hkex.Config `mapstructure:"hkex"`
	// Sync configures the orchestrator.
	Sync SyncConfig `mapstructure:"sync"`
}

// SyncConfig holds orchestrator settings.
type SyncConfig struct {
	// MaxConcurrent caps how many sources sync at the same time.
	MaxConcurrent int `mapstructure:"max_concurrent" default:"2"`
	// FetchTimeoutSeconds bounds one source fetch, pagination included.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" default:"45"`
	// IntervalMinutes schedules SyncAll when positive.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"0"`
	// StatusCacheSeconds is the lifetime of the cached status report. Zero disables caching.
	StatusCacheSeconds int `mapstructure:"status_cache_seconds" default:"30"`
	// ClassifySectors fills missing sectors from company name and description.
	ClassifySectors bool `mapstructure:"classify_sectors" default:"true"`
}
