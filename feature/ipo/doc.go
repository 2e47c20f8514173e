// Package ipo is the IPO tracking feature: it syncs upstream IPO feeds into the
// store and serves the result over HTTP.
//
// # Sync
//
// Service.SyncAll runs every registered source concurrently (bounded by
// sync.max_concurrent). For each source the service:
//
//  1. fetches the native records through the source's rate-limited client, bounded
//     by sync.fetch_timeout_seconds,
//  2. archives the raw payload when object storage is enabled,
//  3. walks the records one at a time: pre-filter, transform, classify a missing
//     sector, then reconcile against the store (add, update or skip).
//
// A failing record is recorded as "Error processing <symbol>: <reason>" and the loop
// moves on. A failing fetch marks only that source unsuccessful. Concurrent triggers of
// the same source share one run.
//
// # Routes
//
//	POST /ipo/sync                     sync all sources
//	POST /ipo/sync/:source             sync one source
//	GET  /ipo/sync/status              per-market stats and last runs
//	GET  /ipo/sync/snapshots/:source   archived raw payloads
//	GET  /ipo/stocks                   list stocks (market, status, limit, offset)
//	GET  /ipo/stocks/:market/:symbol   one stock
//
// Successful responses use {success, data, message}; handled failures use
// {success: false, error, details}.
package ipo
