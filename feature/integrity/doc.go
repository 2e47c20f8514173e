// Package integrity provides health checks for the tracker's infrastructure.
//
// # Checks Provided
//
//   - Storage: Checks that the snapshot bucket exists and lists the sources with no archived snapshot yet.
//   - Schema: Validates that the ipo_stocks and ipo_sync_runs tables match the gorm models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/schema : Runs the schema check.
package integrity
