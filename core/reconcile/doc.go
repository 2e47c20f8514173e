// Package reconcile provides the generic add/update/skip engine used to merge
// freshly fetched candidate records into the persisted store.
//
// # Architecture
//
// The engine is model agnostic. An Adapter supplies the model-specific parts:
// the natural dedup key, required-field validation, point lookup, creation,
// field comparison over a fixed allow-list, and a single-write overwrite.
//
// # Semantics
//
//   - No stored entity for the key: create it, outcome "added".
//   - Stored entity with any allow-listed field differing: overwrite the whole
//     allow-listed set in one write, outcome "updated".
//   - Stored entity identical on every allow-listed field: no write, outcome "skipped".
//
// Lookup and write errors are returned to the caller, which records them per
// candidate. The read-then-write is not atomic across concurrent callers; callers
// serialize runs that may touch the same keys.
//
// # Usage Example
//
//	engine := reconcile.NewEngine[models.CanonicalStockRecord, models.Stock](adapter)
//	res, err := engine.Upsert(ctx, candidate)
package reconcile
