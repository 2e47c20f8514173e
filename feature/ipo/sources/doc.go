// Package sources defines the contract shared by the upstream IPO feeds and the
// transformation helpers they use.
//
// Each feed lives in its own sub-package (finnhub, hkex) and implements Source.
// A fetch returns a Batch of native Records; the sync service pre-filters, transforms
// and reconciles them one at a time.
//
// ParsePrice and InferStatus are pure and tolerate malformed input: they never panic
// and degrade to nil or UPCOMING.
package sources
