package reconcile

import "context"

// Adapter defines the interface for model-specific reconciliation logic.
// C is the candidate shape produced by transformers and E is the persisted entity.
type Adapter[C any, E any] interface {
	// Name returns the unique name of this adapter (e.g., "ipo_stock").
	Name() string

	// Key returns the natural dedup key of a candidate, used for logging and results.
	Key(candidate C) string

	// Validate returns an error wrapping ErrMissingField when required fields are absent.
	Validate(candidate C) error

	// Lookup finds the persisted entity matching the candidate's natural key.
	// It returns nil and no error when none exists.
	Lookup(ctx context.Context, candidate C) (*E, error)

	// Create persists a new entity built from the candidate.
	Create(ctx context.Context, candidate C) error

	// CompareFields compares the allow-listed mutable fields and returns a list of
	// mismatch descriptions. An empty list means the entity is up to date.
	CompareFields(existing *E, candidate C) []string

	// Overwrite copies every allow-listed field from the candidate onto the existing
	// entity and persists it in a single write.
	Overwrite(ctx context.Context, existing *E, candidate C) error
}
