package reconcile

import (
	"context"
	"fmt"
)

// Engine decides add, update or skip for each candidate against the store.
type Engine[C any, E any] struct {
	adapter Adapter[C, E]
}

// NewEngine creates an engine bound to a model adapter.
func NewEngine[C any, E any](adapter Adapter[C, E]) *Engine[C, E] {
	return &Engine[C, E]{adapter: adapter}
}

// Upsert reconciles a single candidate.
//
// A missing entity is created. An existing entity is overwritten on all
// allow-listed fields when any of them differs, and left untouched otherwise.
// Store errors are returned as-is so the caller can record them per candidate.
func (e *Engine[C, E]) Upsert(ctx context.Context, candidate C) (Result, error) {
	key := e.adapter.Key(candidate)

	if err := e.adapter.Validate(candidate); err != nil {
		return Result{Key: key}, err
	}

	existing, err := e.adapter.Lookup(ctx, candidate)
	if err != nil {
		return Result{Key: key}, fmt.Errorf("lookup %s %s: %w", e.adapter.Name(), key, err)
	}

	if existing == nil {
		if err := e.adapter.Create(ctx, candidate); err != nil {
			return Result{Key: key}, fmt.Errorf("create %s %s: %w", e.adapter.Name(), key, err)
		}
		return Result{Outcome: OutcomeAdded, Key: key}, nil
	}

	mismatch := e.adapter.CompareFields(existing, candidate)
	if len(mismatch) == 0 {
		return Result{Outcome: OutcomeSkipped, Key: key}, nil
	}

	if err := e.adapter.Overwrite(ctx, existing, candidate); err != nil {
		return Result{Key: key, Mismatch: mismatch}, fmt.Errorf("update %s %s: %w", e.adapter.Name(), key, err)
	}

	return Result{Outcome: OutcomeUpdated, Key: key, Mismatch: mismatch}, nil
}
