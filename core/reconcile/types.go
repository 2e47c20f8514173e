package reconcile

import "errors"

// Outcome is the decision taken for a single candidate.
type Outcome string

const (
	// OutcomeAdded means no stored entity matched and one was created.
	OutcomeAdded Outcome = "added"
	// OutcomeUpdated means a stored entity differed and was overwritten.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkipped means the stored entity already matched the candidate.
	OutcomeSkipped Outcome = "skipped"
)

// ErrMissingField is returned when a candidate lacks a required identity field.
var ErrMissingField = errors.New("missing required field")

// Result is the outcome of reconciling one candidate.
type Result struct {
	// Outcome is the add/update/skip decision.
	Outcome Outcome `json:"outcome"`

	// Key identifies the reconciled entity.
	Key string `json:"key"`

	// Mismatch contains descriptions of the fields that differed.
	// Each string describes a specific mismatch, e.g., "status: stored=UPCOMING candidate=LISTED".
	Mismatch []string `json:"mismatch,omitempty"`
}
