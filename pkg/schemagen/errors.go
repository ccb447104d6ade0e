package schemagen

import "fmt"

// ConstructionError reports that an inferred schema could not be materialized
// as a valid schema value. It is the only failure category of this package:
// inference is deterministic, so a ConstructionError indicates an
// unrepairable defect in the assembled schema, not a transient condition.
type ConstructionError struct {
	Reason string
	Err    error
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schema construction: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("schema construction: %s", e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
