package rng

import "fmt"

// RangeError reports a construction argument outside its permitted range.
// Callers inspect it with errors.As instead of matching message text.
type RangeError struct {
	Arg    string      // Name of the offending argument, e.g. "high"
	Value  interface{} // Value that was supplied
	Bound  interface{} // Limit the value was checked against, if any
	Reason string      // Relation that failed, e.g. "must be greater than"
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if e.Bound == nil {
		return fmt.Sprintf("rng: argument %s (%v) %s", e.Arg, e.Value, e.Reason)
	}
	return fmt.Sprintf("rng: argument %s (%v) %s %v", e.Arg, e.Value, e.Reason, e.Bound)
}
