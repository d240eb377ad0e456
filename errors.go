package flowstate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownState matches every *UnknownStateError via errors.Is.
	ErrUnknownState = errors.New("unknown state")

	// ErrInvalidFlow matches every *InvalidFlowError via errors.Is.
	ErrInvalidFlow = errors.New("invalid flow")
)

// UnknownStateError reports a state that was never permitted.
type UnknownStateError struct {
	State StateID
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %q", e.State)
}

func (e *UnknownStateError) Is(target error) bool {
	return target == ErrUnknownState
}

// InvalidFlowError reports a transition that is not permitted from the
// current state, or a failed Expect. Flow is only set for transitions.
type InvalidFlowError struct {
	Current StateID
	Target  StateID
	Flow    []StateID

	expectation bool
}

func (e *InvalidFlowError) Error() string {
	if e.expectation {
		return fmt.Sprintf("Must be in %s state, but was in %s", e.Target, e.Current)
	}

	flow := make([]string, len(e.Flow))
	for i, s := range e.Flow {
		flow[i] = string(s)
	}
	return fmt.Sprintf("Cannot transition from %s to %s, flow so far: %s",
		e.Current, e.Target, strings.Join(flow, " -> "))
}

func (e *InvalidFlowError) Is(target error) bool {
	return target == ErrInvalidFlow
}

func newExpectationError(current, expected StateID) *InvalidFlowError {
	return &InvalidFlowError{
		Current:     current,
		Target:      expected,
		expectation: true,
	}
}

// IsUnknownStateError checks if err wraps an *UnknownStateError
func IsUnknownStateError(err error) bool {
	var e *UnknownStateError
	return errors.As(err, &e)
}

// IsInvalidFlowError checks if err wraps an *InvalidFlowError
func IsInvalidFlowError(err error) bool {
	var e *InvalidFlowError
	return errors.As(err, &e)
}
