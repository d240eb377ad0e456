// Package flowstate provides a small finite-state machine meant to be
// embedded in other types.
//
// A Machine starts in an initial state and only moves along transitions that
// were explicitly permitted. Every move is recorded in the flow, and an
// optional Listener is notified before and after the state changes:
//
//	m := flowstate.New("started").
//	    PermitStatesAndTransitions(
//	        flowstate.From("started").To("running"),
//	        flowstate.From("running").To("stopped"),
//	    )
//
//	prev, err := m.Transition("running") // prev == "started"
//
// Unknown states yield an *UnknownStateError, moves that were not permitted an
// *InvalidFlowError. A Machine has no internal locking.
package flowstate
