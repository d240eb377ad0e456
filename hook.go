package flowstate

import "fmt"

// Hook identifies one step of the listener protocol
type Hook int

const (
	// HookBeforeEvery runs BeforeEveryTransition
	HookBeforeEvery Hook = iota
	// HookLeaving runs LeavingState for the source state
	HookLeaving
	// HookEntering runs EnteringState for the target state
	HookEntering
	// HookTransitioning runs TransitioningFrom for the pair
	HookTransitioning
	// HookAfterTransitioning runs AfterTransitioningFrom for the pair
	HookAfterTransitioning
	// HookAfterLeaving runs AfterLeavingState for the source state
	HookAfterLeaving
	// HookAfterEntering runs AfterEnteringState for the target state
	HookAfterEntering
	// HookAfterEvery runs AfterEveryTransition
	HookAfterEvery
)

// Dispatch order around the state mutation
var (
	beforeHooks = [...]Hook{HookBeforeEvery, HookLeaving, HookEntering, HookTransitioning}
	afterHooks  = [...]Hook{HookAfterTransitioning, HookAfterLeaving, HookAfterEntering, HookAfterEvery}
)

func (h Hook) String() string {
	switch h {
	case HookBeforeEvery:
		return "before_every"
	case HookLeaving:
		return "leaving"
	case HookEntering:
		return "entering"
	case HookTransitioning:
		return "transitioning"
	case HookAfterTransitioning:
		return "after_transitioning"
	case HookAfterLeaving:
		return "after_leaving"
	case HookAfterEntering:
		return "after_entering"
	case HookAfterEvery:
		return "after_every"
	default:
		return fmt.Sprintf("hook(%d)", int(h))
	}
}

// Name renders the hook name for a concrete transition,
// e.g. "leaving_started_state" or "transitioning_from_started_to_running".
func (h Hook) Name(from, to StateID) string {
	switch h {
	case HookBeforeEvery:
		return "before_every_transition"
	case HookLeaving:
		return fmt.Sprintf("leaving_%s_state", from)
	case HookEntering:
		return fmt.Sprintf("entering_%s_state", to)
	case HookTransitioning:
		return fmt.Sprintf("transitioning_from_%s_to_%s", from, to)
	case HookAfterTransitioning:
		return fmt.Sprintf("after_transitioning_from_%s_to_%s_state", from, to)
	case HookAfterLeaving:
		return fmt.Sprintf("after_leaving_%s_state", from)
	case HookAfterEntering:
		return fmt.Sprintf("after_entering_%s_state", to)
	case HookAfterEvery:
		return "after_every_transition"
	default:
		return h.String()
	}
}

// invoke calls the listener method selected by h
func (h Hook) invoke(l Listener, from, to StateID) error {
	switch h {
	case HookBeforeEvery:
		return l.BeforeEveryTransition(from, to)
	case HookLeaving:
		return l.LeavingState(from)
	case HookEntering:
		return l.EnteringState(to)
	case HookTransitioning:
		return l.TransitioningFrom(from, to)
	case HookAfterTransitioning:
		return l.AfterTransitioningFrom(from, to)
	case HookAfterLeaving:
		return l.AfterLeavingState(from)
	case HookAfterEntering:
		return l.AfterEnteringState(to)
	case HookAfterEvery:
		return l.AfterEveryTransition(from, to)
	default:
		return fmt.Errorf("unknown hook %d", int(h))
	}
}
