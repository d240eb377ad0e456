package flowstate

// Listener receives lifecycle notifications around every transition.
//
// For a transition from A to B the machine calls, in order:
//
//	BeforeEveryTransition(A, B)
//	LeavingState(A)
//	EnteringState(B)
//	TransitioningFrom(A, B)
//	  -- current state becomes B, B is appended to the flow --
//	AfterTransitioningFrom(A, B)
//	AfterLeavingState(A)
//	AfterEnteringState(B)
//	AfterEveryTransition(A, B)
//
// The first hook returning an error stops the sequence and the error is
// returned from Machine.Transition as is. An error from an After hook is
// returned after the state has already changed.
//
// Embed NopListener to implement only the hooks you need.
type Listener interface {
	BeforeEveryTransition(from, to StateID) error
	LeavingState(state StateID) error
	EnteringState(state StateID) error
	TransitioningFrom(from, to StateID) error

	AfterTransitioningFrom(from, to StateID) error
	AfterLeavingState(state StateID) error
	AfterEnteringState(state StateID) error
	AfterEveryTransition(from, to StateID) error
}

// NopListener implements every Listener hook as a no-op
type NopListener struct{}

var _ Listener = NopListener{}

// BeforeEveryTransition does nothing
func (NopListener) BeforeEveryTransition(from, to StateID) error {
	return nil
}

// LeavingState does nothing
func (NopListener) LeavingState(state StateID) error {
	return nil
}

// EnteringState does nothing
func (NopListener) EnteringState(state StateID) error {
	return nil
}

// TransitioningFrom does nothing
func (NopListener) TransitioningFrom(from, to StateID) error {
	return nil
}

// AfterTransitioningFrom does nothing
func (NopListener) AfterTransitioningFrom(from, to StateID) error {
	return nil
}

// AfterLeavingState does nothing
func (NopListener) AfterLeavingState(state StateID) error {
	return nil
}

// AfterEnteringState does nothing
func (NopListener) AfterEnteringState(state StateID) error {
	return nil
}

// AfterEveryTransition does nothing
func (NopListener) AfterEveryTransition(from, to StateID) error {
	return nil
}

// Listeners combines several listeners into one. Each hook is delivered to
// the members in order and stops at the first error. Nil members, including
// a nil *Hooks, are skipped.
func Listeners(ls ...Listener) Listener {
	members := make(multiListener, 0, len(ls))
	for _, l := range ls {
		if !isNilListener(l) {
			members = append(members, l)
		}
	}
	if len(members) == 1 {
		return members[0]
	}
	return members
}

// isNilListener reports a nil interface or a nil pointer of a listener type
// declared in this package
func isNilListener(l Listener) bool {
	switch v := l.(type) {
	case nil:
		return true
	case *Hooks:
		return v == nil
	case multiListener:
		return v == nil
	default:
		return false
	}
}

type multiListener []Listener

func (ml multiListener) each(fn func(Listener) error) error {
	for _, l := range ml {
		if err := fn(l); err != nil {
			return err
		}
	}
	return nil
}

func (ml multiListener) BeforeEveryTransition(from, to StateID) error {
	return ml.each(func(l Listener) error { return l.BeforeEveryTransition(from, to) })
}

func (ml multiListener) LeavingState(state StateID) error {
	return ml.each(func(l Listener) error { return l.LeavingState(state) })
}

func (ml multiListener) EnteringState(state StateID) error {
	return ml.each(func(l Listener) error { return l.EnteringState(state) })
}

func (ml multiListener) TransitioningFrom(from, to StateID) error {
	return ml.each(func(l Listener) error { return l.TransitioningFrom(from, to) })
}

func (ml multiListener) AfterTransitioningFrom(from, to StateID) error {
	return ml.each(func(l Listener) error { return l.AfterTransitioningFrom(from, to) })
}

func (ml multiListener) AfterLeavingState(state StateID) error {
	return ml.each(func(l Listener) error { return l.AfterLeavingState(state) })
}

func (ml multiListener) AfterEnteringState(state StateID) error {
	return ml.each(func(l Listener) error { return l.AfterEnteringState(state) })
}

func (ml multiListener) AfterEveryTransition(from, to StateID) error {
	return ml.each(func(l Listener) error { return l.AfterEveryTransition(from, to) })
}
