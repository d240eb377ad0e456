package flowstate

// State defines a state declared on a Definition together with its callbacks
type State struct {
	ID StateID

	OnLeaving     []HookFunc
	OnEntering    []HookFunc
	AfterLeaving  []HookFunc
	AfterEntering []HookFunc
}

// StateOption is a functional option for configuring a State
type StateOption func(*State)

// WithOnEntering runs fn before the machine enters the state
func WithOnEntering(fn HookFunc) StateOption {
	return func(s *State) {
		s.OnEntering = append(s.OnEntering, fn)
	}
}

// WithOnLeaving runs fn before the machine leaves the state
func WithOnLeaving(fn HookFunc) StateOption {
	return func(s *State) {
		s.OnLeaving = append(s.OnLeaving, fn)
	}
}

// WithAfterEntering runs fn once the machine is in the state
func WithAfterEntering(fn HookFunc) StateOption {
	return func(s *State) {
		s.AfterEntering = append(s.AfterEntering, fn)
	}
}

// WithAfterLeaving runs fn once the machine has left the state
func WithAfterLeaving(fn HookFunc) StateOption {
	return func(s *State) {
		s.AfterLeaving = append(s.AfterLeaving, fn)
	}
}

func (s *State) register(h *Hooks) {
	for _, fn := range s.OnLeaving {
		h.OnLeaving(s.ID, fn)
	}
	for _, fn := range s.OnEntering {
		h.OnEntering(s.ID, fn)
	}
	for _, fn := range s.AfterLeaving {
		h.OnAfterLeaving(s.ID, fn)
	}
	for _, fn := range s.AfterEntering {
		h.OnAfterEntering(s.ID, fn)
	}
}

func (s *State) hasHooks() bool {
	return len(s.OnLeaving)+len(s.OnEntering)+len(s.AfterLeaving)+len(s.AfterEntering) > 0
}
