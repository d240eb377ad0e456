package flowstate

// Hooks is a Listener backed by callbacks registered per state, per
// transition or for every transition. Callbacks for the same key run in
// registration order.
type Hooks struct {
	normalize Normalizer

	beforeEvery []PairHookFunc
	afterEvery  []PairHookFunc

	leaving       map[StateID][]HookFunc
	entering      map[StateID][]HookFunc
	afterLeaving  map[StateID][]HookFunc
	afterEntering map[StateID][]HookFunc

	transitioning      map[Transition][]HookFunc
	afterTransitioning map[Transition][]HookFunc
}

var _ Listener = (*Hooks)(nil)

// NewHooks creates an empty hook set. Keys are canonicalized with
// normalize, or Canonical when nil; use the machine's normalizer.
func NewHooks(normalize Normalizer) *Hooks {
	if normalize == nil {
		normalize = Canonical
	}
	return &Hooks{
		normalize:          normalize,
		leaving:            make(map[StateID][]HookFunc),
		entering:           make(map[StateID][]HookFunc),
		afterLeaving:       make(map[StateID][]HookFunc),
		afterEntering:      make(map[StateID][]HookFunc),
		transitioning:      make(map[Transition][]HookFunc),
		afterTransitioning: make(map[Transition][]HookFunc),
	}
}

// OnBeforeEvery registers a callback for BeforeEveryTransition
func (h *Hooks) OnBeforeEvery(fn PairHookFunc) *Hooks {
	if fn != nil {
		h.beforeEvery = append(h.beforeEvery, fn)
	}
	return h
}

// OnLeaving registers a callback run before the machine leaves state
func (h *Hooks) OnLeaving(state StateID, fn HookFunc) *Hooks {
	addStateHook(h.leaving, h.normalize(state), fn)
	return h
}

// OnEntering registers a callback run before the machine enters state
func (h *Hooks) OnEntering(state StateID, fn HookFunc) *Hooks {
	addStateHook(h.entering, h.normalize(state), fn)
	return h
}

// OnTransition registers a callback run before the exact from->to move
func (h *Hooks) OnTransition(from, to StateID, fn HookFunc) *Hooks {
	addPairHook(h.transitioning, h.pair(from, to), fn)
	return h
}

// OnAfterTransition registers a callback run after the exact from->to move
func (h *Hooks) OnAfterTransition(from, to StateID, fn HookFunc) *Hooks {
	addPairHook(h.afterTransitioning, h.pair(from, to), fn)
	return h
}

// OnAfterLeaving registers a callback run after the machine left state
func (h *Hooks) OnAfterLeaving(state StateID, fn HookFunc) *Hooks {
	addStateHook(h.afterLeaving, h.normalize(state), fn)
	return h
}

// OnAfterEntering registers a callback run after the machine entered state
func (h *Hooks) OnAfterEntering(state StateID, fn HookFunc) *Hooks {
	addStateHook(h.afterEntering, h.normalize(state), fn)
	return h
}

// OnAfterEvery registers a callback for AfterEveryTransition
func (h *Hooks) OnAfterEvery(fn PairHookFunc) *Hooks {
	if fn != nil {
		h.afterEvery = append(h.afterEvery, fn)
	}
	return h
}

func (h *Hooks) pair(from, to StateID) Transition {
	return Transition{From: h.normalize(from), To: h.normalize(to)}
}

func addStateHook(m map[StateID][]HookFunc, state StateID, fn HookFunc) {
	if fn != nil {
		m[state] = append(m[state], fn)
	}
}

func addPairHook(m map[Transition][]HookFunc, t Transition, fn HookFunc) {
	if fn != nil {
		m[t] = append(m[t], fn)
	}
}

func runHooks(fns []HookFunc) error {
	for _, fn := range fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func runPairHooks(fns []PairHookFunc, from, to StateID) error {
	for _, fn := range fns {
		if err := fn(from, to); err != nil {
			return err
		}
	}
	return nil
}

// BeforeEveryTransition runs the OnBeforeEvery callbacks
func (h *Hooks) BeforeEveryTransition(from, to StateID) error {
	return runPairHooks(h.beforeEvery, from, to)
}

// LeavingState runs the OnLeaving callbacks for state
func (h *Hooks) LeavingState(state StateID) error {
	return runHooks(h.leaving[state])
}

// EnteringState runs the OnEntering callbacks for state
func (h *Hooks) EnteringState(state StateID) error {
	return runHooks(h.entering[state])
}

// TransitioningFrom runs the OnTransition callbacks for from->to
func (h *Hooks) TransitioningFrom(from, to StateID) error {
	return runHooks(h.transitioning[Transition{From: from, To: to}])
}

// AfterTransitioningFrom runs the OnAfterTransition callbacks for from->to
func (h *Hooks) AfterTransitioningFrom(from, to StateID) error {
	return runHooks(h.afterTransitioning[Transition{From: from, To: to}])
}

// AfterLeavingState runs the OnAfterLeaving callbacks for state
func (h *Hooks) AfterLeavingState(state StateID) error {
	return runHooks(h.afterLeaving[state])
}

// AfterEnteringState runs the OnAfterEntering callbacks for state
func (h *Hooks) AfterEnteringState(state StateID) error {
	return runHooks(h.afterEntering[state])
}

// AfterEveryTransition runs the OnAfterEvery callbacks
func (h *Hooks) AfterEveryTransition(from, to StateID) error {
	return runPairHooks(h.afterEvery, from, to)
}
