package flowstate

import (
	"log/slog"
	"slices"
)

// Machine tracks the current state of its owner. It is not safe for
// concurrent use; callers sharing a Machine between goroutines must
// serialize access themselves.
type Machine struct {
	states      map[StateID]struct{}
	transitions map[Transition]struct{}

	currentState StateID
	history      []StateID

	listener            Listener
	logger              *slog.Logger
	normalize           Normalizer
	stateChangeCallback func(from, to StateID)

	// Apply PermitTransition batches pair by pair instead of all-or-nothing
	partialBatches bool
}

// MachineOption is a functional option for configuring a Machine
type MachineOption func(*Machine)

// WithListener sets the listener notified around every transition.
// The machine does not own the listener. A nil *Hooks is treated as no
// listener; other typed nil pointers must not be passed.
func WithListener(l Listener) MachineOption {
	return func(m *Machine) {
		if isNilListener(l) {
			l = nil
		}
		m.listener = l
	}
}

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithNormalizer sets how state tokens are canonicalized
func WithNormalizer(fn Normalizer) MachineOption {
	return func(m *Machine) {
		if fn != nil {
			m.normalize = fn
		}
	}
}

// WithStateChangeCallback sets a callback invoked after each state change
func WithStateChangeCallback(fn func(from, to StateID)) MachineOption {
	return func(m *Machine) {
		m.stateChangeCallback = fn
	}
}

// WithCaseFolding makes state tokens case-insensitive
func WithCaseFolding() MachineOption {
	return WithNormalizer(CaseFolded)
}

// WithPartialTransitionBatches makes PermitTransition validate and apply
// pairs one at a time. A failing call then keeps the pairs it applied before
// reaching the unknown state.
func WithPartialTransitionBatches() MachineOption {
	return func(m *Machine) {
		m.partialBatches = true
	}
}

// New creates a machine in the initial state
func New(initial StateID, opts ...MachineOption) *Machine {
	m := &Machine{
		states:      make(map[StateID]struct{}),
		transitions: make(map[Transition]struct{}),
		logger:      Logger,
		normalize:   Canonical,
	}

	for _, opt := range opts {
		opt(m)
	}

	initial = m.normalize(initial)
	m.states[initial] = struct{}{}
	m.currentState = initial
	m.history = []StateID{initial}

	return m
}

// OnStateChange sets a callback invoked after each state change.
// It replaces one set with WithStateChangeCallback.
func (m *Machine) OnStateChange(fn func(from, to StateID)) {
	m.stateChangeCallback = fn
}

// Current returns the current state
func (m *Machine) Current() StateID {
	return m.currentState
}

// PermitState adds states and returns the ones that were not known before,
// in argument order
func (m *Machine) PermitState(states ...StateID) []StateID {
	var added []StateID
	for _, s := range states {
		s = m.normalize(s)
		if m.addState(s) {
			added = append(added, s)
		}
	}
	return added
}

// PermitTransition permits every pair implied by rules and returns the pairs
// that were not permitted before. Both ends of each pair must already be
// known; otherwise an *UnknownStateError names the first unknown state and
// nothing from the call is applied (see WithPartialTransitionBatches).
func (m *Machine) PermitTransition(rules ...Rule) ([]Transition, error) {
	candidates := m.normalizePairs(pairs(rules))

	if !m.partialBatches {
		for _, t := range candidates {
			if err := m.checkKnown(t); err != nil {
				return nil, err
			}
		}
	}

	var added []Transition
	for _, t := range candidates {
		if err := m.checkKnown(t); err != nil {
			return added, err
		}
		if m.addTransition(t) {
			added = append(added, t)
		}
	}
	return added, nil
}

// PermitStatesAndTransitions permits both ends of every pair implied by rules
// and then the pair itself. It returns the machine for chaining.
func (m *Machine) PermitStatesAndTransitions(rules ...Rule) *Machine {
	for _, t := range m.normalizePairs(pairs(rules)) {
		m.addState(t.From)
		m.addState(t.To)
		m.addTransition(t)
	}
	return m
}

func (m *Machine) normalizePairs(ts []Transition) []Transition {
	for i, t := range ts {
		ts[i] = Transition{From: m.normalize(t.From), To: m.normalize(t.To)}
	}
	return ts
}

func (m *Machine) checkKnown(t Transition) error {
	for _, s := range [...]StateID{t.From, t.To} {
		if !m.known(s) {
			m.logger.Debug("transition rejected, unknown state", "from", t.From, "to", t.To, "state", s)
			return &UnknownStateError{State: s}
		}
	}
	return nil
}

func (m *Machine) addState(s StateID) bool {
	if m.known(s) {
		return false
	}
	m.states[s] = struct{}{}
	m.logger.Debug("state permitted", "state", s)
	return true
}

func (m *Machine) addTransition(t Transition) bool {
	if _, ok := m.transitions[t]; ok {
		return false
	}
	m.transitions[t] = struct{}{}
	m.logger.Debug("transition permitted", "from", t.From, "to", t.To)
	return true
}

// Known checks if the state was permitted
func (m *Machine) Known(state StateID) bool {
	return m.known(m.normalize(state))
}

// MayTransitionTo checks if moving from the current state to state is permitted
func (m *Machine) MayTransitionTo(state StateID) bool {
	return m.mayTransitionTo(m.normalize(state))
}

func (m *Machine) known(state StateID) bool {
	_, ok := m.states[state]
	return ok
}

func (m *Machine) mayTransitionTo(state StateID) bool {
	if !m.known(state) {
		return false
	}
	_, ok := m.transitions[Transition{From: m.currentState, To: state}]
	return ok
}

// InState checks if state is the current state
func (m *Machine) InState(state StateID) bool {
	return m.normalize(state) == m.currentState
}

// Expect returns an *InvalidFlowError unless the machine is in state
func (m *Machine) Expect(state StateID) error {
	state = m.normalize(state)
	if state != m.currentState {
		return newExpectationError(m.currentState, state)
	}
	return nil
}

// Transition moves the machine to state and returns the state it left.
//
// Listener hooks run around the change: Before hooks still see the old
// state and an error from one of them aborts the transition. After hooks
// see the new state; an error from one of them is returned together with
// the previous state, and the machine stays in the new state. The state
// change callback runs last, even when an After hook failed.
func (m *Machine) Transition(state StateID) (StateID, error) {
	state = m.normalize(state)

	if !m.known(state) {
		m.logger.Debug("transition to unknown state", "from", m.currentState, "to", state)
		return "", &UnknownStateError{State: state}
	}

	if !m.mayTransitionTo(state) {
		m.logger.Debug("transition not permitted", "from", m.currentState, "to", state)
		return "", &InvalidFlowError{
			Current: m.currentState,
			Target:  state,
			Flow:    m.FlowSoFar(),
		}
	}

	from := m.currentState

	if err := m.dispatch(beforeHooks[:], from, state); err != nil {
		m.logger.Debug("transition aborted by hook", "from", from, "to", state, "error", err)
		return "", err
	}

	m.logger.Debug("transitioning", "from", from, "to", state)
	m.currentState = state
	m.history = append(m.history, state)

	err := m.dispatch(afterHooks[:], from, state)

	// Notify callback
	if m.stateChangeCallback != nil {
		m.stateChangeCallback(from, state)
	}

	if err != nil {
		m.logger.Warn("hook failed after state change", "from", from, "to", state, "error", err)
		return from, err
	}

	return from, nil
}

// TransitionOrMaintain transitions to state unless the machine is already in it
func (m *Machine) TransitionOrMaintain(state StateID) error {
	if m.InState(state) {
		return nil
	}
	_, err := m.Transition(state)
	return err
}

// dispatch delivers hooks to the listener in order, stopping at the first error
func (m *Machine) dispatch(hooks []Hook, from, to StateID) error {
	if m.listener == nil {
		return nil
	}
	for _, h := range hooks {
		m.logger.Debug("dispatching hook", "hook", h.Name(from, to))
		if err := h.invoke(m.listener, from, to); err != nil {
			return err
		}
	}
	return nil
}

// FlowSoFar returns a copy of every state the machine has been in, starting
// with the initial state
func (m *Machine) FlowSoFar() []StateID {
	return slices.Clone(m.history)
}

// States returns the permitted states in sorted order
func (m *Machine) States() []StateID {
	out := make([]StateID, 0, len(m.states))
	for s := range m.states {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Transitions returns the permitted transitions sorted by source, then target
func (m *Machine) Transitions() []Transition {
	out := make([]Transition, 0, len(m.transitions))
	for t := range m.transitions {
		out = append(out, t)
	}
	slices.SortFunc(out, compareTransitions)
	return out
}

// TransitionsFrom returns the states reachable from state in one step, sorted
func (m *Machine) TransitionsFrom(state StateID) []StateID {
	state = m.normalize(state)
	var out []StateID
	for t := range m.transitions {
		if t.From == state {
			out = append(out, t.To)
		}
	}
	slices.Sort(out)
	return out
}

func compareTransitions(a, b Transition) int {
	switch {
	case a.From < b.From:
		return -1
	case a.From > b.From:
		return 1
	case a.To < b.To:
		return -1
	case a.To > b.To:
		return 1
	default:
		return 0
	}
}
