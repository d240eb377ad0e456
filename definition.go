package flowstate

import (
	"fmt"
)

// Definition declares states, transitions and their callbacks before
// building a Machine. Tokens are kept as given and canonicalized by Build
// with the machine's normalizer.
type Definition struct {
	states      []*State
	transitions []declaredTransition
	initial     StateID
}

type declaredTransition struct {
	Transition
	hooks transitionHooks
}

// NewDefinition creates a new machine definition builder
func NewDefinition() *Definition {
	return &Definition{}
}

// State declares a state. Declaring the same state again adds its callbacks.
func (d *Definition) State(id StateID, opts ...StateOption) *Definition {
	s := &State{ID: id}
	for _, opt := range opts {
		opt(s)
	}
	d.states = append(d.states, s)
	return d
}

// Transition declares a permitted move from one state to another
func (d *Definition) Transition(from, to StateID, opts ...TransitionOption) *Definition {
	t := declaredTransition{
		Transition: Transition{From: from, To: to},
	}
	for _, opt := range opts {
		opt(&t.hooks)
	}
	d.transitions = append(d.transitions, t)
	return d
}

// Flow declares every transition implied by rules
func (d *Definition) Flow(rules ...Rule) *Definition {
	for _, t := range pairs(rules) {
		d.Transition(t.From, t.To)
	}
	return d
}

// Initial sets the initial state
func (d *Definition) Initial(id StateID) *Definition {
	d.initial = id
	return d
}

// Validate checks the definition for errors, comparing tokens with
// Canonical. Build validates again with the machine's normalizer.
func (d *Definition) Validate() error {
	return d.validate(Canonical)
}

func (d *Definition) validate(normalize Normalizer) error {
	if d.initial == "" {
		return fmt.Errorf("no initial state defined")
	}

	declared := make(map[StateID]struct{}, len(d.states))
	for _, s := range d.states {
		declared[normalize(s.ID)] = struct{}{}
	}

	if initial := normalize(d.initial); !hasState(declared, initial) {
		return fmt.Errorf("initial state %q not defined", initial)
	}

	for _, t := range d.transitions {
		if from := normalize(t.From); !hasState(declared, from) {
			return fmt.Errorf("transition from undefined state %q: %w", from, &UnknownStateError{State: from})
		}
		if to := normalize(t.To); !hasState(declared, to) {
			return fmt.Errorf("transition to undefined state %q: %w", to, &UnknownStateError{State: to})
		}
	}

	return nil
}

func hasState(states map[StateID]struct{}, s StateID) bool {
	_, ok := states[s]
	return ok
}

// Build creates a Machine from the definition. State and transition
// callbacks run before the hooks of a listener given with WithListener.
func (d *Definition) Build(opts ...MachineOption) (*Machine, error) {
	m := New(d.initial, opts...)
	if err := d.validate(m.normalize); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	for _, s := range d.states {
		m.PermitState(s.ID)
	}

	rules := make([]Rule, 0, len(d.transitions))
	for _, t := range d.transitions {
		rules = append(rules, From(t.From).To(t.To))
	}
	if _, err := m.PermitTransition(rules...); err != nil {
		return nil, fmt.Errorf("permit transitions: %w", err)
	}

	if hooks := d.hooks(m.normalize); hooks != nil {
		m.listener = Listeners(hooks, m.listener)
	}

	return m, nil
}

// hooks collects the declared callbacks, or returns nil when there are none
func (d *Definition) hooks(normalize Normalizer) *Hooks {
	h := NewHooks(normalize)
	found := false

	for _, s := range d.states {
		if s.hasHooks() {
			s.register(h)
			found = true
		}
	}

	for _, t := range d.transitions {
		for _, fn := range t.hooks.on {
			h.OnTransition(t.From, t.To, fn)
			found = true
		}
		for _, fn := range t.hooks.after {
			h.OnAfterTransition(t.From, t.To, fn)
			found = true
		}
	}

	if !found {
		return nil
	}
	return h
}
