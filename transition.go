package flowstate

import (
	"slices"
)

// Rule permits every move from any of Sources to any of Targets
type Rule struct {
	Sources []StateID
	Targets []StateID
}

// From starts a rule with the given source states
func From(states ...StateID) Rule {
	return Rule{Sources: states}
}

// To sets the target states of the rule
func (r Rule) To(states ...StateID) Rule {
	r.Targets = states
	return r
}

// RulesFromMap converts a source->targets map into rules ordered by source
func RulesFromMap(m map[StateID][]StateID) []Rule {
	sources := make([]StateID, 0, len(m))
	for from := range m {
		sources = append(sources, from)
	}
	slices.Sort(sources)

	rules := make([]Rule, 0, len(sources))
	for _, from := range sources {
		rules = append(rules, From(from).To(m[from]...))
	}
	return rules
}

// pairs expands rules source-major: each source with each of its targets
func pairs(rules []Rule) []Transition {
	var out []Transition
	for _, r := range rules {
		for _, from := range r.Sources {
			for _, to := range r.Targets {
				out = append(out, Transition{From: from, To: to})
			}
		}
	}
	return out
}

// TransitionOption is a functional option for configuring callbacks of a
// transition declared on a Definition
type TransitionOption func(*transitionHooks)

type transitionHooks struct {
	on    []HookFunc
	after []HookFunc
}

// WithOnTransition runs fn before the state changes along the transition
func WithOnTransition(fn HookFunc) TransitionOption {
	return func(t *transitionHooks) {
		t.on = append(t.on, fn)
	}
}

// WithAfterTransition runs fn after the state changed along the transition
func WithAfterTransition(fn HookFunc) TransitionOption {
	return func(t *transitionHooks) {
		t.after = append(t.after, fn)
	}
}
