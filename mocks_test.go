package flowstate

import (
	"context"
	"log/slog"

	"github.com/stretchr/testify/mock"
)

// MockListener is a testify/mock implementation of Listener
type MockListener struct {
	mock.Mock
}

var _ Listener = (*MockListener)(nil)

func (l *MockListener) BeforeEveryTransition(from, to StateID) error {
	return l.Called(from, to).Error(0)
}

func (l *MockListener) LeavingState(state StateID) error {
	return l.Called(state).Error(0)
}

func (l *MockListener) EnteringState(state StateID) error {
	return l.Called(state).Error(0)
}

func (l *MockListener) TransitioningFrom(from, to StateID) error {
	return l.Called(from, to).Error(0)
}

func (l *MockListener) AfterTransitioningFrom(from, to StateID) error {
	return l.Called(from, to).Error(0)
}

func (l *MockListener) AfterLeavingState(state StateID) error {
	return l.Called(state).Error(0)
}

func (l *MockListener) AfterEnteringState(state StateID) error {
	return l.Called(state).Error(0)
}

func (l *MockListener) AfterEveryTransition(from, to StateID) error {
	return l.Called(from, to).Error(0)
}

// recordingListener records hook names together with the machine state
// observed while each hook runs
type recordingListener struct {
	machine *Machine
	calls   []string
	seen    []StateID
	failOn  string
	err     error
}

func (r *recordingListener) record(name string) error {
	r.calls = append(r.calls, name)
	if r.machine != nil {
		r.seen = append(r.seen, r.machine.Current())
	}
	if name == r.failOn {
		return r.err
	}
	return nil
}

func (r *recordingListener) BeforeEveryTransition(from, to StateID) error {
	return r.record(HookBeforeEvery.Name(from, to))
}

func (r *recordingListener) LeavingState(state StateID) error {
	return r.record(HookLeaving.Name(state, ""))
}

func (r *recordingListener) EnteringState(state StateID) error {
	return r.record(HookEntering.Name("", state))
}

func (r *recordingListener) TransitioningFrom(from, to StateID) error {
	return r.record(HookTransitioning.Name(from, to))
}

func (r *recordingListener) AfterTransitioningFrom(from, to StateID) error {
	return r.record(HookAfterTransitioning.Name(from, to))
}

func (r *recordingListener) AfterLeavingState(state StateID) error {
	return r.record(HookAfterLeaving.Name(state, ""))
}

func (r *recordingListener) AfterEnteringState(state StateID) error {
	return r.record(HookAfterEntering.Name("", state))
}

func (r *recordingListener) AfterEveryTransition(from, to StateID) error {
	return r.record(HookAfterEvery.Name(from, to))
}

// captureHandler is a slog.Handler that keeps every record it receives
type captureHandler struct {
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *captureHandler) WithGroup(string) slog.Handler {
	return h
}

// atLevel returns the captured records logged at level
func (h *captureHandler) atLevel(level slog.Level) []slog.Record {
	var out []slog.Record
	for _, r := range h.records {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

func recordAttrs(r slog.Record) map[string]string {
	attrs := make(map[string]string)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})
	return attrs
}
