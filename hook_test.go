package flowstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hook Hook
		want string
	}{
		{HookBeforeEvery, "before_every_transition"},
		{HookLeaving, "leaving_started_state"},
		{HookEntering, "entering_running_state"},
		{HookTransitioning, "transitioning_from_started_to_running"},
		{HookAfterTransitioning, "after_transitioning_from_started_to_running_state"},
		{HookAfterLeaving, "after_leaving_started_state"},
		{HookAfterEntering, "after_entering_running_state"},
		{HookAfterEvery, "after_every_transition"},
	}

	for _, tt := range tests {
		t.Run(tt.hook.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hook.Name(stateStarted, stateRunning))
		})
	}
}

func TestHookPhases(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [...]Hook{HookBeforeEvery, HookLeaving, HookEntering, HookTransitioning}, beforeHooks)
	assert.Equal(t, [...]Hook{HookAfterTransitioning, HookAfterLeaving, HookAfterEntering, HookAfterEvery}, afterHooks)
}

func TestUnknownHook(t *testing.T) {
	t.Parallel()

	h := Hook(42)
	assert.Equal(t, "hook(42)", h.String())
	assert.Equal(t, "hook(42)", h.Name(stateStarted, stateRunning))
	require.Error(t, h.invoke(NopListener{}, stateStarted, stateRunning))
}
