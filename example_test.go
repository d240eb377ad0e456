package flowstate_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/librescoot/flowstate"
)

// Example: Simple traffic light built from a definition
func Example_trafficLight() {
	const (
		stateRed    flowstate.StateID = "red"
		stateYellow flowstate.StateID = "yellow"
		stateGreen  flowstate.StateID = "green"
	)

	m, _ := flowstate.NewDefinition().
		State(stateRed,
			flowstate.WithAfterEntering(func() error {
				fmt.Println("🔴 RED - Stop")
				return nil
			}),
		).
		State(stateGreen,
			flowstate.WithAfterEntering(func() error {
				fmt.Println("🟢 GREEN - Go")
				return nil
			}),
		).
		State(stateYellow,
			flowstate.WithAfterEntering(func() error {
				fmt.Println("🟡 YELLOW - Caution")
				return nil
			}),
		).
		Flow(
			flowstate.From(stateRed).To(stateGreen),
			flowstate.From(stateGreen).To(stateYellow),
			flowstate.From(stateYellow).To(stateRed),
		).
		Initial(stateRed).
		Build(
			flowstate.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))),
		)

	for _, next := range []flowstate.StateID{stateGreen, stateYellow, stateRed} {
		if _, err := m.Transition(next); err != nil {
			fmt.Println(err)
		}
	}

	if _, err := m.Transition(stateYellow); err != nil {
		fmt.Println(err)
	}

	fmt.Println(m.FlowSoFar())

	// Output:
	// 🟢 GREEN - Go
	// 🟡 YELLOW - Caution
	// 🔴 RED - Stop
	// Cannot transition from red to yellow, flow so far: red -> green -> yellow -> red
	// [red green yellow red]
}

// job tracks its lifecycle with an embedded machine and reacts to the
// hooks it cares about
type job struct {
	flowstate.NopListener
	fsm *flowstate.Machine
}

func newJob() *job {
	j := &job{}
	j.fsm = flowstate.New("queued", flowstate.WithListener(j)).
		PermitStatesAndTransitions(
			flowstate.From("queued").To("running"),
			flowstate.From("running").To("done", "failed"),
			flowstate.From("failed").To("queued"),
		)
	return j
}

func (j *job) EnteringState(state flowstate.StateID) error {
	fmt.Printf("entering %s (still %s)\n", state, j.fsm.Current())
	return nil
}

func (j *job) AfterEveryTransition(from, to flowstate.StateID) error {
	fmt.Printf("%s -> %s\n", from, to)
	return nil
}

// Example: Embedding a machine in an owner that is also its listener
func Example_embedded() {
	j := newJob()

	_ = j.fsm.TransitionOrMaintain("running")
	_ = j.fsm.TransitionOrMaintain("running")

	if err := j.fsm.Expect("done"); err != nil {
		fmt.Println(err)
	}

	_, _ = j.fsm.Transition("done")
	fmt.Println(j.fsm.FlowSoFar())

	// Output:
	// entering running (still queued)
	// queued -> running
	// Must be in done state, but was in running
	// entering done (still running)
	// running -> done
	// [queued running done]
}
