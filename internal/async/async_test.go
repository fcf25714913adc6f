package async

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceRequestFromIdle(t *testing.T) {
	st := State[[]string]{}
	st = Reduce(st, Request[[]string]())

	assert.Equal(t, StatusLoading, st.Status)
	assert.Empty(t, st.Err)
}

func TestReduceFailKeepsStaleData(t *testing.T) {
	st := State[[]string]{}
	st = Reduce(st, Request[[]string]())
	st = Reduce(st, Succeed([]string{"shirt", "pants"}))
	require.Equal(t, StatusSucceeded, st.Status)

	// Re-fetch fails: data from the previous fetch stays visible.
	st = Reduce(st, Request[[]string]())
	st = Reduce(st, Fail[[]string]("backend unreachable"))

	assert.Equal(t, StatusFailed, st.Status)
	assert.Equal(t, "backend unreachable", st.Err)
	assert.Equal(t, []string{"shirt", "pants"}, st.Data)
}

func TestReduceRequestClearsErrorKeepsData(t *testing.T) {
	st := State[int]{Status: StatusFailed, Data: 42, Err: "boom"}
	st = Reduce(st, Request[int]())

	assert.Equal(t, StatusLoading, st.Status)
	assert.Empty(t, st.Err)
	assert.Equal(t, 42, st.Data)
}

func TestReduceSuccessClearsError(t *testing.T) {
	st := State[int]{Status: StatusLoading, Err: "old"}
	st = Reduce(st, Succeed(7))

	assert.Equal(t, StatusSucceeded, st.Status)
	assert.Equal(t, 7, st.Data)
	assert.Empty(t, st.Err)
}

func TestFailNeverEmpty(t *testing.T) {
	st := Reduce(State[int]{Status: StatusLoading}, Fail[int](""))
	assert.Equal(t, StatusFailed, st.Status)
	assert.NotEmpty(t, st.Err)
}

func TestLastEventWins(t *testing.T) {
	// Two overlapping calls with no sequence guard: whichever completion is
	// dispatched last determines the state.
	st := State[int]{}
	st = Reduce(st, Request[int]())
	st = Reduce(st, Request[int]())
	st = Reduce(st, Succeed(1))
	st = Reduce(st, Succeed(2))

	assert.Equal(t, StatusSucceeded, st.Status)
	assert.Equal(t, 2, st.Data)
}

func TestRunSuccess(t *testing.T) {
	calls := 0
	st := Run(State[string]{}, func() (string, error) {
		calls++
		return "ok", nil
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, StatusSucceeded, st.Status)
	assert.Equal(t, "ok", st.Data)
}

func TestRunFailure(t *testing.T) {
	st := State[string]{Data: "stale"}
	st = Run(st, func() (string, error) {
		return "", errors.New("no route to host")
	})

	assert.Equal(t, StatusFailed, st.Status)
	assert.Equal(t, "no route to host", st.Err)
	assert.Equal(t, "stale", st.Data)
}

func TestMapPreservesStatus(t *testing.T) {
	st := State[int]{Status: StatusFailed, Data: 3, Err: "oops"}
	mapped := Map(st, func(n int) string {
		if n == 0 {
			return ""
		}
		return "n"
	})

	assert.Equal(t, StatusFailed, mapped.Status)
	assert.Equal(t, "oops", mapped.Err)
	assert.Equal(t, "n", mapped.Data)
}
