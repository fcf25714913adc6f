// Package async tracks the lifecycle of one outstanding backend call as a
// small state machine. Every screen holds one State per logical operation
// (fetch, create, update, delete, upload) and renders off whatever the last
// dispatched event left behind. The machine never retries and never performs
// the call itself.
package async

// Status is the phase of a lifecycle slice.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// State is one lifecycle slice. On failure Data keeps its previous value so
// views can keep showing stale results next to the error.
type State[T any] struct {
	Status Status
	Data   T
	Err    string
}

type eventKind int

const (
	eventRequest eventKind = iota
	eventSuccess
	eventFail
)

// Event is a dispatched transition. Build one with Request, Succeed or Fail.
type Event[T any] struct {
	kind eventKind
	data T
	err  string
}

// Request marks the start of a call.
func Request[T any]() Event[T] {
	return Event[T]{kind: eventRequest}
}

// Succeed carries the call result.
func Succeed[T any](data T) Event[T] {
	return Event[T]{kind: eventSuccess, data: data}
}

// Fail carries a human-readable failure message.
func Fail[T any](msg string) Event[T] {
	if msg == "" {
		msg = "request failed"
	}
	return Event[T]{kind: eventFail, err: msg}
}

// Reduce applies ev to st and returns the next state. It is pure: no side
// effects, no retries, no sequencing guard. When two calls race, the event
// that arrives last wins.
func Reduce[T any](st State[T], ev Event[T]) State[T] {
	switch ev.kind {
	case eventRequest:
		st.Status = StatusLoading
		st.Err = ""
	case eventSuccess:
		st.Status = StatusSucceeded
		st.Data = ev.data
		st.Err = ""
	case eventFail:
		st.Status = StatusFailed
		st.Err = ev.err
	}
	return st
}

// Run drives one full request cycle through the machine: REQUEST, perform
// the call once, then SUCCESS or FAIL. Failure messages come from
// err.Error(), which is already normalized by the API client.
func Run[T any](st State[T], call func() (T, error)) State[T] {
	st = Reduce(st, Request[T]())
	data, err := call()
	if err != nil {
		return Reduce(st, Fail[T](err.Error()))
	}
	return Reduce(st, Succeed(data))
}

// Map converts the payload type of a slice, preserving status and error.
// Handlers use it to turn API records into view models without re-running
// the machine.
func Map[T, U any](st State[T], f func(T) U) State[U] {
	return State[U]{
		Status: st.Status,
		Data:   f(st.Data),
		Err:    st.Err,
	}
}
