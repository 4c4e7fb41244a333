// Package sync orchestrates full pull (remote to local) and full push
// (local to remote) across all entity kinds in dependency order.
package sync

// State discriminates a Result.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Result is the tri-state progress report of a long operation. A stream of
// Results carries exactly one Loading followed by exactly one terminal
// Success or Error; consumers treat Loading as replacing, not accumulating.
type Result[T any] struct {
	State State
	Value T
	Err   error
}

// Unit is the value type of results that carry no payload.
type Unit struct{}

func Loading[T any]() Result[T] { return Result[T]{State: StateLoading} }

func Success[T any](v T) Result[T] { return Result[T]{State: StateSuccess, Value: v} }

func Failure[T any](err error) Result[T] { return Result[T]{State: StateError, Err: err} }
