package models

// Status tags the state carried by a ServerConnection.
type Status uint8

const (
	// StatusLoading means the call has not answered yet.
	StatusLoading Status = iota
	// StatusSuccess means the call answered and Data holds the result.
	StatusSuccess
	// StatusError means the call failed and Err holds the cause.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

const unknownErrorMessage = "Unknown error"

// ServerConnection is the outcome of one call to the Aura backend: still
// loading, succeeded with data, or failed with an error.
// The zero value is Loading.
type ServerConnection[T any] struct {
	status Status
	data   T
	err    error
}

// Loading returns a connection that is still waiting for the backend.
func Loading[T any]() ServerConnection[T] {
	return ServerConnection[T]{status: StatusLoading}
}

// Success wraps the data returned by a completed call.
func Success[T any](data T) ServerConnection[T] {
	return ServerConnection[T]{status: StatusSuccess, data: data}
}

// Failure wraps the error of a failed call.
func Failure[T any](err error) ServerConnection[T] {
	return ServerConnection[T]{status: StatusError, err: err}
}

// Status reports which of the three states c is in.
func (c ServerConnection[T]) Status() Status { return c.status }

// Data is only meaningful when Status is StatusSuccess.
func (c ServerConnection[T]) Data() T { return c.data }

// Err is only set when Status is StatusError.
func (c ServerConnection[T]) Err() error { return c.err }

// Message returns the text shown to the user for a failed call.
func (c ServerConnection[T]) Message() string {
	if c.err == nil || c.err.Error() == "" {
		return unknownErrorMessage
	}

	return c.err.Error()
}
