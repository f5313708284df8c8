// Package result holds the tri-state outcome every repository call returns.
package result

// Status is the variant of a Result.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
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

// Result is Loading, Success(data) or Error(message, code). Code is the HTTP status
// that produced the error, or 0 when there is none (network failure, validation).
// The zero value is Loading.
type Result[T any] struct {
	status  Status
	data    T
	message string
	code    int
}

func Loading[T any]() Result[T] {
	return Result[T]{status: StatusLoading}
}

func Success[T any](data T) Result[T] {
	return Result[T]{status: StatusSuccess, data: data}
}

func Failure[T any](message string, code int) Result[T] {
	return Result[T]{status: StatusError, message: message, code: code}
}

func (r Result[T]) Status() Status  { return r.status }
func (r Result[T]) IsLoading() bool { return r.status == StatusLoading }
func (r Result[T]) IsSuccess() bool { return r.status == StatusSuccess }
func (r Result[T]) IsError() bool   { return r.status == StatusError }

// Data returns the payload. It is the zero value unless the result is a Success.
func (r Result[T]) Data() T { return r.data }

// Message returns the user-facing error message ("" unless Error).
func (r Result[T]) Message() string { return r.message }

// Code returns the HTTP status of an Error, 0 when absent.
func (r Result[T]) Code() int { return r.code }

// Map converts the payload of a Success; Loading and Error carry over unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	switch r.status {
	case StatusSuccess:
		return Success(fn(r.data))
	case StatusError:
		return Failure[U](r.message, r.code)
	default:
		return Loading[U]()
	}
}

// Forward re-types a non-success result, for chaining calls where the first failure wins.
func Forward[U, T any](r Result[T]) Result[U] {
	if r.status == StatusError {
		return Failure[U](r.message, r.code)
	}
	return Loading[U]()
}
