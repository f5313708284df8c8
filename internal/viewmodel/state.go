package viewmodel

import (
	"errors"

	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
)

var (
	// ErrAnalyzeNotReady is returned by AnalyzePlant when the photo has not passed
	// validation or no target plant is set.
	ErrAnalyzeNotReady = errors.New("photo must be validated and a plant selected before analysis")
	// ErrNoImage is returned when a capture action runs before an image is set.
	ErrNoImage = errors.New("no photo selected")
	// ErrNothingToRetry is returned by Retry* when the step is not in the Error phase.
	ErrNothingToRetry = errors.New("nothing to retry")
)

// User-facing messages produced by the view-models themselves.
const (
	MsgSignInRequired = "You need to sign in first."
	MsgBlankName      = "The plant needs a name."
	MsgNoDiagnosis    = "No diagnosis to send feedback for."
	MsgBlankComment   = "Write something before sending."
)

// Phase is the position of one asynchronous step.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Async is the state of a step that starts Idle, then is Loading and settles
// on Success (with Data) or Error (with Message and optional Code).
type Async[T any] struct {
	Phase   Phase
	Data    T
	Message string
	Code    int
}

func Idle[T any]() Async[T] { return Async[T]{} }

func Loading[T any]() Async[T] { return Async[T]{Phase: PhaseLoading} }

// Settle converts a finished repository result.
func Settle[T any](r result.Result[T]) Async[T] {
	switch r.Status() {
	case result.StatusSuccess:
		return Async[T]{Phase: PhaseSuccess, Data: r.Data()}
	case result.StatusError:
		return Async[T]{Phase: PhaseError, Message: r.Message(), Code: r.Code()}
	default:
		return Loading[T]()
	}
}

func Fail[T any](msg string) Async[T] {
	return Async[T]{Phase: PhaseError, Message: msg}
}

func (a Async[T]) IsIdle() bool    { return a.Phase == PhaseIdle }
func (a Async[T]) IsLoading() bool { return a.Phase == PhaseLoading }
func (a Async[T]) IsSuccess() bool { return a.Phase == PhaseSuccess }
func (a Async[T]) IsError() bool   { return a.Phase == PhaseError }
