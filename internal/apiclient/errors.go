// internal/apiclient/errors.go
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// Kind classifies why a call failed. Repositories map each kind to one user message.
type Kind int

const (
	KindUnknown  Kind = iota
	KindNetwork       // host unresolvable, connection refused/reset
	KindTimeout       // connect/read deadline or context deadline
	KindHTTP          // server answered with 4xx/5xx
	KindDecode        // 2xx with an empty or malformed body
	KindCanceled      // caller cancelled the context
	KindInvalid       // rejected locally, nothing was sent (e.g. oversized photo)
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	case KindCanceled:
		return "canceled"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Error is returned by every Client method that fails.
type Error struct {
	Kind   Kind
	Op     string // human name of the operation, e.g. "Load plants"
	Status int    // HTTP status for KindHTTP/KindDecode, 0 otherwise
	Detail string // the backend's "detail" message, if any
	Err    error

	// NotSent is set when the connection failed before the request was written
	// (DNS lookup, refused dial). Only these failures are safe to repeat.
	NotSent bool
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " %d", e.Status)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an HTTP error with the given status.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindHTTP && apiErr.Status == status
}

// classify turns a transport error from http.Client.Do into an *Error.
func classify(op string, err error) *Error {
	kind := KindUnknown

	var netErr net.Error
	var dnsErr *net.DNSError
	var opErr *net.OpError
	notSent := false
	switch {
	case errors.Is(err, context.Canceled):
		kind = KindCanceled
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = KindTimeout
	case errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED):
		kind = KindNetwork
		notSent = true
	case errors.As(err, &opErr):
		kind = KindNetwork
		notSent = opErr.Op == "dial"
	case errors.Is(err, syscall.ECONNRESET):
		kind = KindNetwork
	}

	return &Error{Kind: kind, Op: op, Err: err, NotSent: notSent}
}

// httpError builds the error for a 4xx/5xx response, keeping the backend's detail.
func httpError(op string, status int, body []byte) *Error {
	return &Error{
		Kind:   KindHTTP,
		Op:     op,
		Status: status,
		Detail: extractDetail(body),
		Err:    fmt.Errorf("unexpected status %d", status),
	}
}

// extractDetail reads {"detail": ...}. FastAPI-style validation errors carry a list
// of {"msg": ...} objects instead of a string; their messages are joined.
func extractDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
