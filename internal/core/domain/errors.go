package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure of the sync pipeline.
// The set is closed: callers branch on kinds, not on message text.
type ErrorKind string

const (
	// KindConfig indicates missing or malformed local configuration
	// (site URL, tenant, client identity).
	KindConfig ErrorKind = "config"

	// KindAuth indicates an authentication failure: no credential,
	// expired token without a refresh token, or a rejected token request.
	KindAuth ErrorKind = "auth"

	// KindNotFound indicates a referenced remote entity (site, list,
	// item) does not exist.
	KindNotFound ErrorKind = "not_found"

	// KindFilter indicates the remote API rejected a server-side filter
	// expression. Callers retry the operation without the filter and
	// apply the predicate client-side.
	KindFilter ErrorKind = "filter"

	// KindUpstream indicates any other remote API failure.
	KindUpstream ErrorKind = "upstream"

	// KindParse indicates a response that could not be decoded or was
	// missing a required field.
	KindParse ErrorKind = "parse"
)

// Error is the failure type crossing the core's boundaries. It carries
// the upstream HTTP status and response body when the failure came from
// the remote API, so callers can log actionable diagnostics.
type Error struct {
	Kind    ErrorKind
	Op      string // operation that failed, e.g. "graph: resolve list"
	Status  int    // upstream HTTP status, 0 when not applicable
	Body    string // upstream response body, "" when not applicable
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Status != 0 && e.Body != "":
		return fmt.Sprintf("%s: %s (status %d: %s)", e.Op, msg, e.Status, e.Body)
	case e.Status != 0:
		return fmt.Sprintf("%s: %s (status %d)", e.Op, msg, e.Status)
	default:
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// E builds an Error with the given kind, operation and message.
func E(kind ErrorKind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap builds an Error around a cause.
func Wrap(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of err, or "" if err is not a domain Error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is a domain Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// IsFilterRejected reports whether err means a server-side filter was
// rejected and the caller should retry unfiltered.
func IsFilterRejected(err error) bool { return IsKind(err, KindFilter) }

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) bool { return IsKind(err, KindAuth) }

// IsNotFound reports whether err means a remote entity was not found.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }
