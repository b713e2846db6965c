// Package apperr carries the typed errors the service layer returns to the
// transport layer. Handlers switch on Kind once to pick a status code;
// message text is never matched.
package apperr

import "errors"

type Kind int

const (
	// KindValidation is a caller mistake detected before any storage call.
	KindValidation Kind = iota
	// KindNotFound covers both "resource absent" and "caller is not the
	// owner" so responses never reveal whether a project exists.
	KindNotFound
	// KindConflict is a duplicate invite or a lost accept race.
	KindConflict
	// KindUpstream is an unclassified storage or identity failure. Detail
	// stays in server logs, never in the response.
	KindUpstream
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Upstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: msg, Err: err}
}

// KindOf classifies any error; non-apperr errors count as upstream.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}
