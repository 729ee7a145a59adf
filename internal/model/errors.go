package model

import "errors"

// ErrorKind classifies refresh failures.
type ErrorKind int

const (
	// KindDataFetch is a query-level shape or type mismatch.
	KindDataFetch ErrorKind = iota
	// KindWindowData is a missing or wrong-typed field on a single window.
	KindWindowData
	// KindQuery is a failed collaborator invocation: the command could not
	// run, or its output was not UTF-8 text or not JSON.
	KindQuery
)

func (k ErrorKind) String() string {
	switch k {
	case KindDataFetch:
		return "Data fetching error"
	case KindWindowData:
		return "Window data parsing error"
	case KindQuery:
		return "Query error"
	default:
		return "Unknown error"
	}
}

// Error is a refresh failure carrying a static, human-readable message.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// DataFetchError returns a KindDataFetch error.
func DataFetchError(msg string) error {
	return &Error{Kind: KindDataFetch, Msg: msg}
}

// WindowDataError returns a KindWindowData error.
func WindowDataError(msg string) error {
	return &Error{Kind: KindWindowData, Msg: msg}
}

// QueryError returns a KindQuery error.
func QueryError(msg string) error {
	return &Error{Kind: KindQuery, Msg: msg}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
