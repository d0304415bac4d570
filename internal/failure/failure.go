package failure

import (
	"errors"
	"fmt"
)

// Kind classifies the ways a station switch can fail. Every error
// leaving a radiohop package carries one of these.
type Kind string

const (
	RegistryUnavailable  Kind = "RegistryUnavailable"
	PlayerUnavailable    Kind = "PlayerUnavailable"
	NoStationsToSwitchTo Kind = "NoStationsToSwitchTo"
	PlaybackFailed       Kind = "PlaybackFailed"
	UnknownCommand       Kind = "UnknownCommand"
)

type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message()
}

// Message is the detail line without the kind prefix, with the
// underlying cause appended when there is one.
func (e *Error) Message() string {
	switch {
	case e.Cause == nil:
		return e.Detail
	case e.Detail == "":
		return e.Cause.Error()
	default:
		return e.Detail + ": " + e.Cause.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind carried by err, or "" if err is not a
// failure from this package.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
