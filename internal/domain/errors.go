package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds surfaced to the presentation layer. Match them with errors.Is.
var (
	ErrNotFound              = errors.New("not found")
	ErrDuplicateMember       = errors.New("duplicate member")
	ErrAlreadyActive         = errors.New("member already active")
	ErrAlreadySkipped        = errors.New("period already skipped")
	ErrNotEligible           = errors.New("not eligible to pick")
	ErrOutOfRange            = errors.New("value out of range")
	ErrRotationNotConfigured = errors.New("rotation not configured")
	ErrNoAvailablePicker     = errors.New("no available picker")
	ErrIncompleteRoster      = errors.New("incomplete roster")
	ErrTimeout               = errors.New("confirmation timed out")
	ErrInvalidInput          = errors.New("invalid input")
)

// Error carries the structured detail a caller needs to render a message.
type Error struct {
	Kind    error
	Handle  string
	Detail  string
	Missing []string
	Min     float64
	Max     float64
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Handle != "" {
		fmt.Fprintf(&b, ": %s", e.Handle)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, " missing: %s", strings.Join(e.Missing, ", "))
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NotFound(what, handle string) error {
	return &Error{Kind: ErrNotFound, Handle: handle, Detail: what}
}

func DuplicateMember(handle, detail string) error {
	return &Error{Kind: ErrDuplicateMember, Handle: handle, Detail: detail}
}

func AlreadyActive(handle string) error {
	return &Error{Kind: ErrAlreadyActive, Handle: handle}
}

func AlreadySkipped(handle string, p Period) error {
	return &Error{Kind: ErrAlreadySkipped, Handle: handle, Detail: p.String()}
}

func NotEligible(handle, reason string) error {
	return &Error{Kind: ErrNotEligible, Handle: handle, Detail: reason}
}

func OutOfRange(detail string, min, max float64) error {
	return &Error{Kind: ErrOutOfRange, Detail: detail, Min: min, Max: max}
}

func IncompleteRoster(missing []string) error {
	return &Error{Kind: ErrIncompleteRoster, Missing: missing}
}

func InvalidInput(detail string) error {
	return &Error{Kind: ErrInvalidInput, Detail: detail}
}

// AsError extracts the structured error, if any
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
