package domain

import "time"

// Rotation defaults, overridable through config
const (
	DefaultRotationPeriodDays = 14
	DefaultEarlyAccessDays    = 7
	DefaultConfirmTimeout     = 30 * time.Second
	DefaultScheduleLength     = 5
	DefaultListLimit          = 10
)

// Rating bounds are inclusive on both ends
const (
	MinRating = 1.0
	MaxRating = 10.0
)

// SkipTarget selects which upcoming turn an admin skip applies to
type SkipTarget string

const (
	SkipCurrent SkipTarget = "current"
	SkipNext    SkipTarget = "next"
)

// Valid reports whether t is a known skip target
func (t SkipTarget) Valid() bool {
	return t == SkipCurrent || t == SkipNext
}

// DateLayout is the storage and display format for period boundaries
const DateLayout = "2006-01-02"

// acceptedDateLayouts lists the input formats accepted for admin dates
var acceptedDateLayouts = []string{
	DateLayout,
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2006/01/02",
	"01/02/2006",
	"01-02-2006",
}
