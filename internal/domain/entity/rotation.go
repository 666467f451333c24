package entity

import (
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
)

// Anchor pins the rotation: the member at StartPosition holds the period
// beginning at StartDate.
type Anchor struct {
	StartDate     time.Time
	StartPosition int
	UpdatedAt     time.Time
}

// Skip marks one computed period of a member as skipped
type Skip struct {
	ID          int64
	MemberID    int64
	Member      *Member
	PeriodStart time.Time
	PeriodEnd   time.Time
	Reason      string
	SkippedBy   string
	SkippedAt   time.Time
}

func (s *Skip) Period() domain.Period {
	return domain.Period{Start: s.PeriodStart, End: s.PeriodEnd}
}

// Turn is one slot produced by the rotation walk
type Turn struct {
	Member    *Member
	Period    domain.Period
	IsCurrent bool
	IsSkipped bool
	// Pick is the selection registered for the turn, if any
	Pick *Pick
}

// SkipResult is returned by an admin skip
type SkipResult struct {
	Skip        *Skip
	PickDeleted bool
	Current     *Turn
	Next        *Turn
}

// EligibilityReason classifies a can-register answer
type EligibilityReason string

const (
	ReasonCurrentPicker   EligibilityReason = "current_picker"
	ReasonEarlyAccess     EligibilityReason = "early_access"
	ReasonNotStarted      EligibilityReason = "period_not_started"
	ReasonEarlyAccessWait EligibilityReason = "early_access_not_open"
	ReasonNotYourTurn     EligibilityReason = "not_your_turn"
	ReasonNotInRotation   EligibilityReason = "not_in_rotation"
)

// Eligibility answers whether a member may register a pick right now
type Eligibility struct {
	Allowed     bool
	EarlyAccess bool
	Reason      EligibilityReason
	Message     string
	Turn        *Turn
}
