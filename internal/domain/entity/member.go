package entity

import "time"

// Member is a club member. Position is nil for inactive (historical) members.
type Member struct {
	ID          int64
	Handle      string
	DisplayName string
	Position    *int
	CreatedAt   time.Time
}

func (m *Member) IsActive() bool {
	return m.Position != nil
}

// MemberInput is an inbound (handle, display name) pair
type MemberInput struct {
	Handle      string `yaml:"handle" validate:"required,max=50"`
	DisplayName string `yaml:"name"   validate:"required,max=100"`
}

// RemovalResult reports what the removed member was holding at removal time
type RemovalResult struct {
	Member         *Member
	Position       int
	WasCurrent     bool
	WasNext        bool
	SkipsDiscarded int64
}
