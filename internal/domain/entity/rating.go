package entity

import "time"

type Rating struct {
	ID      int64
	PickID  int64
	RaterID int64
	Rater   *Member
	Value   float64
	Review  string
	RatedAt time.Time
}

type RatingSummary struct {
	PickID  int64
	Average float64
	Count   int
}

// RatedPick pairs a pick with its aggregate rating
type RatedPick struct {
	Pick    *Pick
	Average float64
	Count   int
}

type RaterStats struct {
	Member  *Member
	Count   int
	Average float64
	Min     float64
	Max     float64
}
