package entity

import (
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
)

// MovieDetails is the catalog enrichment stored alongside a pick. Only the
// presentation layer reads it.
type MovieDetails struct {
	Title     string   `json:"title,omitempty"`
	Year      int      `json:"year,omitempty"`
	ImdbID    string   `json:"imdb_id,omitempty"`
	Rating    float64  `json:"rating,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Directors []string `json:"directors,omitempty"`
	Cast      []string `json:"cast,omitempty"`
	Synopsis  string   `json:"synopsis,omitempty"`
	PosterURL string   `json:"poster_url,omitempty"`
	Runtime   string   `json:"runtime,omitempty"`
}

// Selection is what a member asks to register
type Selection struct {
	Title      string `validate:"required,max=200"`
	Year       *int   `validate:"omitempty,min=1800,max=2100"`
	ExternalID string `validate:"max=20"`
}

type Pick struct {
	ID          int64
	MemberID    int64
	Member      *Member
	Title       string
	Year        *int
	ExternalID  string
	Details     MovieDetails
	PickDate    time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
}

func (p *Pick) Period() domain.Period {
	return domain.Period{Start: p.PeriodStart, End: p.PeriodEnd}
}
