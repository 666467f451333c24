package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
)

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored date %q: %w", s, err)
	}
	return t, nil
}

// naiveTime normalises driver timestamps back to the naive UTC convention
func naiveTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return domain.Naive(t)
}
